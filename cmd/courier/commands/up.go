package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	identitysvc "courier/internal/services/identity"
)

func upCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Bootstrap the crypto identity and publish it",
		RunE: func(cmd *cobra.Command, args []string) error {
			if loader == nil {
				return fmt.Errorf("directory URL required (--directory)")
			}
			id, err := resolveNodeID()
			if err != nil {
				return err
			}
			ci, err := loader.Load(cmd.Context(), privkeyFile, id)
			if err != nil {
				return err
			}
			identitysvc.Publish(ci)
			fmt.Printf("Identity published.\nSerial: %s\nCName:  %s\n", ci.Serial(), ci.CommonName())
			return nil
		},
	}
}
