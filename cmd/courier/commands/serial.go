package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"courier/internal/crypto"
)

func serialCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serial <certificate.pem>",
		Short: "Print a certificate's formatted serial (the key identifier)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pemText, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			cert, err := crypto.ParseCertificatePEM(string(pemText))
			if err != nil {
				return err
			}
			serial, err := crypto.FormatSerial(cert.SerialNumber)
			if err != nil {
				return err
			}
			fmt.Println(serial)
			return nil
		},
	}
}
