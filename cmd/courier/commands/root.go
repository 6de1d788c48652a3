package commands

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"courier/internal/directory"
	"courier/internal/domain"
	identitysvc "courier/internal/services/identity"
)

var (
	privkeyFile     string
	directoryURL    string
	directoryDomain string
	nodeID          string

	loader *identitysvc.Loader
)

func Execute() error {
	root := &cobra.Command{
		Use:   "courier",
		Short: "PKI-backed message node",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
			if directoryURL != "" {
				loader = identitysvc.NewLoader(directory.NewHTTP(directoryURL), directoryDomain)
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&privkeyFile, "privkey-file", envOr("COURIER_PRIVKEY_FILE", "/run/secrets/privkey.pem"), "path to own secret key")
	root.PersistentFlags().StringVar(&directoryURL, "directory", envOr("COURIER_DIRECTORY", ""), "directory base URL (e.g. http://127.0.0.1:8310)")
	root.PersistentFlags().StringVar(&directoryDomain, "directory-domain", envOr("COURIER_DIRECTORY_DOMAIN", ""), "expected domain of the node certificate")
	root.PersistentFlags().StringVar(&nodeID, "node-id", envOr("COURIER_NODE_ID", ""), "this node's id in the peer network")

	root.AddCommand(upCmd(), serialCmd())
	return root.Execute()
}

// envOr lets flags default from the environment, matching how the
// enrollment tooling passes configuration.
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// resolveNodeID validates the --node-id flag before any network call.
func resolveNodeID() (domain.NodeID, error) {
	return domain.NewNodeID(nodeID)
}
