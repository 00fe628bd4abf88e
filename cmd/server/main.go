// Command server runs the Adlam learning API: the alphabet progression
// engine and the spaced-repetition vocabulary scheduler behind an HTTP
// surface consumed by the mobile client.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/adlamlearn/adlam-api/internal/config"
)

func main() {
	root := &cobra.Command{
		Use:          "server",
		Short:        "Adlam learning API server",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			app, err := newApplication(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer app.close()

			return app.serve(cmd.Context())
		},
	}

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
