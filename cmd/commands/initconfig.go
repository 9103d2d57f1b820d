package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"noticeboard/internal/config"
	"noticeboard/internal/eventbus"
	"noticeboard/internal/logging"
)

func newInitConfigCommand(s *settings) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init-config",
		Short: "Write the default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			bus := eventbus.New(logging.NewLogger("eventbus"))
			defer bus.Close()

			svc := configService(s, bus)
			path := svc.Path()

			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("config file already exists: %s (use --force to overwrite)", path)
			}

			if err := svc.Save(config.DefaultConfig()); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")
	return cmd
}
