package cli

import (
	"github.com/spf13/cobra"
)

func (c *Cli) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "lumina",
		Short: "Lumina lifestyle planner",
		Long: `Lumina keeps an outfit registry, a vision board and a calendar in a local database.

Collections can be backed up to a lumina server. They are encrypted with a key
derived from your master password before they leave this device.

Master password priority (highest to lowest):
  1. LUMINA_MASTER_PASSWORD environment variable
  2. --master-password-file (file path)
  3. Interactive prompt`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&c.cfg.DBPath, "db", c.cfg.DBPath, "Path to local database (env LUMINA_DB)")
	flags.StringVar(&c.cfg.ServerURL, "server", c.cfg.ServerURL, "Backup server URL (env LUMINA_SERVER_URL)")
	flags.StringVar(&c.cfg.LogLevel, "log-level", c.cfg.LogLevel, "Log level: debug, info, warn, error (env LUMINA_LOG_LEVEL)")
	flags.StringVar(&c.passwordFile, "master-password-file", "", "Path to file containing master password")

	root.AddCommand(
		c.versionCommand(),
		c.todayCommand(),
		c.outfitsCommand(),
		c.visionCommand(),
		c.eventsCommand(),
		c.suggestCommand(),
		c.resetCommand(),
		c.registerCommand(),
		c.loginCommand(),
		c.logoutCommand(),
		c.statusCommand(),
		c.pushCommand(),
		c.pullCommand(),
	)

	return root
}

// withStorage оборачивает RunE команды, которой нужна локальная база
func (c *Cli) withStorage(run func(cmd *cobra.Command, args []string) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := c.openStorage(cmd.Context()); err != nil {
			return err
		}
		return run(cmd, args)
	}
}

func (c *Cli) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			c.io.Println("Lumina Client")
			c.io.Printf("Version:    %s\n", c.version.Version)
			c.io.Printf("Build Date: %s\n", c.version.BuildDate)
			c.io.Printf("Git Commit: %s\n", c.version.GitCommit)
		},
	}
}

func (c *Cli) resetCommand() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete every local collection",
		Args:  cobra.NoArgs,
		RunE: c.withStorage(func(cmd *cobra.Command, args []string) error {
			if !yes {
				answer, err := c.io.ReadInput("Delete all local outfits, vision items and events? [y/N]: ")
				if err != nil {
					return err
				}
				if answer != "y" && answer != "Y" {
					c.io.Println("Aborted.")
					return nil
				}
			}

			if err := c.holder.Reset(cmd.Context()); err != nil {
				return err
			}
			c.io.Println("✓ Local collections cleared")
			return nil
		}),
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")
	return cmd
}
