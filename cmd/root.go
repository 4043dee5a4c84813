package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kilianp07/ecogrid/app"
	"github.com/kilianp07/ecogrid/config"
	"github.com/kilianp07/ecogrid/infra/logger"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:          "ecogrid",
	Short:        "Interactive solar and wind output report",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "optional configuration file (yaml or json)")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

func run(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger.SetOutput(cmd.ErrOrStderr())
	if err := logger.Configure(cfg.Logging.Level, cfg.Logging.Format); err != nil {
		return fmt.Errorf("configure logging: %w", err)
	}
	sess, err := app.New(cfg, cmd.InOrStdin(), cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer func() {
		if err := sess.Close(); err != nil {
			logger.New("main").Errorf("session close: %v", err)
		}
	}()
	return sess.Run(ctx)
}
