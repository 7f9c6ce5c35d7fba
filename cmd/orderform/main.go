package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-orderform"
	"github.com/goliatone/go-orderform/internal/logging"
	"github.com/goliatone/go-orderform/pkg/config"
)

type cli struct {
	configPath string
	verbose    bool
	logger     *zap.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	c := &cli{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:           "orderform",
		Short:         "Pizza order form for the terminal and the browser",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := logging.New(c.verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			c.logger = logger
			gin.SetMode(ginMode(c.verbose))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = c.logger.Sync()
		},
	}

	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "YAML configuration file (embedded defaults when empty)")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(
		newOrderCmd(c),
		newServeCmd(c),
		newStubCmd(c),
		newValidateCmd(c),
	)
	return root
}

func (c *cli) app(options ...orderform.Option) (*orderform.App, error) {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return nil, err
	}
	options = append([]orderform.Option{orderform.WithLogger(c.logger)}, options...)
	return orderform.New(cfg, options...)
}

func (c *cli) appFrom(cfg config.Config) (*orderform.App, error) {
	return orderform.New(cfg, orderform.WithLogger(c.logger))
}

// ginMode keeps gin's route banner and warnings out of normal runs; they show
// up with --verbose next to the debug logs.
func ginMode(verbose bool) string {
	if verbose {
		return gin.DebugMode
	}
	return gin.ReleaseMode
}
