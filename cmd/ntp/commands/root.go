package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/GriffinCanCode/numbertheory/internal/client"
	"github.com/GriffinCanCode/numbertheory/internal/infrastructure/config"
	"github.com/GriffinCanCode/numbertheory/internal/infrastructure/logging"
	ntp "github.com/GriffinCanCode/numbertheory/internal/providers/numbertheory"
	"github.com/GriffinCanCode/numbertheory/internal/render"
	"github.com/GriffinCanCode/numbertheory/internal/service"
	"github.com/GriffinCanCode/numbertheory/internal/shared/types"
)

// Executor runs a tool by ID. *service.Registry runs it in-process and
// *client.Client runs it on a remote server.
type Executor interface {
	Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error)
}

type options struct {
	output  string
	remote  string
	explain bool
	verbose bool

	format   render.Format
	logger   *logging.Logger
	registry *service.Registry
	executor Executor
}

// Execute runs the ntp command line
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the command tree with fresh state
func NewRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:          "ntp",
		Short:        "Number theory calculations with step-by-step explanations",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.output, "output", "o", string(render.Text), "output format: text, json, yaml or toml")
	flags.StringVar(&opts.remote, "remote", "", "server base URL (e.g. http://127.0.0.1:8000); computes locally when empty")
	flags.BoolVar(&opts.explain, "explain", true, "include explanations in the result")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log to stderr")

	root.AddCommand(toolCommands(opts)...)
	root.AddCommand(toolsCmd(opts))
	return root
}

func (o *options) setup() error {
	format, err := render.ParseFormat(o.output)
	if err != nil {
		return err
	}
	o.format = format

	o.logger = logging.NewNop()
	if o.verbose {
		cfg := logging.Config{Level: "debug", Development: true, Output: "stderr"}
		if o.logger, err = logging.New(cfg); err != nil {
			return fmt.Errorf("create logger: %w", err)
		}
	}

	o.registry = service.NewRegistry()
	if err := o.registry.Register(ntp.NewProvider(ntp.WithLogger(o.logger))); err != nil {
		return fmt.Errorf("register provider: %w", err)
	}
	o.executor = o.registry

	if o.remote != "" {
		cfg := config.LoadOrDefault()
		clientCfg := client.DefaultConfig(o.remote)
		clientCfg.Timeout = cfg.Client.Timeout
		clientCfg.RetryMax = cfg.Client.RetryMax
		clientCfg.Logger = o.logger.Named("client")
		o.executor = client.New(clientCfg)
	}
	return nil
}
