package main

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"countrydeck/internal/config"
	"countrydeck/internal/graphql"
	"countrydeck/internal/logging"
	"countrydeck/internal/telemetry"
	"countrydeck/internal/ui"
)

// options holds the persistent flags.
type options struct {
	configPath string
	endpoint   string
	timeout    time.Duration
	verbose    bool
}

// app is everything built once at startup and torn down on exit.
type app struct {
	cfg     *config.Config
	timeout time.Duration
	logger  *zap.Logger
	tracing *telemetry.Provider
	client  *graphql.Client
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "countrydeck",
		Short: "Browse the countries of the world from a GraphQL API",
		Long: `countrydeck fetches every country from a GraphQL endpoint and lets you
narrow it by name or continent.

Run without arguments to start the interactive browser.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), opts, runInteractive)
		},
	}
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default $COUNTRYDECK_CONFIG or <user config dir>/countrydeck/config.yaml)")
	cmd.PersistentFlags().StringVar(&opts.endpoint, "endpoint", "", "GraphQL endpoint (overrides config)")
	cmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 0, "fetch timeout (overrides config)")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")

	cmd.AddCommand(newListCmd(opts), newContinentsCmd())
	return cmd
}

// withApp builds the client and its collaborators, runs fn, and tears
// everything down afterwards.
func withApp(ctx context.Context, opts *options, fn func(context.Context, *app) error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	a, err := newApp(ctx, opts)
	if err != nil {
		return err
	}
	defer a.close()
	return fn(ctx, a)
}

func newApp(ctx context.Context, opts *options) (*app, error) {
	path, err := config.ResolvePath(opts.configPath)
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if opts.endpoint != "" {
		cfg.Endpoint = opts.endpoint
	}
	if opts.timeout != 0 {
		cfg.Timeout = opts.timeout.String()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	timeout, err := cfg.GetTimeout()
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(cfg.Logging.File, cfg.Logging.Level, opts.verbose)
	if err != nil {
		return nil, err
	}
	tracing, err := telemetry.New(ctx, cfg.Tracing.Endpoint, cfg.Tracing.ServiceName)
	if err != nil {
		_ = logger.Sync()
		return nil, fmt.Errorf("failed to initialize tracing: %w", err)
	}
	logger.Info("starting",
		zap.String("config", path),
		zap.String("endpoint", cfg.Endpoint),
		zap.Duration("timeout", timeout),
		zap.Bool("tracing", tracing.Enabled()),
	)

	client := graphql.NewClient(graphql.Options{
		Endpoint:  cfg.Endpoint,
		Timeout:   timeout,
		UserAgent: cfg.UserAgent,
		Logger:    logger,
		Tracer:    tracing.Tracer(),
	})
	return &app{cfg: cfg, timeout: timeout, logger: logger, tracing: tracing, client: client}, nil
}

func (a *app) close() {
	a.client.Close()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := a.tracing.Shutdown(ctx); err != nil {
		a.logger.Warn("tracing shutdown failed", zap.Error(err))
	}
	_ = a.logger.Sync()
}

func runInteractive(_ context.Context, a *app) error {
	model := ui.NewAppModel(a.client, a.timeout, a.logger).AsTeaModel()
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
