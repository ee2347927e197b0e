package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vcrobe/nojs-social/internal/config"
	"github.com/vcrobe/nojs-social/internal/host"
	"github.com/vcrobe/nojs-social/internal/logging"
)

type serveOptions struct {
	configPath string
	addr       string
	root       string
	base       string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := &serveOptions{}

	cmd := &cobra.Command{
		Use:           "serve [flags]",
		Short:         "Serve the app with HTML5 history fallback",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg, cmd.OutOrStdout())
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "path to a TOML host config")
	flags.StringVar(&opts.addr, "addr", "", "listen address (default :8080)")
	flags.StringVar(&opts.root, "root", "", "directory holding index.html and main.wasm (default dist)")
	flags.StringVar(&opts.base, "base", "", "URL path the app is mounted under (default /)")
	flags.StringVar(&opts.logLevel, "log-level", "", "debug, info, warn or error")

	return cmd
}

// load reads the config file and environment, then applies flags on top.
func (o *serveOptions) load() (*config.Host, error) {
	cfg, err := config.LoadHost(o.configPath)
	if err != nil {
		return nil, err
	}
	cfg.Merge(&config.Host{
		Addr:    o.addr,
		Root:    o.root,
		Base:    o.base,
		Logging: logging.Config{Level: logging.Level(o.logLevel)},
	})
	if err := cfg.Finalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func serve(ctx context.Context, cfg *config.Host, out io.Writer) error {
	logger := logging.New(&cfg.Logging, out)

	handler, err := host.NewHandler(os.DirFS(cfg.Root), cfg.Index, cfg.Base)
	if err != nil {
		logger.Error("failed to load app", "root", cfg.Root, "error", err)
		return err
	}

	logger.Info("serving app", "root", cfg.Root, "base", cfg.Base)
	srv := host.NewServer(cfg, host.Chain(handler, host.RecoverPanic(logger), host.Logger(logger)), logger)
	return srv.Run(ctx)
}
