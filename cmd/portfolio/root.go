package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"portfolio-assistant/handler"
	"portfolio-assistant/internal/app"
	"portfolio-assistant/internal/config"
	"portfolio-assistant/internal/usecase"
)

func newRootCmd() *cobra.Command {
	var (
		configFile string
		envFile    string
	)
	root := &cobra.Command{
		Use:          "portfolio",
		Short:        "Portfolio assistant backend: chat with a fallback corpus and contact form delivery",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&configFile, "config", "", "optional config file (yaml, json or toml)")
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before reading the environment")

	load := func(ctx context.Context) (config.Config, *app.App, error) {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return config.Config{}, nil, fmt.Errorf("load %s: %w", envFile, err)
		}
		v := viper.New()
		if configFile != "" {
			v.SetConfigFile(configFile)
		}
		cfg, err := config.Load(v)
		if err != nil {
			return config.Config{}, nil, err
		}
		slog.SetDefault(app.NewLogger(cfg.LogLevel))

		params, err := app.ParamStore(ctx, cfg)
		if err != nil {
			return config.Config{}, nil, err
		}
		a, err := app.New(cfg, params)
		return cfg, a, err
	}

	root.AddCommand(newServeCmd(load), newAskCmd(load))
	return root
}

type loader func(ctx context.Context) (config.Config, *app.App, error)

func newServeCmd(load loader) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve /api/chat and /api/contact over HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			cfg, a, err := load(ctx)
			if err != nil {
				return err
			}
			if addr == "" {
				addr = cfg.HTTPAddr
			}
			srv := &http.Server{
				Addr:              addr,
				Handler:           handler.NewRouter(a.Handler, cfg.AllowedOrigins),
				ReadHeaderTimeout: 10 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				slog.Info("listening", "addr", addr)
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-ctx.Done():
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				slog.Info("shutting down")
				return srv.Shutdown(shutdownCtx)
			}
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (defaults to HTTP_ADDR)")
	return cmd
}

func newAskCmd(load loader) *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "ask <message>",
		Short: "Ask the assistant a single question",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			message := strings.TrimSpace(strings.Join(args, " "))
			if message == "" {
				return errors.New("message must not be empty")
			}
			_, a, err := load(cmd.Context())
			if err != nil {
				return err
			}
			out := a.Chat.Respond(cmd.Context(), usecase.RespondInput{Message: message})

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, out.Response)
			if verbose {
				fmt.Fprintf(w, "\nlanguage=%s source=%s", out.Language, out.Source)
				if out.Source == usecase.SourceFallback {
					fmt.Fprintf(w, " topic=%s failure=%s", out.Topic, out.Failure)
				}
				fmt.Fprintln(w)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print language, source and fallback topic")
	return cmd
}
