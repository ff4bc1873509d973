package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"shaderinspector/internal/httpapi"
	"shaderinspector/internal/output"
)

const shutdownTimeout = 5 * time.Second

type serveOptions struct {
	addr         string
	cors         bool
	corsOrigins  string
	corsMethods  string
	corsHeaders  string
	maxBodyBytes int64
	requestLog   string
}

func newServeCmd(getApp func() *app) *cobra.Command {
	opts := serveOptions{
		addr:        envStr("SHADERINSPECTOR_ADDR", "127.0.0.1:8731"),
		corsOrigins: "*",
		corsMethods: "GET,POST,DELETE,OPTIONS",
		corsHeaders: "Content-Type,X-Log-Level",
		requestLog:  envStr("SHADERINSPECTOR_HTTP_LOG_LEVEL", "info"),
	}
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the inspector as a local HTTP daemon for editor integrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), getApp(), opts)
		},
	}
	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "HTTP listen address (defaults SHADERINSPECTOR_ADDR)")
	cmd.Flags().BoolVar(&opts.cors, "cors", false, "Enable CORS for browser-based editors")
	cmd.Flags().StringVar(&opts.corsOrigins, "cors-origins", opts.corsOrigins, "Comma-separated allowed origins")
	cmd.Flags().StringVar(&opts.corsMethods, "cors-methods", opts.corsMethods, "Comma-separated allowed methods")
	cmd.Flags().StringVar(&opts.corsHeaders, "cors-headers", opts.corsHeaders, "Comma-separated allowed headers")
	cmd.Flags().StringVar(&opts.requestLog, "request-log", opts.requestLog, "Request log threshold: off|debug|info|warn|error (defaults SHADERINSPECTOR_HTTP_LOG_LEVEL or info)")
	cmd.Flags().Int64Var(&opts.maxBodyBytes, "max-body-bytes", 0, "Maximum JSON request body size (0 uses the default)")
	return cmd
}

func serve(parent context.Context, a *app, opts serveOptions) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	board := output.NewBoard()
	backend := &httpapi.Backend{
		Session: a.session(board.Open, stateRecord),
		Board:   board,
		Locator: a.locator,
		TabSize: a.settings.TabSize,
	}

	httpapi.SetLogger(a.log)
	httpapi.SetBaseContext(ctx)
	httpapi.SetRequestLogLevel(opts.requestLog)
	httpapi.SetMaxBodyBytes(opts.maxBodyBytes)
	httpapi.SetCORSOptions(opts.cors, splitCSV(opts.corsOrigins), splitCSV(opts.corsMethods), splitCSV(opts.corsHeaders))

	srv := &http.Server{
		Addr:              opts.addr,
		Handler:           httpapi.NewMux(backend),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.Info().Str("addr", opts.addr).Msg("shaderinspector listening")
		errCh <- fnListenAndServe(srv)
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		a.log.Warn().Err(err).Msg("graceful shutdown error")
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
