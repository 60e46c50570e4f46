package commands

import (
	"CurrencyConverter/internal/api"
	"CurrencyConverter/internal/app"
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 5 * time.Second

func serveCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the converter state machine as a JSON API",
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr != "" {
				cfg.Server.Addr = addr
			}
			return runServer(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides server.addr)")
	return cmd
}

func setupRoutes(h *api.Handler, reg *prometheus.Registry) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/currencies", h.GetCurrencies)
	mux.HandleFunc("/state", h.GetState)
	mux.HandleFunc("/amount", h.PostAmount)
	mux.HandleFunc("/select", h.PostSelect)
	mux.HandleFunc("/swap", h.PostSwap)
	mux.HandleFunc("/convert", h.PostConvert)
	mux.HandleFunc("/favorites/toggle", h.PostToggleFavorite)
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	return mux
}

func runServer(parent context.Context) error {
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	a, err := app.Build(ctx, cfg, reg)
	if err != nil {
		return err
	}
	defer a.Close()
	a.LoadCurrencies(ctx)

	h := &api.Handler{Ctrl: a.Ctrl}
	server := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: setupRoutes(h, reg),
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Printf("Server listening on %s...", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return err
		}
	case <-ctx.Done():
		log.Println("Shutdown signal received, stopping server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server Shutdown: %v", err)
	}

	log.Println("Server stopped.")
	return nil
}
