// Command scanpland exposes the planning pipeline over a minimal HTTP
// front end: POST an obstacle batch, get back a wire-encoded plan
// (spec.md §6, §1 "Thin request surface").
package main

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/edaniels/golog"
	"github.com/urfave/cli/v2"

	"github.com/scanbot-robotics/scanplan/planrequest"
)

func main() {
	app := &cli.App{
		Name:  "scanpland",
		Usage: "plan obstacle-scanning routes for the scanbot base",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "addr", Value: ":8080", Usage: "address to listen on"},
			&cli.StringFlag{Name: "log-level", Value: "info", Usage: "debug or info"},
			&cli.Int64Flag{Name: "seed", Value: 1, Usage: "deterministic tour-solver RNG seed"},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	logger := newLogger(c.String("log-level"))
	seed := c.Int64("seed")

	mux := http.NewServeMux()
	mux.HandleFunc("/plan", planHandler(logger, seed))

	srv := &http.Server{
		Addr:              c.String("addr"),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	serveErr := make(chan error, 1)
	go func() {
		logger.Infow("scanpland listening", "addr", srv.Addr)
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-shutdown:
		logger.Info("shutting down gracefully")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			return err
		}
	}
	return nil
}

func newLogger(level string) golog.Logger {
	if level == "debug" {
		return golog.NewDebugLogger("scanpland")
	}
	return golog.NewDevelopmentLogger("scanpland")
}

// planHandler reads a single obstacle-batch line from the request body
// (either an "ALG:" batch or a "NONE,<id>" fallback), assembles the plan,
// and writes it back as JSON.
func planHandler(logger golog.Logger, seed int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "POST only", http.StatusMethodNotAllowed)
			return
		}

		body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
		if err != nil {
			http.Error(w, "failed to read request body", http.StatusBadRequest)
			return
		}

		plan, start, err := planrequest.HandlePayload(logger, string(body), seed)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		resp := planrequest.Encode(start, plan)
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			logger.Errorw("failed to write plan response", "err", err)
		}
	}
}
