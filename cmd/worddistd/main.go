// Command worddistd serves the distance engine over HTTP, adapted from the
// reconciliation service's cmd/main binary: load settings, build a logger,
// mount the router, serve with graceful shutdown on SIGINT/SIGTERM.
package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"worddist/internal/httpapi"
	"worddist/internal/logging"
	"worddist/internal/settings"
)

func main() {
	if runtime.GOMAXPROCS(0) < runtime.NumCPU() {
		runtime.GOMAXPROCS(runtime.NumCPU())
	}

	configFile := flag.String("config", "", "path to a TOML or YAML settings file")
	flag.Parse()

	s := settings.Load()
	if *configFile != "" {
		if err := settings.LoadFile(*configFile, &s); err != nil {
			os.Stderr.WriteString("worddistd: " + err.Error() + "\n")
			os.Exit(1)
		}
	}

	logger := logging.Setup(s)

	cfg, err := s.Distance.Build()
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid distance settings")
	}

	r := httpapi.NewRouter(cfg, s, logger)

	srv := &http.Server{Addr: s.Addr(), Handler: r}
	logger.Info().Str("addr", s.Addr()).Msg("server starting")

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("listen")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("server shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	logger.Info().Msg("bye")
}
