// Command hexforged serves the hexforge HTTP API.
//
// By default it runs the chi router of package server, configured from
// HEXFORGE_* environment variables. With -functions it instead hosts the
// Generate Cloud Function locally through the Functions Framework on $PORT.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/GoogleCloudPlatform/functions-framework-go/funcframework"

	_ "github.com/katalvlaran/hexforge" // registers the Generate function
	"github.com/katalvlaran/hexforge/server"
)

func main() {
	functionsMode := flag.Bool("functions", false, "Serve the Generate function through the Functions Framework")
	verbose := flag.Bool("verbose", false, "Log at debug level")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(log)

	if *functionsMode {
		port := os.Getenv("PORT")
		if port == "" {
			port = "8080"
		}
		log.Info("functions framework", slog.String("port", port))
		if err := funcframework.Start(port); err != nil {
			log.Error("functions framework stopped", slog.Any("err", err))
			os.Exit(1)
		}
		return
	}

	cfg, err := server.LoadConfig()
	if err != nil {
		log.Error("config", slog.Any("err", err))
		os.Exit(2)
	}
	srv, err := server.New(cfg, log)
	if err != nil {
		log.Error("startup", slog.Any("err", err))
		os.Exit(1)
	}

	if err := serve(srv); err != nil {
		log.Error("server stopped", slog.Any("err", err))
		os.Exit(1)
	}
}

// serve runs srv until SIGINT or SIGTERM.
func serve(srv *server.Server) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return srv.ListenAndServe(ctx)
}
