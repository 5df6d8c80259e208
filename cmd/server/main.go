package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cbodonnell/blockfall/pkg/api"
	"github.com/cbodonnell/blockfall/pkg/config"
	"github.com/cbodonnell/blockfall/pkg/leaderboard"
	"github.com/cbodonnell/blockfall/pkg/log"
	"github.com/cbodonnell/blockfall/pkg/version"
)

func main() {
	port := flag.Int("port", 9090, "port to listen on")
	allowOrigin := flag.String("allow-origin", "localhost", "comma-separated list of allowed origins")
	db := flag.String("db", "", "leaderboard database url (default $BLOCKFALL_DATABASE_URL or sqlite://blockfall.db)")
	logLevel := flag.String("log-level", "", "Log level (default $BLOCKFALL_LOG_LEVEL or info)")
	flag.Parse()

	parsedLogLevel, err := config.LogLevel(*logLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	logger := log.New(os.Stdout, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", parsedLogLevel)

	log.Info("Starting leaderboard server version %s", version.Get())
	ctx := context.Background()

	lb, err := leaderboard.Open(ctx, config.DatabaseURL(*db))
	if err != nil {
		panic(fmt.Sprintf("Failed to open leaderboard: %v", err))
	}
	defer lb.Close(ctx)

	apiServerOpts := api.NewAPIServerOptions{
		Port:        *port,
		AllowOrigin: *allowOrigin,
		Leaderboard: lb,
	}
	if certFile, keyFile := config.TLSFiles(); certFile != "" {
		apiServerOpts.TLS = &api.TLSConfig{
			CertFile: certFile,
			KeyFile:  keyFile,
		}
	}
	server := api.NewAPIServer(apiServerOpts)
	go server.Start()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	<-interrupt

	log.Info("Shutting down")
	stopCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := server.Stop(stopCtx); err != nil {
		log.Error("Failed to stop server: %v", err)
	}
}
