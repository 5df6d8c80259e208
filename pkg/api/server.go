package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/cbodonnell/blockfall/pkg/api/handlers"
	"github.com/cbodonnell/blockfall/pkg/api/middleware"
	"github.com/cbodonnell/blockfall/pkg/leaderboard"
	"github.com/cbodonnell/blockfall/pkg/log"
	"github.com/gorilla/mux"
	"github.com/klauspost/compress/gzhttp"
)

type APIServer struct {
	server *http.Server
	tls    *TLSConfig
}

type TLSConfig struct {
	CertFile string
	KeyFile  string
}

type NewAPIServerOptions struct {
	Port        int
	TLS         *TLSConfig
	AllowOrigin string
	Leaderboard leaderboard.Leaderboard
}

// NewAPIServer creates a new http.Server for handling API requests
func NewAPIServer(opts NewAPIServerOptions) *APIServer {
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", opts.Port),
		Handler:           NewRouter(opts.Leaderboard, opts.AllowOrigin),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return &APIServer{
		server: server,
		tls:    opts.TLS,
	}
}

// NewRouter returns the handler serving the leaderboard routes.
func NewRouter(lb leaderboard.Leaderboard, allowOrigin string) http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.NewLoggingMiddleware())
	r.Use(middleware.NewCORSMiddleware(allowOrigin))

	r.HandleFunc("/scores", handlers.HandleListScores(lb)).Methods(http.MethodGet, http.MethodOptions)
	r.HandleFunc("/scores", handlers.HandleAddScore(lb)).Methods(http.MethodPost)
	r.HandleFunc("/healthz", handlers.HandleHealth()).Methods(http.MethodGet)

	return gzhttp.GzipHandler(r)
}

// Start starts the APIServer
func (s *APIServer) Start() {
	var listenAndServe func() error
	if s.tls != nil {
		log.Info("API server listening on %s with TLS", s.server.Addr)
		listenAndServe = func() error {
			return s.server.ListenAndServeTLS(s.tls.CertFile, s.tls.KeyFile)
		}
	} else {
		log.Info("API server listening on %s", s.server.Addr)
		listenAndServe = s.server.ListenAndServe
	}
	if err := listenAndServe(); err != nil {
		if errors.Is(err, http.ErrServerClosed) {
			log.Info("API server closed")
			return
		}
		log.Error("API server error: %v", err)
	}
}

// Stop stops the APIServer
func (s *APIServer) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
