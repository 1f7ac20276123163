package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/katalvlaran/hexforge/grid"
	"github.com/katalvlaran/hexforge/hex"
	"github.com/katalvlaran/hexforge/layout"
	"github.com/katalvlaran/hexforge/sample"
	"github.com/katalvlaran/hexforge/terrain"
	"github.com/katalvlaran/hexforge/wfc"
)

// Server serves generation requests from one shared template.
type Server struct {
	cfg    Config
	sample *grid.Grid[layout.Hexagonal, terrain.Kind]
	tpl    *wfc.Template[terrain.Kind]
	log    *slog.Logger
}

// New loads the configured sample and builds the template.
func New(cfg Config, log *slog.Logger) (*Server, error) {
	var (
		src *grid.Grid[layout.Hexagonal, terrain.Kind]
		err error
	)
	if cfg.SamplePath != "" {
		src, err = sample.ParseFile(cfg.SamplePath, terrain.Symbols())
	} else {
		src, err = sample.Noise(noiseRadius, noiseSeed, terrain.Kinds())
	}
	if err != nil {
		return nil, fmt.Errorf("server: load sample: %w", err)
	}
	return NewWithSample(cfg, src, log)
}

// NewWithSample builds a server around an already loaded sample.
func NewWithSample(cfg Config, src *grid.Grid[layout.Hexagonal, terrain.Kind], log *slog.Logger) (*Server, error) {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	var opts []wfc.TemplateOption
	if cfg.RotationsOnly {
		opts = append(opts, wfc.WithTransforms(hex.Rotations()...))
	}
	start := time.Now()
	tpl, err := wfc.BuildTemplate(src, opts...)
	if err != nil {
		return nil, fmt.Errorf("server: %w", err)
	}
	log.Info("template ready",
		slog.Int("tiles", tpl.Len()),
		slog.String("sample", src.Layout().String()),
		slog.Duration("took", time.Since(start)),
	)
	return &Server{cfg: cfg, sample: src, tpl: tpl, log: log}, nil
}

// Template returns the shared template.
func (s *Server) Template() *wfc.Template[terrain.Kind] { return s.tpl }

// Routes returns the HTTP handler for every route.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
		r.Get("/template", s.handleTemplate)
		r.Get("/generate", s.HandleGenerate)
		r.Get("/seeds/{seed}", s.handleSeed)
	})
	return r
}

// ListenAndServe serves on cfg.Addr until ctx is done, then drains open
// requests for up to the generation timeout.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      s.cfg.Timeout + 5*time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		s.log.Info("listening", slog.String("addr", s.cfg.Addr))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Timeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// requestLogger logs one line per request through the server's logger.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.log.Info("request",
			slog.String("id", middleware.GetReqID(r.Context())),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Int("bytes", ww.BytesWritten()),
			slog.Duration("took", time.Since(start)),
		)
	})
}
