// internal/metrics/server.go
package metrics

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/pprof"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"go-vr-scene/internal/scene"
)

// Inspector exposes read-only views of the running app. Both methods are
// called from HTTP goroutines and must be safe for concurrent use.
type Inspector interface {
	// Scene is the last rendered description, nil before the first frame.
	Scene() scene.Node
	// Status is any JSON-encodable summary of the app.
	Status() any
}

// NewHandler builds the debug router.
func NewHandler(m *Metrics, in Inspector, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	r := chi.NewRouter()

	if m != nil {
		r.Handle("/metrics", promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{}))
	}

	r.Route("/debug/pprof", func(r chi.Router) {
		r.HandleFunc("/", pprof.Index)
		r.HandleFunc("/cmdline", pprof.Cmdline)
		r.HandleFunc("/profile", pprof.Profile)
		r.HandleFunc("/symbol", pprof.Symbol)
		r.HandleFunc("/trace", pprof.Trace)
		r.Handle("/{profile}", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			pprof.Handler(chi.URLParam(r, "profile")).ServeHTTP(w, r)
		}))
	})

	r.Get("/scene", func(w http.ResponseWriter, r *http.Request) {
		root := in.Scene()
		if root == nil {
			http.Error(w, "scene not rendered yet", http.StatusServiceUnavailable)
			return
		}
		marshal, contentType := scene.MarshalYAML, "text/yaml"
		if r.URL.Query().Get("format") == "json" {
			marshal, contentType = scene.MarshalJSON, "application/json"
		}
		data, err := marshal(root)
		if err != nil {
			http.Error(w, "failed to encode scene", http.StatusInternalServerError)
			logger.Error("encode scene", "error", err)
			return
		}
		w.Header().Set("Content-Type", contentType)
		w.Write(data)
	})

	r.Get("/state", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(in.Status()); err != nil {
			logger.Error("encode state", "error", err)
		}
	})

	return r
}

// Serve runs the debug server until ctx is done.
func Serve(ctx context.Context, addr string, h http.Handler, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		logger.Info("debug server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
