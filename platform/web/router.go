package web

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"shopping-samples/internal/logger"
)

// HandleFunc is an http handler that reports failures instead of writing
// them. Errors are logged once the response is done.
type HandleFunc func(w http.ResponseWriter, r *http.Request) error

// Middleware wraps a HandleFunc.
type Middleware func(HandleFunc) HandleFunc

// Router is a chi mux whose routes share one middleware stack. Middleware
// registered first runs outermost.
type Router struct {
	mux *chi.Mux
	md  []Middleware
}

func NewRouter() *Router {
	return &Router{mux: chi.NewRouter()}
}

// Use appends md to the stack applied to routes registered afterwards.
func (r *Router) Use(md ...Middleware) {
	r.md = append(r.md, md...)
}

func (r *Router) Handle(method, path string, hd HandleFunc) {
	r.mux.Method(method, path, r.wrap(hd))
}

// NotFound sets the handler used when no route matches.
func (r *Router) NotFound(hd HandleFunc) {
	r.mux.NotFound(r.wrap(hd))
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

func (r *Router) wrap(hd HandleFunc) http.HandlerFunc {
	for i := len(r.md) - 1; i >= 0; i-- {
		hd = r.md[i](hd)
	}
	return func(w http.ResponseWriter, req *http.Request) {
		if err := hd(w, req); err != nil {
			logger.Warn("request failed", "method", req.Method, "path", req.URL.Path, "error", err)
		}
	}
}

// Start serves the router on ln in the background. The returned function
// shuts the server down, waiting up to five seconds for open requests.
func (r *Router) Start(ln net.Listener) (stop func()) {
	srv := &http.Server{Handler: r, ReadHeaderTimeout: 10 * time.Second}
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Warn("server stopped", "addr", ln.Addr().String(), "error", err)
		}
	}()
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}
