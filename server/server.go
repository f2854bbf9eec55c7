// Package server serves fixtures over HTTP so a browser under test can be
// pointed at a replay tuple:
//
//	GET /fixture?tagMap=alexa&branchiness=4&depthicity=3&seed=17[&css=1]
//	GET /fixture/{tagMap}/{branchiness}/{depthicity}/{seed}
//	GET /fixture.json?…          Envelope with the document as data
//	GET /presets                 tag map names
//	GET /healthz
//	GET /metrics                 when metrics are enabled
//
// A missing or zero seed picks one from the clock; the seed used is echoed
// in the X-Domfuzz-Seed header so the response stays replayable.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/domfuzz/fixture"
	"github.com/katalvlaran/domfuzz/internal/logging"
	"github.com/katalvlaran/domfuzz/metadata"
	"github.com/katalvlaran/domfuzz/sampler"
	"github.com/katalvlaran/domfuzz/tagmap"
)

// DefaultMaxNodes caps the predicted size of a requested fixture.
const DefaultMaxNodes = 200_000

// Server routes fixture requests.
type Server struct {
	router   *chi.Mux
	logger   *slog.Logger
	registry *tagmap.Registry
	metrics  *fixture.Metrics
	css      *fixture.CSSOptions
	indent   string
	maxNodes int64
	fixOpts  []fixture.Option
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger. Panics if l is nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("server: WithLogger(nil)")
	}

	return func(s *Server) { s.logger = l }
}

// WithRegistry resolves tag maps through reg. Panics if reg is nil.
func WithRegistry(reg *tagmap.Registry) Option {
	if reg == nil {
		panic("server: WithRegistry(nil)")
	}

	return func(s *Server) { s.registry = reg }
}

// WithMetrics records generation metrics and mounts /metrics.
// Panics if m is nil.
func WithMetrics(m *fixture.Metrics) Option {
	if m == nil {
		panic("server: WithMetrics(nil)")
	}

	return func(s *Server) { s.metrics = m }
}

// WithCSS sets the selector tables used when a request asks for css=1.
// Panics if c is nil.
func WithCSS(c *fixture.CSSOptions) Option {
	if c == nil {
		panic("server: WithCSS(nil)")
	}

	return func(s *Server) { s.css = c }
}

// WithIndent sets the indent unit of served markup.
func WithIndent(unit string) Option {
	return func(s *Server) { s.indent = unit }
}

// WithMaxNodes rejects requests predicting more than n nodes.
func WithMaxNodes(n int64) Option {
	return func(s *Server) { s.maxNodes = n }
}

// WithFixtureOptions appends options passed to every fixture.Generate call.
func WithFixtureOptions(opts ...fixture.Option) Option {
	return func(s *Server) { s.fixOpts = append(s.fixOpts, opts...) }
}

// New builds the router.
func New(opts ...Option) *Server {
	s := &Server{
		logger:   logging.NewNop(),
		css:      fixture.DefaultCSSOptions(),
		indent:   "  ",
		maxNodes: DefaultMaxNodes,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.registry == nil {
		s.registry = tagmap.NewRegistry()
	}

	s.fixOpts = append([]fixture.Option{fixture.WithRegistry(s.registry), fixture.WithLogger(s.logger)}, s.fixOpts...)
	if s.metrics != nil {
		s.fixOpts = append(s.fixOpts, fixture.WithMetrics(s.metrics))
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/presets", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, s.registry.Names())
	})
	r.Get("/fixture", s.handleFixture)
	r.Get("/fixture.json", s.handleFixtureJSON)
	r.Get("/fixture/{tagMap}/{branchiness}/{depthicity}/{seed}", s.handleFixture)
	if s.metrics != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.metrics.Registry(), promhttp.HandlerOpts{}))
	}
	s.router = r

	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves on addr until ctx is done, then shuts down with a
// five second grace period.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.router, ReadHeaderTimeout: 10 * time.Second}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s.logger.Info("shutting down")

	return srv.Shutdown(shutdownCtx)
}

func (s *Server) handleFixture(w http.ResponseWriter, r *http.Request) {
	f, ok := s.generate(w, r)
	if !ok {
		return
	}

	setMetadataHeaders(w, f.Metadata)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(f.Document))
}

func (s *Server) handleFixtureJSON(w http.ResponseWriter, r *http.Request) {
	f, ok := s.generate(w, r)
	if !ok {
		return
	}

	setMetadataHeaders(w, f.Metadata)
	writeJSON(w, http.StatusOK, metadata.NewEnvelope(f.Metadata, f.Document))
}

// generate parses the replay tuple and runs the pipeline; on failure it has
// already written the error response.
func (s *Server) generate(w http.ResponseWriter, r *http.Request) (*fixture.Fixture, bool) {
	req, err := s.parseRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return nil, false
	}

	f, err := fixture.Generate(req, s.fixOpts...)
	switch {
	case errors.Is(err, tagmap.ErrUnknownTagMap):
		writeError(w, http.StatusNotFound, err)
		return nil, false
	case err != nil:
		writeError(w, http.StatusBadRequest, err)
		return nil, false
	}

	return f, true
}

func (s *Server) parseRequest(r *http.Request) (fixture.Request, error) {
	q := r.URL.Query()
	param := func(name string) string {
		if v := chi.URLParam(r, name); v != "" {
			return v
		}
		return q.Get(name)
	}

	var (
		p   sampler.Params
		err error
	)
	p.TagMap = param("tagMap")
	if p.TagMap == "" {
		p.TagMap = tagmap.Alexa
	}
	if p.Branchiness, err = intParam(param("branchiness"), "branchiness", 1); err != nil {
		return fixture.Request{}, err
	}
	if p.Depthicity, err = intParam(param("depthicity"), "depthicity", 0); err != nil {
		return fixture.Request{}, err
	}
	if v := param("seed"); v != "" {
		seed, perr := strconv.ParseUint(v, 10, 32)
		if perr != nil {
			return fixture.Request{}, fmt.Errorf("seed %q: want an integer in [0, 4294967295]", v)
		}
		p.Seed = uint32(seed)
	}

	if predicted := sampler.PredictedNodeCount(p.Branchiness, p.Depthicity); s.maxNodes > 0 && predicted > s.maxNodes {
		return fixture.Request{}, fmt.Errorf("predicted %d nodes exceeds limit %d", predicted, s.maxNodes)
	}

	req := fixture.Request{Params: p, Indent: s.indent}
	if css, _ := strconv.ParseBool(q.Get("css")); css {
		req.CSS = s.css
	}

	return req, nil
}

func intParam(v, name string, min int64) (int64, error) {
	if v == "" {
		return 0, fmt.Errorf("missing %s", name)
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n < min {
		return 0, fmt.Errorf("%s %q: want an integer ≥ %d", name, v, min)
	}

	return n, nil
}

func setMetadataHeaders(w http.ResponseWriter, md metadata.Record) {
	h := w.Header()
	h.Set("X-Domfuzz-Seed", strconv.FormatUint(uint64(md.Seed), 10))
	h.Set("X-Domfuzz-Tag-Map", md.TagMap)
	h.Set("X-Domfuzz-Node-Count", strconv.Itoa(md.NodeCount))
	h.Set("X-Domfuzz-Rule-Count", strconv.Itoa(md.RuleCount))
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method, "path", r.URL.Path, "status", ww.Status(),
			"bytes", ww.BytesWritten(), "elapsed", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()))
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
