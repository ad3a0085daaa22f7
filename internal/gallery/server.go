package gallery

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/pthm/mdui"
	"github.com/pthm/mdui/internal/logger"
)

// Server serves the gallery page, its fragment tokens and the flash demo.
type Server struct {
	cfg     mdui.Config
	enc     *mdui.Encoder
	log     *logger.Logger
	metrics *metrics
}

// New creates a gallery server. A nil log discards output.
func New(cfg mdui.Config, enc *mdui.Encoder, log *logger.Logger) *Server {
	if log == nil {
		log = logger.Nop()
	}
	return &Server{cfg: cfg, enc: enc, log: log, metrics: newMetrics()}
}

// Routes returns the gallery router:
//
//	GET  /          full gallery page
//	GET  /fragment  node tree carried in a signed token (?t=)
//	POST /notify    flash snackbar, out-of-band for HTMX
//	GET  /healthz   liveness
//	GET  /metrics   Prometheus metrics
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.log.Middleware)
	r.Use(s.metrics.middleware)

	r.Get("/", s.index)
	r.Method(http.MethodGet, "/fragment", mdui.FragmentHandler(s.enc, false))
	r.Post("/notify", s.notify)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", s.metrics.handler())
	return r
}

func (s *Server) index(w http.ResponseWriter, r *http.Request) {
	token, err := mdui.EncodeFragment(s.enc, LazyCard(), false)
	if err != nil {
		s.log.Error(err, "encode lazy fragment")
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}

	lazy := "/fragment?" + url.Values{"t": {token}}.Encode()
	if err := mdui.Render(w, r, Page(s.cfg, lazy)); err != nil {
		s.log.Error(err, "render gallery")
	}
}

func (s *Server) notify(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	level := r.FormValue("level")
	switch level {
	case mdui.FlashSuccess, mdui.FlashError, mdui.FlashWarning, mdui.FlashInfo:
	default:
		if level != "" {
			s.log.WithFields(map[string]any{"flash_level": level}).Warn("unknown flash level, using info")
		}
		level = mdui.FlashInfo
	}
	msg := r.FormValue("message")
	if msg == "" {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	if !mdui.IsHTMX(r) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	s.log.WithFields(map[string]any{"flash_level": level}).Debug("flash")
	if err := mdui.Render(w, r, mdui.FlashesOOB([]mdui.Flash{{Level: level, Message: msg}})); err != nil {
		s.log.Error(err, "render flash")
	}
}
