package main

import (
	"bytes"
	"context"
	"errors"
	"html/template"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Simplici0/netpay/internal/config"
	"github.com/Simplici0/netpay/internal/logging"
	"github.com/Simplici0/netpay/internal/money"
	"github.com/Simplici0/netpay/web"
)

const shutdownTimeout = 30 * time.Second

type server struct {
	cfg          config.Config
	log          *logrus.Entry
	newReference func() string
}

type baseViewData struct {
	ErrorMessage string
}

func newServer(cfg config.Config) *server {
	return &server{
		cfg:          cfg,
		log:          logrus.WithField("module", "server"),
		newReference: uuid.NewString,
	}
}

func main() {
	log := logrus.WithField("module", "main")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}
	if err := logging.Setup(cfg.LogLevel, cfg.LogFormat); err != nil {
		log.Fatalf("failed to set up logging: %v", err)
	}

	srv := newServer(cfg)
	httpServer := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      srv.routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infof("listening on %s", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server stopped: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}
}

func (s *server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logging.Middleware(s.log))
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleHome)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	r.Post("/calculate", s.handleCalculate)
	r.Post("/calculate/text", s.handleCalculateText)
	r.Post("/calculate/pdf", s.handleCalculatePDF)

	r.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: s.cfg.AllowedOrigins,
			AllowedMethods: []string{http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type"},
		}))
		r.Post("/calculate", s.handleAPICalculate)
	})

	return r
}

func (s *server) symbol() string {
	if s.cfg.CurrencySymbol == "" {
		return money.DefaultSymbol
	}
	return s.cfg.CurrencySymbol
}

func (s *server) renderTemplate(w http.ResponseWriter, status int, page string, data any) {
	funcs := template.FuncMap{
		"money": func(amount float64) string { return money.Format(s.symbol(), amount) },
	}

	templates, err := template.New("layout.html").Funcs(funcs).ParseFS(
		web.Templates,
		"templates/layout.html",
		"templates/"+page,
	)
	if err != nil {
		s.log.WithError(err).Error("parse template")
		http.Error(w, "failed to parse template", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, "layout.html", data); err != nil {
		s.log.WithError(err).Error("render template")
		http.Error(w, "failed to render template", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
