// Package logging configures logrus and provides HTTP request logging.
package logging

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

// Off silences the logger entirely, panic entries included.
const Off = "off"

// Levels maps configuration names to logrus levels.
var Levels = map[string]logrus.Level{
	"trace":    logrus.TraceLevel,
	"debug":    logrus.DebugLevel,
	"info":     logrus.InfoLevel,
	"warn":     logrus.WarnLevel,
	"error":    logrus.ErrorLevel,
	"critical": logrus.FatalLevel,
	Off:        logrus.PanicLevel,
}

// Formatters maps configuration names to logrus formatters.
var Formatters = map[string]logrus.Formatter{
	"text": &logrus.TextFormatter{FullTimestamp: true, TimestampFormat: "2006-01-02 15:04:05.0000"},
	"json": &logrus.JSONFormatter{},
}

// Setup configures the standard logrus logger. Level Off discards all output.
func Setup(level, format string) error {
	lvl, ok := Levels[level]
	if !ok {
		return fmt.Errorf("unknown log level %q", level)
	}
	formatter, ok := Formatters[format]
	if !ok {
		return fmt.Errorf("unknown log format %q", format)
	}

	var out io.Writer = os.Stderr
	if level == Off {
		out = io.Discard
	}

	logrus.SetLevel(lvl)
	logrus.SetFormatter(formatter)
	logrus.SetOutput(out)
	return nil
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// Middleware logs one entry per request through logger.
func Middleware(logger logrus.FieldLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(recorder, r)

			entry := logger.WithFields(logrus.Fields{
				"method":     r.Method,
				"path":       r.URL.Path,
				"status":     recorder.status,
				"durationMs": time.Since(start).Milliseconds(),
				"requestId":  middleware.GetReqID(r.Context()),
			})
			if recorder.status >= http.StatusInternalServerError {
				entry.Warn("request failed")
				return
			}
			entry.Info("request")
		})
	}
}
