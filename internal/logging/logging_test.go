package logging

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// restoreStandardLogger puts the global logger back the way the test found it.
func restoreStandardLogger(t *testing.T) {
	t.Helper()

	std := logrus.StandardLogger()
	level, formatter, out := std.GetLevel(), std.Formatter, std.Out
	t.Cleanup(func() {
		std.SetLevel(level)
		std.SetFormatter(formatter)
		std.SetOutput(out)
	})
}

func TestSetup(t *testing.T) {
	restoreStandardLogger(t)

	require.NoError(t, Setup("debug", "json"))
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logrus.StandardLogger().Formatter)

	assert.Error(t, Setup("verbose", "text"))
	assert.Error(t, Setup("info", "xml"))
}

func TestSetup_OffDiscardsEverything(t *testing.T) {
	restoreStandardLogger(t)

	require.NoError(t, Setup(Off, "text"))
	assert.Equal(t, io.Discard, logrus.StandardLogger().Out)

	var buf bytes.Buffer
	require.NoError(t, Setup("info", "text"))
	logrus.SetOutput(&buf)
	logrus.Info("visible")
	assert.Contains(t, buf.String(), "visible")
}

func TestMiddleware_LogsStatusAndRequestID(t *testing.T) {
	logger, hook := test.NewNullLogger()

	handler := middleware.RequestID(Middleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/calculate", nil))

	require.Len(t, hook.AllEntries(), 1)
	entry := hook.LastEntry()
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, http.StatusTeapot, entry.Data["status"])
	assert.Equal(t, "/calculate", entry.Data["path"])
	assert.NotEmpty(t, entry.Data["requestId"])
}

func TestMiddleware_WarnsOnServerError(t *testing.T) {
	logger, hook := test.NewNullLogger()

	handler := Middleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
}
