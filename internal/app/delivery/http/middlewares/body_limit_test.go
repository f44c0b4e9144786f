package middlewares

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"medsafe-service/internal/app/config"
	"medsafe-service/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newLimitedMiddlewares(limitInMegabyte int) *Middlewares {
	return &Middlewares{
		Log: zap.NewNop(),
		InternalConfig: &config.InternalConfig{
			App: config.App{RequestBodyLimitInMegabyte: limitInMegabyte},
		},
	}
}

func TestRequestBodyLimit(t *testing.T) {
	echoHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := io.ReadAll(r.Body); err != nil {
			w.WriteHeader(constvars.StatusRequestEntityTooLarge)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	t.Run("Body within the limit passes through", func(t *testing.T) {
		middlewares := newLimitedMiddlewares(1)

		req := httptest.NewRequest("POST", "/api/v1/referti", strings.NewReader("small payload"))
		rr := httptest.NewRecorder()

		middlewares.RequestBodyLimit(echoHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Declared length over the limit is refused up front", func(t *testing.T) {
		middlewares := newLimitedMiddlewares(1)

		req := httptest.NewRequest("POST", "/api/v1/referti", strings.NewReader(strings.Repeat("x", (1<<20)+1)))
		rr := httptest.NewRecorder()

		middlewares.RequestBodyLimit(echoHandler).ServeHTTP(rr, req)

		assert.Equal(t, constvars.StatusRequestEntityTooLarge, rr.Code)
		assert.Contains(t, rr.Body.String(), "1MB")
	})

	t.Run("Undeclared length is capped while reading", func(t *testing.T) {
		middlewares := newLimitedMiddlewares(1)

		req := httptest.NewRequest("POST", "/api/v1/referti", strings.NewReader(strings.Repeat("x", (1<<20)+1)))
		req.ContentLength = -1
		rr := httptest.NewRecorder()

		middlewares.RequestBodyLimit(echoHandler).ServeHTTP(rr, req)

		assert.Equal(t, constvars.StatusRequestEntityTooLarge, rr.Code)
	})
}
