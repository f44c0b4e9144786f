package middlewares

import (
	"net/http"

	"medsafe-service/internal/pkg/exceptions"
	"medsafe-service/internal/pkg/utils"
)

// RequestBodyLimit rejects oversized uploads. Declared lengths over the
// limit are refused up front; chunked bodies are capped by MaxBytesReader.
func (m *Middlewares) RequestBodyLimit(next http.Handler) http.Handler {
	limitInMegabyte := m.InternalConfig.App.RequestBodyLimitInMegabyte
	limit := int64(limitInMegabyte) << 20
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.ContentLength > limit {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrRequestBodyTooLarge(limitInMegabyte))
			return
		}
		r.Body = http.MaxBytesReader(w, r.Body, limit)
		next.ServeHTTP(w, r)
	})
}
