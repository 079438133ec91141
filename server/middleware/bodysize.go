package middleware

import (
	"net/http"

	apperrors "github.com/kbukum/kthmin/errors"
	"github.com/kbukum/kthmin/util"
)

const defaultMaxBodySize = 1 << 20

// BodySizeLimit caps the request body at maxSize (e.g. "1MB", "512KB").
// Reads past the limit fail with *http.MaxBytesError, which the find
// handler reports as 413.
func BodySizeLimit(maxSize string) Middleware {
	size := util.ParseSize(maxSize, defaultMaxBodySize)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > size {
				writeError(w, apperrors.PayloadTooLarge(size))
				return
			}
			r.Body = http.MaxBytesReader(w, r.Body, size)
			next.ServeHTTP(w, r)
		})
	}
}
