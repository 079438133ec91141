package middleware

import (
	"encoding/json"
	"net/http"

	apperrors "github.com/kbukum/kthmin/errors"
)

// writeError writes an AppError body for middleware that answers before
// a Gin handler runs.
func writeError(w http.ResponseWriter, appErr *apperrors.AppError) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(appErr.HTTPStatus)
	_ = json.NewEncoder(w).Encode(appErr.ToResponse())
}
