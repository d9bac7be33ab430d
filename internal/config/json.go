package config

import (
	"encoding/json"
	"net/http"

	"github.com/jpdeguzman/alkansave/internal/apperror"
)

func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Fail writes the error envelope for err using its mapped status. Internal
// causes are the caller's responsibility to log; only the generic message
// leaves the process.
func Fail(w http.ResponseWriter, err error) {
	status := apperror.StatusOf(err)
	JSON(w, status, map[string]interface{}{
		"status":     "error",
		"message":    apperror.MessageOf(err),
		"error_code": status,
	})
}
