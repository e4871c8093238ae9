// Package respond writes JSON bodies for the REST handlers.
package respond

import (
	"encoding/json"
	"net/http"

	"freightdesk/pkg/logger"
)

type errorLogger interface {
	Error(msg string, fields ...logger.Field)
}

// JSON writes status and v as the response body. An encode failure can only be logged, the status is already sent.
func JSON(w http.ResponseWriter, log errorLogger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("encode JSON response", logger.NewField("error", err))
	}
}
