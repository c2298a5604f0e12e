// internal/controller/respond.go
package controller

import (
	"encoding/json"
	"net/http"
)

// writeJSON serializes v with the given status. Everything this API returns
// is JSON except the rate limiter's plain-text message.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeMessage sends the {"message": ...} body used for every non-200
// outcome. Internal error detail never reaches the client.
func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}
