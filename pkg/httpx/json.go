// Package httpx holds small helpers shared by all HTTP handlers.
package httpx

import (
	"encoding/json"
	"net/http"
)

type errorResponse struct {
	Detail string `json:"detail"`
}

// WriteJSON encodes v as the response body with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// WriteError writes a {"detail": ...} error body with the given status code.
func WriteError(w http.ResponseWriter, status int, detail string) {
	WriteJSON(w, status, errorResponse{Detail: detail})
}
