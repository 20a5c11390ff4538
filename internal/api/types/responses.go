package types

import (
	"encoding/json"
	"net/http"

	"github.com/eightd-studio/engine/internal/models"
)

// APIResponse is the envelope every endpoint answers with.
type APIResponse struct {
	Success   bool              `json:"success"`
	Data      any               `json:"data,omitempty"`
	Message   string            `json:"message,omitempty"`
	Errors    []string          `json:"errors,omitempty"`
	Count     *int              `json:"count,omitempty"`
	ProblemID *uint             `json:"problem_id,omitempty"`
	Stats     *models.TreeStats `json:"stats,omitempty"`
}

// Deleted is the data of a successful delete.
type Deleted struct {
	ID      uint  `json:"id"`
	Removed int64 `json:"removed"`
}

func OK(data any) APIResponse {
	return APIResponse{Success: true, Data: data}
}

func OKMessage(data any, message string) APIResponse {
	return APIResponse{Success: true, Data: data, Message: message}
}

// List wraps a collection and reports its size in count.
func List[T any](items []T) APIResponse {
	n := len(items)
	if items == nil {
		items = []T{}
	}
	return APIResponse{Success: true, Data: items, Count: &n}
}

// WriteJSON encodes v with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
