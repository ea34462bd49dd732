package handler

import (
	"encoding/json"
	"net/http"
)

// Response 統一回應格式
// 所有API回應都包在 {success, message, data} 內
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func SuccessJSON(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, Response{
		Success: true,
		Data:    data,
	})
}

func MessageJSON(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, Response{
		Success: true,
		Message: message,
	})
}

func ErrorJSON(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, Response{
		Success: false,
		Message: message,
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
