package handler

import (
	"encoding/json"
	"net/http"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	if status < 400 {
		status = http.StatusInternalServerError
	}
	writeJSON(w, status, map[string]string{"error": message})
}

func writeErrorWithErr(w http.ResponseWriter, status int, message string, err error) {
	if err == nil {
		writeError(w, status, message)
		return
	}
	if message == "" {
		writeError(w, status, err.Error())
		return
	}
	writeError(w, status, message+": "+err.Error())
}
