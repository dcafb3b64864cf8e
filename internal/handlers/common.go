package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/pathfinder/backend/internal/models"
)

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// serverError logs the cause and answers with a generic message.
func serverError(w http.ResponseWriter, tag string, err error, message string) {
	log.Printf("[%s] %v", tag, err)
	writeJSON(w, http.StatusInternalServerError, models.NewServerErrorResponse(message))
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, models.NewErrorResponse("Invalid request body"))
		return false
	}
	return true
}
