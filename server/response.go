package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"weatherdash/logger"
)

type errorResponse struct {
	Code    int
	Message string
}

// Respond is a function to send http responses.
func respond(w http.ResponseWriter, code int, payload interface{}) {
	body, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, fmt.Sprintf("can't marshal the given payload: %v", err), http.StatusInternalServerError)
		logger.Error(err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err = w.Write(body); err != nil {
		logger.Error(fmt.Errorf("can't write response: %w", err))
	}
}

// RespondErr is a function to make http error responses.
func respondErr(w http.ResponseWriter, code int, err error) {
	respErr := errorResponse{
		Code:    code,
		Message: err.Error(),
	}

	respond(w, code, respErr)
}
