package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"weatherdash/location"
	"weatherdash/models"
)

type searchRequest struct {
	Query string `json:"query"`
}

// locateRequest carries the outcome of the browser's geolocation call:
// a position on success, or the error code on failure. An empty body asks
// the server to use its own device locator.
type locateRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Error     string   `json:"error"`
}

type themeRequest struct {
	Theme string `json:"theme"`
}

// HealthHandler reports liveness.
func (s *WeatherServer) HealthHandler(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetStateHandler returns the current dashboard state.
func (s *WeatherServer) GetStateHandler(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, s.controller.Snapshot())
}

// SearchHandler handles city search. Search failures are part of the returned
// state, not HTTP errors.
func (s *WeatherServer) SearchHandler(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondErr(w, http.StatusBadRequest, errors.New("invalid search request body"))
		return
	}

	respond(w, http.StatusOK, s.controller.Search(r.Context(), req.Query))
}

// LocateHandler handles the "use my location" action.
func (s *WeatherServer) LocateHandler(w http.ResponseWriter, r *http.Request) {
	var req locateRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil && !errors.Is(err, io.EOF) {
		respondErr(w, http.StatusBadRequest, errors.New("invalid locate request body"))
		return
	}

	switch {
	case req.Error != "":
		respond(w, http.StatusOK, s.controller.LocateWith(r.Context(), location.ReportedError(req.Error)))
	case req.Latitude != nil && req.Longitude != nil:
		coord := models.Coordinate{Latitude: *req.Latitude, Longitude: *req.Longitude}
		respond(w, http.StatusOK, s.controller.LocateWith(r.Context(), location.Reported(coord)))
	case req.Latitude != nil || req.Longitude != nil:
		respondErr(w, http.StatusBadRequest, errors.New("latitude and longitude must be provided together"))
	default:
		respond(w, http.StatusOK, s.controller.Locate(r.Context()))
	}
}

// RefreshHandler reloads the displayed location.
func (s *WeatherServer) RefreshHandler(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, s.controller.Refresh(r.Context()))
}

// GetThemeHandler returns the theme preference.
func (s *WeatherServer) GetThemeHandler(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, themeRequest{Theme: s.theme.Get()})
}

// SetThemeHandler stores the theme preference.
func (s *WeatherServer) SetThemeHandler(w http.ResponseWriter, r *http.Request) {
	var req themeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondErr(w, http.StatusBadRequest, errors.New("invalid theme request body"))
		return
	}

	if err := s.theme.Set(req.Theme); err != nil {
		respondErr(w, http.StatusBadRequest, err)
		return
	}

	respond(w, http.StatusOK, req)
}
