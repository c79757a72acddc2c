package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"triage-insights-go/internal/aggregator"
	"triage-insights-go/internal/dataset"
	"triage-insights-go/internal/explain"
	"triage-insights-go/internal/logger"
	"triage-insights-go/internal/processor"
	"triage-insights-go/internal/types"
)

const maxBodyBytes = 1 << 20

type handler struct {
	datasets DatasetProvider
	defaults explain.Defaults
}

func (h *handler) health(w http.ResponseWriter, r *http.Request) {
	fmt.Fprint(w, "ok")
}

func (h *handler) explain(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context()).WithField("handler", "explain")

	var req types.AssessmentRequest
	if err := decodeBody(w, r, &req); err != nil {
		log.WithError(err).Warn("bad request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	res, err := processor.Explain(req, h.defaults)
	writeJSON(w, r, statusFor(err), res)
}

func (h *handler) analytics(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context()).WithField("handler", "analytics")

	if h.datasets == nil {
		http.Error(w, "no dataset configured", http.StatusServiceUnavailable)
		return
	}
	ds, err := h.datasets.Dataset(r.Context())
	if err != nil {
		log.WithError(err).Error("dataset unavailable")
		http.Error(w, "dataset unavailable", http.StatusBadGateway)
		return
	}

	res, err := processor.BuildDashboard(ds)
	writeJSON(w, r, statusFor(err), res)
}

func (h *handler) analyzeDataset(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context()).WithField("handler", "analyze")

	var ds types.Dataset
	if err := decodeBody(w, r, &ds); err != nil {
		log.WithError(err).Warn("bad request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	res, err := processor.BuildDashboard(ds)
	writeJSON(w, r, statusFor(err), res)
}

func (h *handler) demo(w http.ResponseWriter, r *http.Request) {
	res, err := processor.BuildDashboard(dataset.Demo())
	writeJSON(w, r, statusFor(err), res)
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	return json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(v)
}

func statusFor(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, explain.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, aggregator.ErrMissingSlice):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		logger.FromContext(r.Context()).WithError(err).Error("failed to write response")
	}
}
