package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/dgelleru/fasttools/pkg/fasttools"
)

// QualityRequest represents a quality string request.
type QualityRequest struct {
	Encoded  string `json:"encoded"`
	Encoding string `json:"encoding,omitempty"` // "phred33" or "phred64"
}

// QualityResponse represents the response for quality decoding.
type QualityResponse struct {
	Scores []int `json:"scores"`
	Length int   `json:"length"`
}

// DecodeQualityHandler handles quality decoding requests.
func DecodeQualityHandler(w http.ResponseWriter, r *http.Request) {
	var req QualityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "invalid request body"}`, http.StatusBadRequest)
		return
	}
	if req.Encoded == "" {
		http.Error(w, `{"error": "'encoded' is required"}`, http.StatusBadRequest)
		return
	}

	scores, err := fasttools.DecodeQuality(req.Encoded, req.Encoding)
	if err != nil {
		http.Error(w, `{"error": "`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(QualityResponse{
		Scores: scores,
		Length: len(scores),
	})
}

// AverageQualityResponse represents the response for average quality.
type AverageQualityResponse struct {
	AverageQuality float64 `json:"average_quality"`
	Length         int     `json:"length"`
}

// AverageQualityHandler handles average quality requests.
func AverageQualityHandler(w http.ResponseWriter, r *http.Request) {
	var req QualityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "invalid request body"}`, http.StatusBadRequest)
		return
	}
	if req.Encoded == "" {
		http.Error(w, `{"error": "'encoded' is required"}`, http.StatusBadRequest)
		return
	}

	avg, err := fasttools.AverageQuality(req.Encoded, req.Encoding)
	if err != nil {
		http.Error(w, `{"error": "`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(AverageQualityResponse{
		AverageQuality: avg,
		Length:         len(req.Encoded),
	})
}
