// Package handlers provides HTTP handlers for the fasttools API.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/dgelleru/fasttools/pkg/fasttools"
)

// SequenceRequest represents a request with a sequence.
type SequenceRequest struct {
	Sequence string `json:"sequence"`
}

// GCFractionResponse represents the response for GC fraction.
type GCFractionResponse struct {
	GCFraction float64 `json:"gc_fraction"`
	Percent    float64 `json:"percent"`
}

// GCFractionHandler handles GC fraction calculation requests.
func GCFractionHandler(w http.ResponseWriter, r *http.Request) {
	var req SequenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "invalid request body"}`, http.StatusBadRequest)
		return
	}

	gc := fasttools.GCFraction(req.Sequence)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(GCFractionResponse{
		GCFraction: gc,
		Percent:    gc * 100,
	})
}

// ReverseComplementResponse represents the response for reverse complement.
type ReverseComplementResponse struct {
	ReverseComplement string `json:"reverse_complement"`
}

// ReverseComplementHandler handles reverse complement requests.
func ReverseComplementHandler(w http.ResponseWriter, r *http.Request) {
	var req SequenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "invalid request body"}`, http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ReverseComplementResponse{
		ReverseComplement: fasttools.ReverseComplement(req.Sequence),
	})
}

// TranslateResponse represents the response for amino-acid translation.
type TranslateResponse struct {
	AminoAcids string `json:"amino_acids"`
	Residues   int    `json:"residues"`
}

// TranslateHandler handles translation requests.
func TranslateHandler(w http.ResponseWriter, r *http.Request) {
	var req SequenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "invalid request body"}`, http.StatusBadRequest)
		return
	}

	aa := fasttools.Translate(req.Sequence)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(TranslateResponse{
		AminoAcids: aa,
		Residues:   len(aa),
	})
}

// TranscribeResponse represents the response for transcription.
type TranscribeResponse struct {
	RNA string `json:"rna"`
}

// TranscribeHandler handles DNA to RNA transcription requests.
func TranscribeHandler(w http.ResponseWriter, r *http.Request) {
	var req SequenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "invalid request body"}`, http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(TranscribeResponse{
		RNA: fasttools.Transcribe(req.Sequence),
	})
}

// ValidateResponse represents the response for sequence validation.
type ValidateResponse struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

// ValidateHandler handles sequence validation requests.
func ValidateHandler(w http.ResponseWriter, r *http.Request) {
	var req SequenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "invalid request body"}`, http.StatusBadRequest)
		return
	}

	resp := ValidateResponse{Valid: true}
	if err := fasttools.ValidateSequence(req.Sequence); err != nil {
		resp.Valid = false
		resp.Error = err.Error()
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
