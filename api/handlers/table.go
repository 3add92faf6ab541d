package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/dgelleru/fasttools/pkg/fasttools"
)

// TableRequest represents a table derivation request for a server-local
// read file.
type TableRequest struct {
	Path      string `json:"path"`
	Paired    bool   `json:"paired,omitempty"`
	StrictIDs bool   `json:"strict_ids,omitempty"`
}

// TableResponse carries the derived columns of a table. This endpoint
// is the export boundary for external plotting and reporting tools.
type TableResponse struct {
	Summary fasttools.Summary  `json:"summary"`
	Columns []fasttools.Column `json:"columns"`
}

// DeriveTableHandler loads a read file, computes every applicable
// derived column, and responds with the full column export.
func DeriveTableHandler(w http.ResponseWriter, r *http.Request) {
	var req TableRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "invalid request body"}`, http.StatusBadRequest)
		return
	}
	if req.Path == "" {
		http.Error(w, `{"error": "'path' is required"}`, http.StatusBadRequest)
		return
	}

	var tbl *fasttools.Table
	var err error
	if req.Paired {
		tbl, err = fasttools.LoadPaired(req.Path, req.StrictIDs)
	} else {
		tbl, err = fasttools.Load(req.Path)
	}
	if err != nil {
		http.Error(w, `{"error": "`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	if err := tbl.ComputeAll(); err != nil {
		http.Error(w, `{"error": "`+err.Error()+`"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(TableResponse{
		Summary: tbl.Summarize(),
		Columns: tbl.Columns(),
	})
}

// SummaryHandler loads a read file and responds with aggregate
// statistics only.
func SummaryHandler(w http.ResponseWriter, r *http.Request) {
	var req TableRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "invalid request body"}`, http.StatusBadRequest)
		return
	}
	if req.Path == "" {
		http.Error(w, `{"error": "'path' is required"}`, http.StatusBadRequest)
		return
	}

	var tbl *fasttools.Table
	var err error
	if req.Paired {
		tbl, err = fasttools.LoadPaired(req.Path, req.StrictIDs)
	} else {
		tbl, err = fasttools.Load(req.Path)
	}
	if err != nil {
		http.Error(w, `{"error": "`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(tbl.Summarize())
}
