package api

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/dgallion1/texfmt/internal/convert"
	"github.com/dgallion1/texfmt/internal/indent"
)

type formatRequest struct {
	// Pointers so missing fields and empty strings can be told apart: an
	// empty document formats to empty output, and an empty indent unit is
	// repeated literally by the engine (stripping all indentation); only
	// an absent indent falls back to the configured default.
	Text   *string `json:"text"`
	Indent *string `json:"indent"`
}

type convertRequest struct {
	Text *string `json:"text"`
	From string  `json:"from"`
	Wrap bool    `json:"wrap"`

	Indent *string `json:"indent"`
}

func (s *Server) handleFormat(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxRequestBytes)

	var req formatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid json payload: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.Text == nil {
		jsonError(w, "text is required", http.StatusBadRequest)
		return
	}

	unit := s.cfg.IndentUnit()
	if req.Indent != nil {
		unit = *req.Indent
	}

	formatted := indent.Format(*req.Text, unit)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"formatted": formatted,
		"changed":   formatted != *req.Text,
	})
}

func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxRequestBytes)

	var req convertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid json payload: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.Text == nil {
		jsonError(w, "text is required", http.StatusBadRequest)
		return
	}
	if req.From == "" {
		jsonError(w, "from is required (markdown, html or docx)", http.StatusBadRequest)
		return
	}

	// DOCX is a binary container, so it rides the text field base64-encoded.
	var src io.Reader = strings.NewReader(*req.Text)
	if convert.Source(req.From) == convert.SourceDOCX {
		data, err := base64.StdEncoding.DecodeString(*req.Text)
		if err != nil {
			jsonError(w, "text must be base64-encoded for docx input", http.StatusBadRequest)
			return
		}
		src = bytes.NewReader(data)
	}

	latex, err := convert.ToLaTeX(convert.Source(req.From), src)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Wrap {
		latex = convert.WrapDocument(latex)
	}

	unit := s.cfg.IndentUnit()
	if req.Indent != nil {
		unit = *req.Indent
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"latex": indent.Format(latex, unit),
	})
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
