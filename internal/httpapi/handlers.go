package httpapi

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/neume-network/schema"
	schemaerrors "github.com/neume-network/schema/errors"
	"github.com/neume-network/schema/internal/candidate"
)

// SchemaSummary is one entry of the schema listing.
type SchemaSummary struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

// ValidationResponse reports the outcome of a validation request.
type ValidationResponse struct {
	Schema string                    `json:"schema"`
	Valid  bool                      `json:"valid"`
	Errors []schemaerrors.Validation `json:"errors,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) listSchemas(w http.ResponseWriter, _ *http.Request) {
	entries := schema.Entries()
	out := make([]SchemaSummary, 0, len(entries))
	for _, e := range entries {
		out = append(out, SchemaSummary{Name: e.Name, Description: e.Description, URL: "/schemas/" + e.Name})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) getSchema(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	doc, err := schema.Document(name)
	if err != nil {
		if errors.Is(err, schema.ErrUnknownSchema) {
			writeError(w, http.StatusNotFound, "unknown schema "+name)
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/schema+json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(doc)
}

func (s *Server) validate(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	compiled, ok := s.schemas[name]
	if !ok {
		writeError(w, http.StatusNotFound, "unknown schema "+name)
		return
	}

	value, err := candidate.Decode(http.MaxBytesReader(w, r.Body, maxBodyBytes), requestFormat(r))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	valid, diagnostics := compiled.Check(value)
	resp := ValidationResponse{Schema: name, Valid: valid, Errors: diagnostics}
	status := http.StatusOK
	if !valid {
		status = http.StatusUnprocessableEntity
		s.logger.Debug("candidate rejected",
			"schema", name,
			"request_id", requestIDFrom(r.Context()),
			"diagnostics", len(diagnostics),
		)
	}
	writeJSON(w, status, resp)
}

func requestFormat(r *http.Request) candidate.Format {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return candidate.FormatJSON
	}
	switch mediaType {
	case "application/yaml", "application/x-yaml", "text/yaml":
		return candidate.FormatYAML
	}
	return candidate.FormatJSON
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
