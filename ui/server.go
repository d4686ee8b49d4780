// Package ui serves a small web playground for trying out patterns.
package ui

import (
	"bytes"
	"embed"
	"encoding/json"
	"html/template"
	"net/http"

	"github.com/dhamidi/rex/format"
	"github.com/dhamidi/rex/syntax"
)

//go:embed templates
var embeddedFS embed.FS

type Server struct {
	templates *template.Template
	mux       *http.ServeMux
}

func NewServer() (*Server, error) {
	templates, err := template.ParseFS(embeddedFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	s := &Server{
		templates: templates,
		mux:       http.NewServeMux(),
	}

	s.mux.HandleFunc("/", s.handleIndex)
	s.mux.HandleFunc("/api/parse", s.handleAPIParse)

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

type indexData struct {
	Pattern   string
	Submitted bool
	Dump      string
	JSON      string
	Error     string
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	query := r.URL.Query()
	data := indexData{Pattern: query.Get("pattern")}

	if query.Has("pattern") {
		data.Submitted = true
		re, err := syntax.Parse(data.Pattern)
		if err != nil {
			data.Error = err.Error()
		} else {
			data.Dump = syntax.Dump(re)

			var buf bytes.Buffer
			if err := format.NewJSONEncoder(&buf).Encode(re); err != nil {
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}
			data.JSON = buf.String()
		}
	}

	if err := s.templates.ExecuteTemplate(w, "index.html", data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

type parseRequest struct {
	Pattern string `json:"pattern"`
}

func (s *Server) handleAPIParse(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var request parseRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	re, err := syntax.Parse(request.Pattern)
	if err != nil {
		writeJSONError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := format.NewJSONEncoder(w).Encode(re); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
