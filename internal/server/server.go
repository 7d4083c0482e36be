// Package server exposes the description codec over a small JSON API.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"ttsedit/internal/assets"
	"ttsedit/internal/description"
	"ttsedit/internal/log"
)

// maxBody caps request bodies; descriptions are a few KB at most
const maxBody = 1 << 20

// TextBody carries raw description text
type TextBody struct {
	Description string `json:"description"`
}

// UnitSummary lists a unit with its profile labels
type UnitSummary struct {
	Name     string   `json:"name"`
	Profiles []string `json:"profiles"`
	Objects  int      `json:"objects"`
}

// Server serves the API. The library is optional; without it /api/units
// answers 404.
type Server struct {
	library *assets.Library
	router  *mux.Router
}

// New builds the router
func New(library *assets.Library) *Server {
	s := &Server{library: library, router: mux.NewRouter()}

	// Routes sit on the root router so its MethodNotAllowedHandler applies.
	api := s.router
	api.HandleFunc("/api/healthz", s.handleHealthz).Methods(http.MethodGet)
	api.HandleFunc("/api/parse", s.handleParse).Methods(http.MethodPost)
	api.HandleFunc("/api/render", s.handleRender).Methods(http.MethodPost)
	api.HandleFunc("/api/normalize", s.handleNormalize).Methods(http.MethodPost)
	api.HandleFunc("/api/template/{section}", s.handleTemplate).Methods(http.MethodGet)
	api.HandleFunc("/api/units", s.handleUnits).Methods(http.MethodGet)
	api.HandleFunc("/api/units/{name}", s.handleUnit).Methods(http.MethodGet)

	s.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "no route for "+r.URL.Path)
	})
	s.router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, r.Method+" not allowed on "+r.URL.Path)
	})
	s.router.Use(logRequests)

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe runs until ctx is cancelled, then shuts down gracefully
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := newHTTPServer(addr, s)

	errCh := make(chan error, 1)
	go func() {
		log.Info("api listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving %s: %w", addr, err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		log.Info("api shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}

func newHTTPServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ErrorLog:          slog.NewLogLogger(log.Slog().Handler(), slog.LevelError),
	}
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Debug("api request", "method", r.Method, "path", r.URL.Path, "elapsed", time.Since(start))
	})
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{"ok": true})
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	var body TextBody
	if !decodeBody(w, r, &body) {
		return
	}
	writeJSON(w, description.Parse(body.Description))
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	var d description.Description
	if !decodeBody(w, r, &d) {
		return
	}
	writeJSON(w, TextBody{Description: description.Render(d)})
}

func (s *Server) handleNormalize(w http.ResponseWriter, r *http.Request) {
	var body TextBody
	if !decodeBody(w, r, &body) {
		return
	}
	writeJSON(w, TextBody{Description: description.Normalize(body.Description)})
}

func (s *Server) handleTemplate(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["section"]
	section, ok := description.ParseSection(name)
	if !ok {
		writeError(w, http.StatusBadRequest, "unknown section "+name)
		return
	}
	writeJSON(w, TextBody{Description: description.Template(section)})
}

func (s *Server) handleUnits(w http.ResponseWriter, r *http.Request) {
	if s.library == nil {
		writeError(w, http.StatusNotFound, "no save file loaded")
		return
	}
	units := s.library.Units()
	summaries := make([]UnitSummary, 0, len(units))
	for _, unit := range units {
		summaries = append(summaries, summarize(unit))
	}
	writeJSON(w, summaries)
}

// handleUnit returns the parsed profiles of one unit
func (s *Server) handleUnit(w http.ResponseWriter, r *http.Request) {
	if s.library == nil {
		writeError(w, http.StatusNotFound, "no save file loaded")
		return
	}
	name := mux.Vars(r)["name"]
	_, unit, ok := s.library.Find(name)
	if !ok {
		writeError(w, http.StatusNotFound, "unknown unit "+name)
		return
	}

	type profileView struct {
		Name        string                  `json:"name"`
		Count       int                     `json:"count"`
		Description string                  `json:"description"`
		Parsed      description.Description `json:"parsed"`
	}
	profiles := make([]profileView, 0, len(unit.Profiles))
	for _, p := range unit.Profiles {
		profiles = append(profiles, profileView{
			Name:        p.Name,
			Count:       p.Count(),
			Description: p.Description,
			Parsed:      p.Parsed(),
		})
	}
	writeJSON(w, map[string]any{"name": unit.Name, "profiles": profiles})
}

func summarize(unit *assets.Unit) UnitSummary {
	labels := make([]string, 0, len(unit.Profiles))
	for _, p := range unit.Profiles {
		labels = append(labels, p.Label())
	}
	return UnitSummary{Name: unit.Name, Profiles: labels, Objects: unit.ObjectCount()}
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBody))
	if err := dec.Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"error":   http.StatusText(code),
		"message": msg,
		"status":  code,
	})
}
