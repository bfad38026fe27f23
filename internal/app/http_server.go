// Package app wires HTTP routes, the control channel, and dispatch together.
package app

import (
	"encoding/json"
	"errors"
	"io/fs"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/frudas24/deskremote/internal/command"
	"github.com/frudas24/deskremote/internal/outcome"
	"github.com/frudas24/deskremote/internal/web"
)

const defaultOutcomeLimit = 50

// detailResponse is the JSON error body shared by every endpoint.
type detailResponse struct {
	Detail string `json:"detail"`
}

// commandsResponse lists the command vocabulary.
type commandsResponse struct {
	Commands []string `json:"commands"`
}

// outcomesResponse lists recent outcomes, newest first.
type outcomesResponse struct {
	Outcomes []outcome.Outcome `json:"outcomes"`
}

// Handler returns the full HTTP handler with middleware applied.
func (a *App) Handler(staticDir string) http.Handler {
	mux := http.NewServeMux()
	a.RegisterRoutes(mux, staticDir)
	return logRequests(recoverPanics(mux))
}

// RegisterRoutes wires API and static handlers onto the mux.
func (a *App) RegisterRoutes(mux *http.ServeMux, staticDir string) {
	if staticDir == "" {
		staticDir = filepath.Join("internal", "web", "static")
	}
	assets := staticFS(staticDir)

	mux.Handle("GET /press/{button}", a.guard.Require(http.HandlerFunc(a.handlePress)))
	mux.Handle("GET /exec/{command}", a.guard.Require(http.HandlerFunc(a.handleExec)))
	mux.Handle("GET /api/commands", a.guard.Require(http.HandlerFunc(a.handleCommands)))
	mux.Handle("GET /api/outcomes", a.guard.Require(http.HandlerFunc(a.handleOutcomes)))
	mux.Handle("/ws/control", a.Control())
	mux.HandleFunc("/favicon.ico", handleFavicon)
	mux.Handle("GET /manifest.json", serveAsset(assets, "manifest.json"))
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(assets))))
	mux.Handle("GET /{$}", serveAsset(assets, "index.html"))
}

// handlePress presses the chord named in the path and redirects home.
func (a *App) handlePress(w http.ResponseWriter, r *http.Request) {
	button := strings.TrimSpace(r.PathValue("button"))
	if button == "" {
		writeDetail(w, http.StatusBadRequest, "Button is required")
		return
	}
	if err := a.dispatcher.Press(button); err != nil {
		log.Printf("press: %s: %v", button, err)
		writeDetail(w, http.StatusInternalServerError, "Failed to press key: "+err.Error())
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handleExec dispatches the named command and redirects home without waiting for it.
func (a *App) handleExec(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("command")
	if _, err := a.dispatcher.Exec(name); err != nil {
		if errors.Is(err, command.ErrUnknownCommand) {
			log.Printf("exec: unknown command requested: %s", name)
			writeDetail(w, http.StatusBadRequest, "Unknown command: "+name)
			return
		}
		log.Printf("exec: %s: %v", name, err)
		writeDetail(w, http.StatusInternalServerError, "Failed to execute command: "+err.Error())
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handleCommands returns the sorted command vocabulary.
func (a *App) handleCommands(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, commandsResponse{Commands: a.dispatcher.Commands()})
}

// handleOutcomes returns recent execution outcomes.
func (a *App) handleOutcomes(w http.ResponseWriter, r *http.Request) {
	limit := defaultOutcomeLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeDetail(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}
	if a.outcomes == nil {
		writeJSON(w, http.StatusOK, outcomesResponse{Outcomes: []outcome.Outcome{}})
		return
	}
	list, err := a.outcomes.Recent(limit)
	if err != nil {
		log.Printf("outcome: list failed: %v", err)
		writeDetail(w, http.StatusInternalServerError, "Failed to list outcomes")
		return
	}
	if list == nil {
		list = []outcome.Outcome{}
	}
	writeJSON(w, http.StatusOK, outcomesResponse{Outcomes: list})
}

// staticFS returns the static asset filesystem, preferring disk then embed.
func staticFS(staticDir string) fs.FS {
	if staticDir != "" {
		if info, err := os.Stat(staticDir); err == nil && info.IsDir() {
			disk := os.DirFS(staticDir)
			if err := web.Verify(disk); err != nil {
				log.Printf("static: %s is incomplete: %v", staticDir, err)
			}
			return disk
		}
	}
	embedded, err := web.StaticFS()
	if err != nil {
		log.Printf("static assets unavailable: %v", err)
		return emptyFS{}
	}
	return embedded
}

// serveAsset serves a single named file from assets.
func serveAsset(assets fs.FS, name string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := fs.Stat(assets, name); err != nil {
			log.Printf("static: %s not found", name)
			writeDetail(w, http.StatusNotFound, "Not found")
			return
		}
		http.ServeFileFS(w, r, assets, name)
	})
}

// emptyFS is used when no static assets exist.
type emptyFS struct{}

// Open always reports a missing file.
func (emptyFS) Open(string) (fs.File, error) {
	return nil, fs.ErrNotExist
}

// handleFavicon avoids noisy 404s for the default browser request.
func handleFavicon(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

// writeDetail writes a {"detail": ...} JSON error body.
func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, detailResponse{Detail: detail})
}

// writeJSON encodes v with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
