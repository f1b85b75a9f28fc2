// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	repository "github.com/mergington/activities/internal/adapters/repository"
)

// RosterDependencies defines the interface for roster mutations.
type RosterDependencies interface {
	Signup(ctx context.Context, name, email string) error
	Unregister(ctx context.Context, name, email string) error
}

// RosterHandler handles signup and unregister requests.
type RosterHandler struct {
	deps RosterDependencies
}

// NewRosterHandler creates a new roster handler.
func NewRosterHandler(deps RosterDependencies) *RosterHandler {
	return &RosterHandler{deps: deps}
}

// HandleRoster dispatches requests under /activities/{name}/... to the
// signup and unregister operations. The mux has already decoded the path, so
// names with spaces arrive in clear text.
func (h *RosterHandler) HandleRoster(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/activities/")
	name, action, ok := strings.Cut(rest, "/")
	if !ok || name == "" || strings.Contains(action, "/") {
		http.NotFound(w, r)
		return
	}

	email := strings.TrimSpace(r.URL.Query().Get("email"))

	switch action {
	case "signup":
		if r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		h.handleSignup(w, r, name, email)
	case "unregister":
		if r.Method != http.MethodDelete {
			http.NotFound(w, r)
			return
		}
		h.handleUnregister(w, r, name, email)
	default:
		http.NotFound(w, r)
	}
}

// handleSignup handles POST /activities/{name}/signup?email= requests.
func (h *RosterHandler) handleSignup(w http.ResponseWriter, r *http.Request, name, email string) {
	if email == "" {
		writeError(w, http.StatusBadRequest, detailMissingEmail)
		return
	}

	err := h.deps.Signup(r.Context(), name, email)
	switch {
	case err == nil:
		writeMessage(w, fmt.Sprintf("Signed up %s for %s", email, name))
	case errors.Is(err, repository.ErrActivityNotFound):
		writeError(w, http.StatusNotFound, detailActivityNotFound)
	case errors.Is(err, repository.ErrAlreadySignedUp):
		writeError(w, http.StatusBadRequest, fmt.Sprintf("%s is already signed up", email))
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

// handleUnregister handles DELETE /activities/{name}/unregister?email= requests.
func (h *RosterHandler) handleUnregister(w http.ResponseWriter, r *http.Request, name, email string) {
	if email == "" {
		writeError(w, http.StatusBadRequest, detailMissingEmail)
		return
	}

	err := h.deps.Unregister(r.Context(), name, email)
	switch {
	case err == nil:
		writeMessage(w, fmt.Sprintf("Unregistered %s from %s", email, name))
	case errors.Is(err, repository.ErrActivityNotFound):
		writeError(w, http.StatusNotFound, detailActivityNotFound)
	case errors.Is(err, repository.ErrNotRegistered):
		writeError(w, http.StatusBadRequest, fmt.Sprintf("%s is not registered for this activity", email))
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
