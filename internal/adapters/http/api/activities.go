// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
)

// ActivityLister defines the interface for listing activities.
type ActivityLister interface {
	List(ctx context.Context) map[string]Activity
}

// ActivitiesHandler handles activity listing requests.
type ActivitiesHandler struct {
	deps ActivityLister
}

// NewActivitiesHandler creates a new activities handler.
func NewActivitiesHandler(deps ActivityLister) *ActivitiesHandler {
	return &ActivitiesHandler{deps: deps}
}

// HandleListActivities handles GET /activities requests. The response is the
// full mapping from activity name to its current attributes, including the
// live participants list.
func (h *ActivitiesHandler) HandleListActivities(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.List(r.Context()))
}
