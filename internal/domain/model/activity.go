// Package model contains domain models passed between layers.
package model

// Activity represents one extracurricular offering and its roster.
// JSON tags mirror the wire format of GET /activities.
type Activity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"` // unique emails, signup order
}

// SpotsLeft reports remaining advisory capacity, clamped at zero.
// Capacity is never enforced on signup; this exists for display only.
func (a Activity) SpotsLeft() int {
	left := a.MaxParticipants - len(a.Participants)
	if left < 0 {
		return 0
	}
	return left
}

// HasParticipant reports whether email is on the activity's roster.
func (a Activity) HasParticipant(email string) bool {
	for _, p := range a.Participants {
		if p == email {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so callers can hand the activity across API
// boundaries without exposing the live roster slice.
func (a Activity) Clone() Activity {
	c := a
	c.Participants = make([]string, len(a.Participants))
	copy(c.Participants, a.Participants)
	return c
}
