package smoketest

import "time"

// Config holds configuration for the signup smoke test
type Config struct {
	BaseURL     string        // Base URL of the service
	NumStudents int           // Number of synthetic students to sign up
	Workers     int           // Number of concurrent workers
	Timeout     time.Duration // HTTP request timeout
	Activity    string        // Target activity; empty means spread across all
	LogFile     string        // Log file for test output
	Verbose     bool          // Enable verbose logging
}

// Activity mirrors the read shape of the /activities response.
type Activity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// MessageResponse is the success shape of signup and unregister.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the error shape of the API.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// Stats holds test statistics
type Stats struct {
	SignupsAttempted    int
	SignupsSuccessful   int
	SignupsConflicted   int
	SignupsFailed       int
	DuplicatesRejected  int
	UnregisterAttempted int
	UnregisterSucceeded int
	StartTime           time.Time
	EndTime             time.Time
	Duration            time.Duration
}
