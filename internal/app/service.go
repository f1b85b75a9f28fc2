// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"errors"
	"sync"

	repository "github.com/mergington/activities/internal/adapters/repository"
	"github.com/mergington/activities/internal/config"
	"github.com/mergington/activities/internal/domain/model"
	"github.com/mergington/activities/pkg/logger"
	"github.com/mergington/activities/pkg/metrics"
)

// Service implements the API dependencies for the activity directory.
type Service struct {
	mu sync.RWMutex

	// Core components
	directory repository.Store

	// Configuration
	seed     map[string]model.Activity
	seedFile string

	// State
	started bool

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(logger logger.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithSeed replaces the built-in activity seed.
func WithSeed(seed map[string]model.Activity) Option {
	return func(s *Service) {
		if len(seed) > 0 {
			s.seed = seed
		}
	}
}

// WithSeedFile points the service at a YAML seed file loaded on Start.
// A loaded file takes precedence over WithSeed.
func WithSeedFile(path string) Option {
	return func(s *Service) {
		s.seedFile = path
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		logger: nil, // Will be replaced when service starts
	}

	// Apply all options
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start initializes the directory. The activity key set is fixed from here
// on; only rosters mutate until the process exits.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	// Initialize logger if not already set
	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting activity directory service...")

	if s.seedFile != "" {
		seed, err := config.LoadSeed(ctx, s.seedFile)
		if err != nil {
			return err
		}
		s.seed = seed
		s.logger.Info(ctx, "loaded activity seed file",
			logger.String("path", s.seedFile),
			logger.Int("activities", len(seed)),
		)
	}

	var dirOpts []repository.Option
	if s.seed != nil {
		dirOpts = append(dirOpts, repository.WithSeed(s.seed))
	}
	s.directory = repository.NewDirectory(ctx, dirOpts...)

	s.started = true
	s.logger.Info(ctx, "activity directory service started",
		logger.Int("activities", s.directory.Count(ctx)),
		logger.Int("participants", s.directory.ParticipantCount(ctx)),
	)

	return nil
}

// Stop shuts the service down. State is in-memory only, so there is nothing
// to flush; a restart always comes back to the seed data.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	s.started = false
	s.logger.Info(context.Background(), "activity directory service stopped")
}

// List returns every activity with its live roster.
func (s *Service) List(ctx context.Context) map[string]model.Activity {
	return s.directory.List(ctx)
}

// Signup registers email for the named activity.
func (s *Service) Signup(ctx context.Context, name, email string) error {
	err := s.directory.Signup(ctx, name, email)
	switch {
	case err == nil:
		metrics.RecordSignup()
		s.logger.Info(ctx, "participant signed up",
			logger.String("activity", name),
			logger.String("email", email),
		)
	case errors.Is(err, repository.ErrAlreadySignedUp):
		metrics.RecordSignupConflict()
	case errors.Is(err, repository.ErrActivityNotFound):
		metrics.RecordUnknownActivity()
	}
	return err
}

// Unregister removes email from the named activity.
func (s *Service) Unregister(ctx context.Context, name, email string) error {
	err := s.directory.Unregister(ctx, name, email)
	switch {
	case err == nil:
		metrics.RecordUnregistration()
		s.logger.Info(ctx, "participant unregistered",
			logger.String("activity", name),
			logger.String("email", email),
		)
	case errors.Is(err, repository.ErrActivityNotFound):
		metrics.RecordUnknownActivity()
	}
	return err
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx := context.Background()
	stats := map[string]interface{}{
		"started": s.started,
	}

	if s.started {
		activities := s.directory.Count(ctx)
		participants := s.directory.ParticipantCount(ctx)

		stats["activities"] = activities
		stats["participants"] = participants

		// Update metrics
		metrics.UpdateActivityCount(activities)
		metrics.UpdateParticipantCount(participants)
	}

	return stats
}
