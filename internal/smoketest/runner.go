package smoketest

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/mergington/activities/pkg/logger"
)

// Run executes the complete signup smoke test against a running service.
func Run(ctx context.Context, config *Config) error {
	stats := &Stats{
		StartTime: time.Now(),
	}

	logger.Get().Info(ctx, "starting activity signup smoke test",
		logger.String("baseURL", config.BaseURL),
		logger.Int("students", config.NumStudents),
		logger.Int("workers", config.Workers),
		logger.String("timeout", config.Timeout.String()),
		logger.String("activity", config.Activity),
		logger.Any("verbose", config.Verbose))

	client := newHTTPClient(config.Timeout)

	// Step 1: Check service health
	if err := checkServiceHealth(ctx, client, config); err != nil {
		return fmt.Errorf("service health check failed: %w", err)
	}

	// Step 2: Fetch the activity directory
	activities, err := fetchActivities(ctx, client, config)
	if err != nil {
		return fmt.Errorf("activity listing failed: %w", err)
	}

	targets, err := pickTargets(config, activities)
	if err != nil {
		return err
	}

	// Step 3: Sign up synthetic students concurrently
	emails := generateEmails(config.NumStudents)
	assignments := submitSignups(ctx, client, config, targets, emails, stats)

	// Step 4: Verify every successful signup appears in the listing
	if err := verifySignups(ctx, client, config, assignments); err != nil {
		return fmt.Errorf("signup verification failed: %w", err)
	}

	// Step 5: Duplicate signups must be rejected
	if err := verifyDuplicateRejection(ctx, client, config, targets, assignments, stats); err != nil {
		return fmt.Errorf("duplicate rejection check failed: %w", err)
	}

	// Step 6: Unregister everything this run created
	if err := cleanupSignups(ctx, client, config, assignments, stats); err != nil {
		return fmt.Errorf("cleanup failed: %w", err)
	}

	// Final statistics
	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)

	displayFinalStats(stats)

	logger.Get().Info(ctx, "smoke test completed successfully")
	return nil
}

// checkServiceHealth verifies the service is running.
func checkServiceHealth(ctx context.Context, client *HTTPClient, config *Config) error {
	logger.Get().Info(ctx, "checking service health")

	resp, err := client.Get(ctx, config.BaseURL+"/healthz")
	if err != nil {
		return fmt.Errorf("failed to connect to service: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logger.Get().Error(context.Background(), "failed to close response body", logger.Error(err))
		}
	}()

	// Accept any 200 response as healthy (the service returns Prometheus metrics)
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("service health check failed with status: %d", resp.StatusCode)
	}

	logger.Get().Info(ctx, "service is healthy")
	return nil
}

// fetchActivities retrieves the full activity directory.
func fetchActivities(ctx context.Context, client *HTTPClient, config *Config) (map[string]Activity, error) {
	resp, err := client.Get(ctx, config.BaseURL+"/activities")
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		_ = readJSON(resp, nil)
		return nil, fmt.Errorf("unexpected status %d listing activities", resp.StatusCode)
	}

	var activities map[string]Activity
	if err := readJSON(resp, &activities); err != nil {
		return nil, err
	}
	if len(activities) == 0 {
		return nil, fmt.Errorf("service returned no activities")
	}

	logger.Get().Info(ctx, "fetched activity directory", logger.Int("activities", len(activities)))
	return activities, nil
}

// pickTargets resolves which activities receive the synthetic signups.
func pickTargets(config *Config, activities map[string]Activity) ([]string, error) {
	if config.Activity != "" {
		if _, ok := activities[config.Activity]; !ok {
			return nil, fmt.Errorf("activity %q not found on the service", config.Activity)
		}
		return []string{config.Activity}, nil
	}

	targets := make([]string, 0, len(activities))
	for name := range activities {
		targets = append(targets, name)
	}
	// Deterministic round-robin order across runs.
	sort.Strings(targets)
	return targets, nil
}

// generateEmails creates unique throwaway student emails.
func generateEmails(n int) []string {
	emails := make([]string, n)
	for i := range emails {
		emails[i] = "smoke-" + uuid.New().String() + "@mergington.edu"
	}
	return emails
}

// rosterURL builds the signup or unregister URL for an activity and email.
func rosterURL(base, activity, action, email string) string {
	return base + "/activities/" + url.PathEscape(activity) + "/" + action + "?email=" + url.QueryEscape(email)
}

// submitSignups signs up every email concurrently and returns the
// email -> activity assignment of the successful ones.
func submitSignups(ctx context.Context, client *HTTPClient, config *Config, targets, emails []string, stats *Stats) map[string]string {
	logger.Get().Info(ctx, "submitting signups",
		logger.Int("students", len(emails)),
		logger.Int("workers", config.Workers))

	var (
		attempted  int64
		successful int64
		conflicted int64
		failed     int64
	)

	type assignment struct {
		email    string
		activity string
	}

	jobs := make(chan assignment, config.Workers*2)
	results := make(chan assignment, len(emails))
	var wg sync.WaitGroup

	for w := 0; w < config.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				select {
				case <-ctx.Done():
					return
				default:
				}

				atomic.AddInt64(&attempted, 1)
				resp, err := client.Post(ctx, rosterURL(config.BaseURL, job.activity, "signup", job.email))
				if err != nil {
					atomic.AddInt64(&failed, 1)
					continue
				}

				switch resp.StatusCode {
				case http.StatusOK:
					_ = readJSON(resp, nil)
					atomic.AddInt64(&successful, 1)
					results <- job
				case http.StatusBadRequest:
					_ = readJSON(resp, nil)
					atomic.AddInt64(&conflicted, 1)
				default:
					_ = readJSON(resp, nil)
					atomic.AddInt64(&failed, 1)
				}
			}
		}()
	}

	go func() {
		defer close(jobs)
		for i, email := range emails {
			select {
			case <-ctx.Done():
				return
			case jobs <- assignment{email: email, activity: targets[i%len(targets)]}:
			}
		}
	}()

	wg.Wait()
	close(results)

	assignments := make(map[string]string, len(emails))
	for r := range results {
		assignments[r.email] = r.activity
	}

	stats.SignupsAttempted = int(atomic.LoadInt64(&attempted))
	stats.SignupsSuccessful = int(atomic.LoadInt64(&successful))
	stats.SignupsConflicted = int(atomic.LoadInt64(&conflicted))
	stats.SignupsFailed = int(atomic.LoadInt64(&failed))

	logger.Get().Info(ctx, "signup submission completed",
		logger.Int("successful", stats.SignupsSuccessful),
		logger.Int("conflicted", stats.SignupsConflicted),
		logger.Int("failed", stats.SignupsFailed))

	return assignments
}

// verifySignups re-reads the directory and checks every assignment landed.
func verifySignups(ctx context.Context, client *HTTPClient, config *Config, assignments map[string]string) error {
	logger.Get().Info(ctx, "verifying signups", logger.Int("expected", len(assignments)))

	activities, err := fetchActivities(ctx, client, config)
	if err != nil {
		return err
	}

	rosters := make(map[string]map[string]bool, len(activities))
	for name, a := range activities {
		members := make(map[string]bool, len(a.Participants))
		for _, p := range a.Participants {
			members[p] = true
		}
		rosters[name] = members
	}

	for email, activity := range assignments {
		if !rosters[activity][email] {
			return fmt.Errorf("email %s missing from %s roster", email, activity)
		}
	}

	logger.Get().Info(ctx, "all signups verified")
	return nil
}

// verifyDuplicateRejection replays a handful of signups and expects 400s.
func verifyDuplicateRejection(ctx context.Context, client *HTTPClient, config *Config, targets []string, assignments map[string]string, stats *Stats) error {
	const sampleSize = 5

	checked := 0
	for email := range assignments {
		if checked == sampleSize {
			break
		}
		checked++

		// Replay against a different activity when possible; the uniqueness
		// rule spans the whole directory.
		target := assignments[email]
		for _, t := range targets {
			if t != target {
				target = t
				break
			}
		}

		resp, err := client.Post(ctx, rosterURL(config.BaseURL, target, "signup", email))
		if err != nil {
			return err
		}

		var errResp ErrorResponse
		if err := readJSON(resp, &errResp); err != nil {
			return err
		}
		if resp.StatusCode != http.StatusBadRequest {
			return fmt.Errorf("duplicate signup for %s returned %d, want 400", email, resp.StatusCode)
		}
		stats.DuplicatesRejected++
	}

	logger.Get().Info(ctx, "duplicate signups rejected as expected", logger.Int("checked", stats.DuplicatesRejected))
	return nil
}

// cleanupSignups unregisters every email this run added.
func cleanupSignups(ctx context.Context, client *HTTPClient, config *Config, assignments map[string]string, stats *Stats) error {
	logger.Get().Info(ctx, "cleaning up signups", logger.Int("count", len(assignments)))

	for email, activity := range assignments {
		stats.UnregisterAttempted++
		resp, err := client.Delete(ctx, rosterURL(config.BaseURL, activity, "unregister", email))
		if err != nil {
			return err
		}
		_ = readJSON(resp, nil)
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("unregister of %s from %s returned %d, want 200", email, activity, resp.StatusCode)
		}
		stats.UnregisterSucceeded++
	}

	logger.Get().Info(ctx, "cleanup completed")
	return nil
}

// displayFinalStats prints the final test statistics.
func displayFinalStats(stats *Stats) {
	var successRate, signupsPerSecond float64

	if stats.SignupsAttempted > 0 {
		successRate = float64(stats.SignupsSuccessful) / float64(stats.SignupsAttempted) * 100
	}

	if stats.Duration > 0 {
		signupsPerSecond = float64(stats.SignupsAttempted) / stats.Duration.Seconds()
	}

	logger.Get().Info(context.Background(), "final statistics",
		logger.Int("signupsAttempted", stats.SignupsAttempted),
		logger.Int("signupsSuccessful", stats.SignupsSuccessful),
		logger.Int("signupsConflicted", stats.SignupsConflicted),
		logger.Int("signupsFailed", stats.SignupsFailed),
		logger.Int("duplicatesRejected", stats.DuplicatesRejected),
		logger.Int("unregisterSucceeded", stats.UnregisterSucceeded),
		logger.String("duration", stats.Duration.String()),
		logger.Any("successRate", successRate),
		logger.Any("signupsPerSecond", signupsPerSecond))
}
