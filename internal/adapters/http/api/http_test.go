package api_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mergington/activities/internal/adapters/http/api"
	repository "github.com/mergington/activities/internal/adapters/repository"
	"github.com/mergington/activities/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

// Mock implementations for testing
type mockDirectory struct {
	activities map[string]api.Activity
	byEmail    map[string]string
	signupErr  error
}

func newMockDirectory() *mockDirectory {
	return &mockDirectory{
		activities: map[string]api.Activity{
			"Chess Club": {
				Description:     "Learn strategies and compete in chess tournaments",
				Schedule:        "Fridays, 3:30 PM - 5:00 PM",
				MaxParticipants: 12,
				Participants:    []string{"michael@mergington.edu"},
			},
			"Art Studio": {
				Description:     "Painting and drawing for all skill levels",
				Schedule:        "Mondays, 3:30 PM - 5:00 PM",
				MaxParticipants: 16,
				Participants:    []string{},
			},
		},
		byEmail: map[string]string{"michael@mergington.edu": "Chess Club"},
	}
}

func (m *mockDirectory) List(ctx context.Context) map[string]api.Activity {
	return m.activities
}

func (m *mockDirectory) Signup(ctx context.Context, name, email string) error {
	if m.signupErr != nil {
		return m.signupErr
	}
	a, ok := m.activities[name]
	if !ok {
		return repository.ErrActivityNotFound
	}
	if _, taken := m.byEmail[email]; taken {
		return repository.ErrAlreadySignedUp
	}
	m.byEmail[email] = name
	a.Participants = append(a.Participants, email)
	m.activities[name] = a
	return nil
}

func (m *mockDirectory) Unregister(ctx context.Context, name, email string) error {
	a, ok := m.activities[name]
	if !ok {
		return repository.ErrActivityNotFound
	}
	if m.byEmail[email] != name {
		return repository.ErrNotRegistered
	}
	delete(m.byEmail, email)
	kept := a.Participants[:0]
	for _, p := range a.Participants {
		if p != email {
			kept = append(kept, p)
		}
	}
	a.Participants = kept
	m.activities[name] = a
	return nil
}

type mockStatsProvider struct {
	stats map[string]interface{}
}

func (m *mockStatsProvider) GetStats() map[string]interface{} {
	return m.stats
}

type messageResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

func TestServer_Register(t *testing.T) {
	Convey("Given a new API server", t, func() {
		deps := newMockDirectory()
		statsProvider := &mockStatsProvider{stats: map[string]interface{}{"started": true}}
		server := api.NewServer(deps, statsProvider)
		mux := http.NewServeMux()

		Convey("When registering routes", func() {
			server.Register(context.Background(), mux)

			Convey("Then health endpoint should be accessible", func() {
				req := httptest.NewRequest("GET", "/healthz", nil)
				w := httptest.NewRecorder()
				mux.ServeHTTP(w, req)
				So(w.Code, ShouldEqual, http.StatusOK)
			})

			Convey("And stats endpoint should be accessible", func() {
				req := httptest.NewRequest("GET", "/stats", nil)
				w := httptest.NewRecorder()
				mux.ServeHTTP(w, req)
				So(w.Code, ShouldEqual, http.StatusOK)
			})

			Convey("And activities endpoint should be accessible", func() {
				req := httptest.NewRequest("GET", "/activities", nil)
				w := httptest.NewRecorder()
				mux.ServeHTTP(w, req)
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Header().Get("X-Request-ID"), ShouldNotBeEmpty)
			})

			Convey("And signup routes should be reachable through the mux", func() {
				req := httptest.NewRequest("POST", "/activities/Art%20Studio/signup?email=noah@mergington.edu", nil)
				w := httptest.NewRecorder()
				mux.ServeHTTP(w, req)
				So(w.Code, ShouldEqual, http.StatusOK)
			})

			Convey("And dashboard endpoint should serve HTML with refresh control", func() {
				req := httptest.NewRequest("GET", "/dashboard", nil)
				w := httptest.NewRecorder()
				mux.ServeHTTP(w, req)
				So(w.Code, ShouldEqual, http.StatusOK)
				body := w.Body.String()
				So(body, ShouldContainSubstring, "id=\"refresh-interval\"")
				So(body, ShouldContainSubstring, "id=\"refresh-control\"")
			})
		})
	})
}

func TestActivitiesHandler_HandleListActivities(t *testing.T) {
	Convey("Given an activities handler", t, func() {
		deps := newMockDirectory()
		handler := api.NewActivitiesHandler(deps)

		Convey("When handling a GET request", func() {
			req := httptest.NewRequest("GET", "/activities", nil)
			w := httptest.NewRecorder()

			Convey("Then it should return every activity", func() {
				handler.HandleListActivities(w, req)
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Header().Get("Content-Type"), ShouldContainSubstring, "application/json")

				var response map[string]model.Activity
				err := json.NewDecoder(w.Body).Decode(&response)
				So(err, ShouldBeNil)
				So(len(response), ShouldEqual, 2)
				So(response, ShouldContainKey, "Chess Club")
				So(response["Chess Club"].MaxParticipants, ShouldEqual, 12)
				So(response["Chess Club"].Participants, ShouldContain, "michael@mergington.edu")
				So(response["Art Studio"].Participants, ShouldNotBeNil)
			})
		})

		Convey("When handling a non-GET request", func() {
			req := httptest.NewRequest("POST", "/activities", nil)
			w := httptest.NewRecorder()

			Convey("Then it should return not found status", func() {
				handler.HandleListActivities(w, req)
				So(w.Code, ShouldEqual, http.StatusNotFound)
			})
		})
	})
}

func TestRosterHandler_Signup(t *testing.T) {
	Convey("Given a roster handler", t, func() {
		deps := newMockDirectory()
		handler := api.NewRosterHandler(deps)

		Convey("When signing up a new student", func() {
			req := httptest.NewRequest("POST", "/activities/Chess%20Club/signup?email=newstudent@mergington.edu", nil)
			w := httptest.NewRecorder()

			Convey("Then it should confirm the signup", func() {
				handler.HandleRoster(w, req)
				So(w.Code, ShouldEqual, http.StatusOK)

				var response messageResponse
				err := json.NewDecoder(w.Body).Decode(&response)
				So(err, ShouldBeNil)
				So(response.Message, ShouldEqual, "Signed up newstudent@mergington.edu for Chess Club")
				So(deps.byEmail["newstudent@mergington.edu"], ShouldEqual, "Chess Club")
			})
		})

		Convey("When the email is already registered elsewhere", func() {
			req := httptest.NewRequest("POST", "/activities/Art%20Studio/signup?email=michael@mergington.edu", nil)
			w := httptest.NewRecorder()

			Convey("Then it should return bad request with a detail", func() {
				handler.HandleRoster(w, req)
				So(w.Code, ShouldEqual, http.StatusBadRequest)

				var response errorResponse
				err := json.NewDecoder(w.Body).Decode(&response)
				So(err, ShouldBeNil)
				So(response.Detail, ShouldContainSubstring, "already signed up")
			})
		})

		Convey("When the activity does not exist", func() {
			req := httptest.NewRequest("POST", "/activities/Knitting%20Guild/signup?email=a@mergington.edu", nil)
			w := httptest.NewRecorder()

			Convey("Then it should return not found with a detail", func() {
				handler.HandleRoster(w, req)
				So(w.Code, ShouldEqual, http.StatusNotFound)

				var response errorResponse
				err := json.NewDecoder(w.Body).Decode(&response)
				So(err, ShouldBeNil)
				So(response.Detail, ShouldContainSubstring, "not found")
			})
		})

		Convey("When the email parameter is missing", func() {
			req := httptest.NewRequest("POST", "/activities/Chess%20Club/signup", nil)
			w := httptest.NewRecorder()

			Convey("Then it should return bad request", func() {
				handler.HandleRoster(w, req)
				So(w.Code, ShouldEqual, http.StatusBadRequest)

				var response errorResponse
				err := json.NewDecoder(w.Body).Decode(&response)
				So(err, ShouldBeNil)
				So(response.Detail, ShouldContainSubstring, "email")
			})
		})

		Convey("When using the wrong method", func() {
			req := httptest.NewRequest("GET", "/activities/Chess%20Club/signup?email=a@mergington.edu", nil)
			w := httptest.NewRecorder()

			Convey("Then it should return not found status", func() {
				handler.HandleRoster(w, req)
				So(w.Code, ShouldEqual, http.StatusNotFound)
			})
		})

		Convey("When the directory fails unexpectedly", func() {
			deps.signupErr = fmt.Errorf("store offline")
			req := httptest.NewRequest("POST", "/activities/Chess%20Club/signup?email=a@mergington.edu", nil)
			w := httptest.NewRecorder()

			Convey("Then it should return internal server error", func() {
				handler.HandleRoster(w, req)
				So(w.Code, ShouldEqual, http.StatusInternalServerError)
			})
		})
	})
}

func TestRosterHandler_Unregister(t *testing.T) {
	Convey("Given a roster handler", t, func() {
		deps := newMockDirectory()
		handler := api.NewRosterHandler(deps)

		Convey("When unregistering an existing participant", func() {
			req := httptest.NewRequest("DELETE", "/activities/Chess%20Club/unregister?email=michael@mergington.edu", nil)
			w := httptest.NewRecorder()

			Convey("Then it should confirm the removal", func() {
				handler.HandleRoster(w, req)
				So(w.Code, ShouldEqual, http.StatusOK)

				var response messageResponse
				err := json.NewDecoder(w.Body).Decode(&response)
				So(err, ShouldBeNil)
				So(response.Message, ShouldEqual, "Unregistered michael@mergington.edu from Chess Club")
				So(deps.activities["Chess Club"].Participants, ShouldNotContain, "michael@mergington.edu")
			})
		})

		Convey("When the email is not registered for the activity", func() {
			req := httptest.NewRequest("DELETE", "/activities/Art%20Studio/unregister?email=ghost@mergington.edu", nil)
			w := httptest.NewRecorder()

			Convey("Then it should return bad request with a detail", func() {
				handler.HandleRoster(w, req)
				So(w.Code, ShouldEqual, http.StatusBadRequest)

				var response errorResponse
				err := json.NewDecoder(w.Body).Decode(&response)
				So(err, ShouldBeNil)
				So(response.Detail, ShouldContainSubstring, "not registered")
			})
		})

		Convey("When the activity does not exist", func() {
			req := httptest.NewRequest("DELETE", "/activities/Knitting%20Guild/unregister?email=a@mergington.edu", nil)
			w := httptest.NewRecorder()

			Convey("Then it should return not found status", func() {
				handler.HandleRoster(w, req)
				So(w.Code, ShouldEqual, http.StatusNotFound)
			})
		})

		Convey("When using the wrong method", func() {
			req := httptest.NewRequest("POST", "/activities/Chess%20Club/unregister?email=a@mergington.edu", nil)
			w := httptest.NewRecorder()

			Convey("Then it should return not found status", func() {
				handler.HandleRoster(w, req)
				So(w.Code, ShouldEqual, http.StatusNotFound)
			})
		})
	})
}

func TestRosterHandler_PathParsing(t *testing.T) {
	Convey("Given a roster handler", t, func() {
		deps := newMockDirectory()
		handler := api.NewRosterHandler(deps)

		Convey("When the path has an unknown action", func() {
			req := httptest.NewRequest("POST", "/activities/Chess%20Club/promote?email=a@mergington.edu", nil)
			w := httptest.NewRecorder()

			handler.HandleRoster(w, req)

			Convey("Then it should return not found status", func() {
				So(w.Code, ShouldEqual, http.StatusNotFound)
			})
		})

		Convey("When the path has no action segment", func() {
			req := httptest.NewRequest("POST", "/activities/Chess%20Club", nil)
			w := httptest.NewRecorder()

			handler.HandleRoster(w, req)

			Convey("Then it should return not found status", func() {
				So(w.Code, ShouldEqual, http.StatusNotFound)
			})
		})

		Convey("When the path has extra segments", func() {
			req := httptest.NewRequest("POST", "/activities/Chess%20Club/signup/extra?email=a@mergington.edu", nil)
			w := httptest.NewRecorder()

			handler.HandleRoster(w, req)

			Convey("Then it should return not found status", func() {
				So(w.Code, ShouldEqual, http.StatusNotFound)
			})
		})
	})
}

func TestHealthHandler_HandleHealth(t *testing.T) {
	Convey("Given a health handler", t, func() {
		handler := api.NewHealthHandler()

		Convey("When handling health check request", func() {
			req := httptest.NewRequest("GET", "/healthz", nil)
			w := httptest.NewRecorder()

			Convey("Then it should return OK status", func() {
				handler.HandleHealth(w, req)
				So(w.Code, ShouldEqual, http.StatusOK)
			})
		})
	})
}

func TestStatsHandler_HandleStats(t *testing.T) {
	Convey("Given a stats handler", t, func() {
		mockStats := &mockStatsProvider{
			stats: map[string]interface{}{
				"started":      true,
				"activities":   9,
				"participants": 16,
			},
		}
		handler := api.NewStatsHandler(mockStats)

		Convey("When handling stats request", func() {
			req := httptest.NewRequest("GET", "/stats", nil)
			w := httptest.NewRecorder()

			Convey("Then it should return stats", func() {
				handler.HandleStats(w, req)
				So(w.Code, ShouldEqual, http.StatusOK)

				var response map[string]interface{}
				err := json.NewDecoder(w.Body).Decode(&response)
				So(err, ShouldBeNil)
				So(response["started"], ShouldEqual, true)
				So(response["activities"], ShouldEqual, 9)
			})
		})

		Convey("When handling a non-GET request", func() {
			req := httptest.NewRequest("POST", "/stats", nil)
			w := httptest.NewRecorder()

			Convey("Then it should return not found status", func() {
				handler.HandleStats(w, req)
				So(w.Code, ShouldEqual, http.StatusNotFound)
			})
		})
	})
}
