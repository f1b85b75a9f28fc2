package repository

import "github.com/mergington/activities/internal/domain/model"

// DefaultSeed returns the nine built-in activities. Every deployment starts
// from this set unless a seed file overrides it; nothing is persisted, so a
// restart always comes back to the seed state.
func DefaultSeed() map[string]model.Activity {
	return map[string]model.Activity{
		"Chess Club": {
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		"Programming Class": {
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		},
		"Gym Class": {
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
		},
		"Basketball Team": {
			Description:     "Competitive basketball training and inter-school games",
			Schedule:        "Wednesdays, 4:00 PM - 6:00 PM",
			MaxParticipants: 15,
			Participants:    []string{"james@mergington.edu", "amelia@mergington.edu"},
		},
		"Tennis Club": {
			Description:     "Tennis practice and friendly matches on the school courts",
			Schedule:        "Tuesdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 10,
			Participants:    []string{"lucas@mergington.edu"},
		},
		"Art Studio": {
			Description:     "Painting, drawing, and mixed-media projects",
			Schedule:        "Thursdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 16,
			Participants:    []string{"mia@mergington.edu", "noah@mergington.edu"},
		},
		"Drama Club": {
			Description:     "Acting, stagecraft, and the spring theater production",
			Schedule:        "Mondays and Wednesdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 25,
			Participants:    []string{"ella@mergington.edu", "ethan@mergington.edu"},
		},
		"Debate Team": {
			Description:     "Formal debate training and regional competitions",
			Schedule:        "Fridays, 4:00 PM - 5:30 PM",
			MaxParticipants: 14,
			Participants:    []string{"ava@mergington.edu"},
		},
		"Robotics Club": {
			Description:     "Design, build, and program robots for competitions",
			Schedule:        "Saturdays, 10:00 AM - 12:00 PM",
			MaxParticipants: 18,
			Participants:    []string{"liam@mergington.edu", "isabella@mergington.edu"},
		},
	}
}
