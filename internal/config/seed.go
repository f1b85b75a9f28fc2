package config

import (
	"context"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/mergington/activities/internal/domain/model"
)

// seedActivity mirrors one activity entry in a YAML seed file.
type seedActivity struct {
	Description     string   `koanf:"description"`
	Schedule        string   `koanf:"schedule"`
	MaxParticipants int      `koanf:"max_participants"`
	Participants    []string `koanf:"participants"`
}

// LoadSeed reads an activity seed from a YAML file keyed by activity name:
//
//	Chess Club:
//	  description: Learn strategies and compete in chess tournaments
//	  schedule: Fridays, 3:30 PM - 5:00 PM
//	  max_participants: 12
//	  participants:
//	    - michael@mergington.edu
//
// The returned map feeds repository.WithSeed; the directory key set is fixed
// for the process lifetime once constructed.
func LoadSeed(ctx context.Context, path string) (map[string]model.Activity, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, wrap(ErrLoadSeed, err)
	}

	raw := make(map[string]seedActivity)
	if err := k.UnmarshalWithConf("", &raw, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, wrap(ErrLoadSeed, err)
	}
	if len(raw) == 0 {
		return nil, wrap(ErrLoadSeed, nil)
	}

	seed := make(map[string]model.Activity, len(raw))
	for name, a := range raw {
		participants := a.Participants
		if participants == nil {
			participants = []string{}
		}
		seed[name] = model.Activity{
			Description:     a.Description,
			Schedule:        a.Schedule,
			MaxParticipants: a.MaxParticipants,
			Participants:    participants,
		}
	}
	return seed, nil
}
