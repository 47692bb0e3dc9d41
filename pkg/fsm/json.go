package fsm

import (
	"encoding/json"
	"fmt"
)

// ParseJSON parses an automaton from its JSON state table:
//
//	{"states":[{"branches":{"a":[1]},"epsilon_transitions":[],"accepts":false}, ...]}
//
// The result is validated.
func ParseJSON(data []byte) (*Automaton, error) {
	var a Automaton
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, err
	}

	for i := range a.States {
		if a.States[i].Branches == nil {
			a.States[i].Branches = make(map[string][]int)
		}
		if a.States[i].EpsilonTransitions == nil {
			a.States[i].EpsilonTransitions = []int{}
		}
	}

	if err := a.Validate(); err != nil {
		return nil, fmt.Errorf("invalid automaton: %w", err)
	}
	return &a, nil
}

// ToJSON converts an automaton to JSON.
func ToJSON(a *Automaton, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(a, "", "  ")
	}
	return json.Marshal(a)
}
