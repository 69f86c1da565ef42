package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Step actions.
const (
	ActionSubscribe = "subscribe" // durable subscription on a slot
	ActionWait      = "wait"      // one-shot wait on a slot
	ActionLink      = "link"      // construct a publisher claiming a slot
	ActionFire      = "fire"      // fire a message through a linked slot
)

// Step is one action against a named registry slot.
type Step struct {
	Action  string `yaml:"action"`
	Slot    string `yaml:"slot"`
	Message string `yaml:"message"`
	Args    []any  `yaml:"args"`
}

// Scenario is an ordered script exercising the deferred-binding
// protocol against one registry.
type Scenario struct {
	Name  string `yaml:"name"`
	Steps []Step `yaml:"steps"`
}

// Load reads and validates a scenario file.
func Load(path string) (Scenario, error) {
	var sc Scenario
	b, err := os.ReadFile(path)
	if err != nil {
		return sc, err
	}
	if err := yaml.Unmarshal(b, &sc); err != nil {
		return sc, fmt.Errorf("scenario %s: %w", path, err)
	}
	if err := sc.Validate(); err != nil {
		return sc, fmt.Errorf("scenario %s: %w", path, err)
	}
	return sc, nil
}

// Validate checks every step and fails on the first malformed one.
func (s Scenario) Validate() error {
	if len(s.Steps) == 0 {
		return fmt.Errorf("no steps")
	}
	for i, st := range s.Steps {
		switch st.Action {
		case ActionSubscribe, ActionWait, ActionFire:
			if st.Slot == "" {
				return fmt.Errorf("step %d (%s): missing slot", i, st.Action)
			}
			if st.Message == "" {
				return fmt.Errorf("step %d (%s): missing message", i, st.Action)
			}
		case ActionLink:
			if st.Slot == "" {
				return fmt.Errorf("step %d (link): missing slot", i)
			}
		case "":
			return fmt.Errorf("step %d: missing action", i)
		default:
			return fmt.Errorf("step %d: unknown action %q", i, st.Action)
		}
	}
	return nil
}
