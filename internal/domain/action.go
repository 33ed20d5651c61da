package domain

import "fmt"

// Action is the on/off state change applied to a device. The literal strings
// "on" and "off" are also the wire values.
type Action string

const (
	ActionOn  Action = "on"
	ActionOff Action = "off"
)

func ParseAction(s string) (Action, error) {
	switch Action(s) {
	case ActionOn, ActionOff:
		return Action(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidAction, s)
	}
}

func (a Action) Opposite() Action {
	if a == ActionOn {
		return ActionOff
	}
	return ActionOn
}
