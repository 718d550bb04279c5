package discord

import (
	"errors"
	"fmt"
	"strings"
)

// ComponentKind is the operation a panel button triggers
type ComponentKind string

const (
	// ComponentOpen shows the detail of one queue with its join and leave buttons
	ComponentOpen ComponentKind = "open"

	// ComponentJoin adds the clicking user to a queue
	ComponentJoin ComponentKind = "join"

	// ComponentLeave removes the clicking user from a queue
	ComponentLeave ComponentKind = "leave"

	// ComponentMembers lists who is waiting in a queue
	ComponentMembers ComponentKind = "members"

	// ComponentOverview lists every queue of the panel with its count
	ComponentOverview ComponentKind = "overview"
)

const customIDPrefix = "mq"

// maxCustomIDLength is Discord's limit for component custom IDs
const maxCustomIDLength = 100

// ErrUnknownComponent is returned for custom IDs this bot did not produce
var ErrUnknownComponent = errors.New("unknown component")

// ComponentAction is the decoded form of a button custom ID
type ComponentAction struct {
	Kind    ComponentKind
	VenueID string
	ModeKey string
}

func (k ComponentKind) needsMode() (bool, error) {
	switch k {
	case ComponentOpen, ComponentJoin, ComponentLeave, ComponentMembers:
		return true, nil
	case ComponentOverview:
		return false, nil
	default:
		return false, fmt.Errorf("%w: kind %q", ErrUnknownComponent, string(k))
	}
}

// CustomID encodes the action as "mq|kind|venue|mode". The mode key goes
// last so it may contain the separator.
func (a ComponentAction) CustomID() (string, error) {
	needsMode, err := a.Kind.needsMode()
	if err != nil {
		return "", err
	}
	if a.VenueID == "" || strings.Contains(a.VenueID, "|") {
		return "", fmt.Errorf("%w: bad venue %q", ErrUnknownComponent, a.VenueID)
	}
	if needsMode && a.ModeKey == "" {
		return "", fmt.Errorf("%w: %s needs a mode", ErrUnknownComponent, a.Kind)
	}

	parts := []string{customIDPrefix, string(a.Kind), a.VenueID}
	if needsMode {
		parts = append(parts, a.ModeKey)
	}
	id := strings.Join(parts, "|")
	if len(id) > maxCustomIDLength {
		return "", fmt.Errorf("%w: custom ID longer than %d", ErrUnknownComponent, maxCustomIDLength)
	}
	return id, nil
}

// ParseComponentAction decodes a custom ID produced by CustomID
func ParseComponentAction(customID string) (ComponentAction, error) {
	parts := strings.SplitN(customID, "|", 4)
	if len(parts) < 3 || parts[0] != customIDPrefix {
		return ComponentAction{}, fmt.Errorf("%w: %q", ErrUnknownComponent, customID)
	}

	action := ComponentAction{Kind: ComponentKind(parts[1]), VenueID: parts[2]}
	needsMode, err := action.Kind.needsMode()
	if err != nil {
		return ComponentAction{}, err
	}
	if action.VenueID == "" {
		return ComponentAction{}, fmt.Errorf("%w: missing venue in %q", ErrUnknownComponent, customID)
	}

	switch {
	case needsMode && len(parts) != 4:
		return ComponentAction{}, fmt.Errorf("%w: missing mode in %q", ErrUnknownComponent, customID)
	case needsMode:
		action.ModeKey = parts[3]
		if action.ModeKey == "" {
			return ComponentAction{}, fmt.Errorf("%w: missing mode in %q", ErrUnknownComponent, customID)
		}
	case len(parts) == 4:
		return ComponentAction{}, fmt.Errorf("%w: unexpected mode in %q", ErrUnknownComponent, customID)
	}

	return action, nil
}
