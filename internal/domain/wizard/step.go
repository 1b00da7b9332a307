package wizard

import "fmt"

// Step identifies one of the seven wizard stages. Steps are ordered; Review
// is terminal.
type Step int

const (
	StepHeader Step = iota + 1
	StepRooms
	StepRoomDays
	StepServices
	StepGuarantee
	StepGuests
	StepReview
)

const (
	FirstStep = StepHeader
	LastStep  = StepReview
)

func (s Step) Valid() bool {
	return s >= FirstStep && s <= LastStep
}

// Skippable reports whether the step may be bypassed without persisting
// anything. The header is the mandatory parent of every later resource, and
// rooms cannot be skipped because nightly rates depend on at least one
// persisted room.
func (s Step) Skippable() bool {
	switch s {
	case StepRoomDays, StepServices, StepGuarantee, StepGuests:
		return true
	}
	return false
}

func (s Step) Next() Step {
	if s >= LastStep {
		return LastStep
	}
	return s + 1
}

func (s Step) Prev() Step {
	if s <= FirstStep {
		return FirstStep
	}
	return s - 1
}

func (s Step) String() string {
	switch s {
	case StepHeader:
		return "header"
	case StepRooms:
		return "rooms"
	case StepRoomDays:
		return "room_days"
	case StepServices:
		return "services"
	case StepGuarantee:
		return "guarantee"
	case StepGuests:
		return "guests"
	case StepReview:
		return "review"
	}
	return fmt.Sprintf("step(%d)", int(s))
}

// FieldErrors maps a form field name to a human-readable message. An empty
// map means the form passed validation.
type FieldErrors map[string]string

func (f FieldErrors) Empty() bool { return len(f) == 0 }
