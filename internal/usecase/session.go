package usecase

import (
	"sync"
	"time"

	"stayops/internal/domain/wizard"

	"github.com/google/uuid"
)

// Session is one live wizard run. Each session owns exactly one draft store;
// there is no cross-session sharing. Mu serializes all draft mutations, and
// inFlight guards each step against duplicate submissions while a gateway
// call is pending.
type Session struct {
	ID        uuid.UUID
	Store     *wizard.Store
	CreatedAt time.Time
	UpdatedAt time.Time

	Mu       sync.Mutex
	inFlight map[wizard.Step]bool
}

func NewSession(id uuid.UUID, store *wizard.Store, now time.Time) *Session {
	return &Session{
		ID:        id,
		Store:     store,
		CreatedAt: now,
		UpdatedAt: now,
		inFlight:  make(map[wizard.Step]bool),
	}
}

// beginStep marks a step submission as in flight. Callers must hold Mu.
func (s *Session) beginStep(step wizard.Step) bool {
	if s.inFlight[step] {
		return false
	}
	s.inFlight[step] = true
	return true
}

// endStep clears the in-flight flag. Callers must hold Mu.
func (s *Session) endStep(step wizard.Step) {
	delete(s.inFlight, step)
}

// SessionState is the read-only view handed to callers: enough for a step
// indicator and for rendering the current step's form.
type SessionState struct {
	SessionID        uuid.UUID
	BookingID        string
	CurrentStep      wizard.Step
	CompletedSteps   []wizard.Step
	HighestReachable wizard.Step
	Draft            wizard.Draft
}

func stateOf(s *Session) *SessionState {
	d := s.Store.Draft()
	return &SessionState{
		SessionID:        s.ID,
		BookingID:        d.BookingID,
		CurrentStep:      d.CurrentStep,
		CompletedSteps:   d.CompletedSteps(),
		HighestReachable: d.HighestReachable(),
		Draft:            d,
	}
}
