package usecase

import (
	"context"
	"errors"
	"fmt"

	"stayops/internal/domain/booking"
	"stayops/internal/domain/wizard"
	"stayops/internal/pkg/clock"
	"stayops/internal/pkg/errs"

	"github.com/google/uuid"
)

//go:generate mockgen -source=wizard.go -destination=../../tests/mock/usecase/wizard.go -package=usecasemock

var (
	ErrSessionNotFound     = errs.New("wizard session not found")
	ErrSessionClosed       = errs.New("wizard session was closed while a call was in flight")
	ErrStepInFlight        = errs.New("step submission already in progress")
	ErrStepNotSkippable    = errs.New("current step cannot be skipped")
	ErrStepUnreachable     = errs.New("step is beyond the highest completed step")
	ErrNotAtReview         = errs.New("booking can only be completed from the review step")
	ErrAggregateLoadFailed = errs.New("failed to load booking for resume")
)

// ValidationError carries a step validator's field → message map. It blocks
// persistence; no gateway call is made.
type ValidationError struct {
	Fields wizard.FieldErrors
}

func (e *ValidationError) Error() string { return "step validation failed" }

// WizardCommands drives the booking creation wizard: one session per run,
// step submissions with the validate → persist → record → advance protocol,
// navigation, and resume from persisted server state.
type WizardCommands interface {
	StartSession(ctx context.Context) (*SessionState, error)
	Resume(ctx context.Context, bookingID string) (*SessionState, error)
	GetState(ctx context.Context, sessionID uuid.UUID) (*SessionState, error)
	Abandon(ctx context.Context, sessionID uuid.UUID) error

	SubmitHeader(ctx context.Context, sessionID uuid.UUID, form wizard.HeaderForm) (*SessionState, error)
	SubmitRoom(ctx context.Context, sessionID uuid.UUID, index *int, form wizard.RoomForm, advance bool) (*SessionState, error)
	RemoveRoom(ctx context.Context, sessionID uuid.UUID, index int) (*SessionState, error)
	SubmitRoomDays(ctx context.Context, sessionID uuid.UUID, tempID string, days []wizard.RoomDay, advance bool) (*SessionState, error)
	SubmitService(ctx context.Context, sessionID uuid.UUID, form wizard.ServiceForm, advance bool) (*SessionState, error)
	RemoveService(ctx context.Context, sessionID uuid.UUID, index int) (*SessionState, error)
	SubmitGuarantee(ctx context.Context, sessionID uuid.UUID, form wizard.GuaranteeForm) (*SessionState, error)
	SubmitGuest(ctx context.Context, sessionID uuid.UUID, index *int, form wizard.GuestForm, advance bool) (*SessionState, error)
	RemoveGuest(ctx context.Context, sessionID uuid.UUID, index int) (*SessionState, error)

	Skip(ctx context.Context, sessionID uuid.UUID) (*SessionState, error)
	Back(ctx context.Context, sessionID uuid.UUID) (*SessionState, error)
	Goto(ctx context.Context, sessionID uuid.UUID, step wizard.Step) (*SessionState, error)
	Complete(ctx context.Context, sessionID uuid.UUID) (string, error)
}

type wizardCommandsImpl struct {
	sessions   SessionRepository
	bookings   BookingGateway
	rooms      RoomGateway
	roomDays   RoomDayGateway
	services   ServiceGateway
	guarantees GuaranteeGateway
	guests     GuestGateway
	clock      clock.Clock
}

func NewWizardCommands(
	sessions SessionRepository,
	bookings BookingGateway,
	rooms RoomGateway,
	roomDays RoomDayGateway,
	services ServiceGateway,
	guarantees GuaranteeGateway,
	guests GuestGateway,
	clock clock.Clock,
) WizardCommands {
	return &wizardCommandsImpl{
		sessions:   sessions,
		bookings:   bookings,
		rooms:      rooms,
		roomDays:   roomDays,
		services:   services,
		guarantees: guarantees,
		guests:     guests,
		clock:      clock,
	}
}

func (w *wizardCommandsImpl) StartSession(_ context.Context) (*SessionState, error) {
	s := NewSession(uuid.New(), wizard.NewStore(), w.clock.Now())
	w.sessions.Save(s)
	return stateOf(s), nil
}

func (w *wizardCommandsImpl) GetState(_ context.Context, sessionID uuid.UUID) (*SessionState, error) {
	s, ok := w.sessions.Find(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}
	s.Mu.Lock()
	defer s.Mu.Unlock()
	return stateOf(s), nil
}

func (w *wizardCommandsImpl) Abandon(_ context.Context, sessionID uuid.UUID) error {
	if _, ok := w.sessions.Find(sessionID); !ok {
		return ErrSessionNotFound
	}
	w.sessions.Delete(sessionID)
	return nil
}

// SubmitHeader runs step 1: validate, create (or update in place) the booking
// header, record the server identifier and advance to rooms. Every later
// step's create call needs the identifier recorded here.
func (w *wizardCommandsImpl) SubmitHeader(ctx context.Context, sessionID uuid.UUID, form wizard.HeaderForm) (*SessionState, error) {
	s, ok := w.sessions.Find(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}

	s.Mu.Lock()
	if fieldErrs := wizard.ValidateHeader(form); !fieldErrs.Empty() {
		s.Mu.Unlock()
		return nil, &ValidationError{Fields: fieldErrs}
	}
	if !s.beginStep(wizard.StepHeader) {
		s.Mu.Unlock()
		return nil, ErrStepInFlight
	}
	bookingID := s.Store.Draft().BookingID
	s.Mu.Unlock()

	var rec *BookingRecord
	var err error
	if bookingID != "" {
		rec, err = w.bookings.UpdateBooking(ctx, bookingID, headerPayload(form))
	} else {
		rec, err = w.bookings.CreateBooking(ctx, headerPayload(form))
	}

	return w.finishStep(s, wizard.StepHeader, err, func() error {
		if err := s.Store.SetHeader(form); err != nil {
			return err
		}
		if err := s.Store.SetBookingID(rec.ID); err != nil {
			return err
		}
		if err := s.Store.MarkCompleted(wizard.StepHeader); err != nil {
			return err
		}
		return s.Store.SetCurrentStep(wizard.StepRooms)
	})
}

// SubmitRoom persists one room: create when the room has no server identifier
// yet, update in place otherwise. With advance the wizard moves on to nightly
// rates; without it the user stays on the rooms step to add another.
func (w *wizardCommandsImpl) SubmitRoom(ctx context.Context, sessionID uuid.UUID, index *int, form wizard.RoomForm, advance bool) (*SessionState, error) {
	s, ok := w.sessions.Find(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}

	s.Mu.Lock()
	draft := s.Store.Draft()
	if draft.BookingID == "" {
		s.Mu.Unlock()
		return nil, wizard.ErrBookingIDRequired
	}
	var stay *booking.StayRange
	if draft.Header != nil {
		if r, known := draft.Header.StayRange(); known {
			stay = &r
		}
	}
	if fieldErrs := wizard.ValidateRoom(form, stay); !fieldErrs.Empty() {
		s.Mu.Unlock()
		return nil, &ValidationError{Fields: fieldErrs}
	}

	var serverID string
	if index != nil {
		if *index < 0 || *index >= len(draft.Rooms) {
			s.Mu.Unlock()
			return nil, wizard.ErrIndexOutOfRange
		}
		serverID = draft.Rooms[*index].ServerID
	}
	if !s.beginStep(wizard.StepRooms) {
		s.Mu.Unlock()
		return nil, ErrStepInFlight
	}
	s.Mu.Unlock()

	var rec *RoomRecord
	var err error
	if serverID != "" {
		rec, err = w.rooms.UpdateRoom(ctx, serverID, roomPayload(form))
	} else {
		rec, err = w.rooms.CreateRoom(ctx, draft.BookingID, roomPayload(form))
	}

	return w.finishStep(s, wizard.StepRooms, err, func() error {
		if index != nil {
			if err := s.Store.UpdateRoom(*index, form); err != nil {
				return err
			}
		} else {
			tempID, err := s.Store.AddRoom(form)
			if err != nil {
				return err
			}
			if err := s.Store.MapRoomID(tempID, rec.ID); err != nil {
				return err
			}
		}
		if err := s.Store.MarkCompleted(wizard.StepRooms); err != nil {
			return err
		}
		if advance {
			return s.Store.SetCurrentStep(wizard.StepRoomDays)
		}
		return nil
	})
}

// RemoveRoom deletes a room: remotely when it already has a server
// identifier, then locally along with its identifier mapping and day groups.
func (w *wizardCommandsImpl) RemoveRoom(ctx context.Context, sessionID uuid.UUID, index int) (*SessionState, error) {
	s, ok := w.sessions.Find(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}

	s.Mu.Lock()
	draft := s.Store.Draft()
	if index < 0 || index >= len(draft.Rooms) {
		s.Mu.Unlock()
		return nil, wizard.ErrIndexOutOfRange
	}
	serverID := draft.Rooms[index].ServerID
	if !s.beginStep(wizard.StepRooms) {
		s.Mu.Unlock()
		return nil, ErrStepInFlight
	}
	s.Mu.Unlock()

	var err error
	if serverID != "" {
		err = w.rooms.DeleteRoom(ctx, serverID)
	}

	return w.finishStep(s, wizard.StepRooms, err, func() error {
		return s.Store.RemoveRoom(index)
	})
}

// SubmitRoomDays persists the nightly rates for one room. The step is marked
// complete only once every room carries a day group, matching how resume
// judges step 3.
func (w *wizardCommandsImpl) SubmitRoomDays(ctx context.Context, sessionID uuid.UUID, tempID string, days []wizard.RoomDay, advance bool) (*SessionState, error) {
	s, ok := w.sessions.Find(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}

	s.Mu.Lock()
	draft := s.Store.Draft()
	room, known := s.Store.RoomByTempID(tempID)
	if !known {
		s.Mu.Unlock()
		return nil, wizard.ErrUnknownTempID
	}
	roomID, resolved := draft.RoomIDs[tempID]
	if !resolved {
		s.Mu.Unlock()
		return nil, wizard.ErrRoomNotResolved
	}
	fieldErrs := wizard.FieldErrors{}
	for i, d := range days {
		if !booking.ValidAmount(d.Price) {
			fieldErrs[dayField(i)] = "price must be a non-negative number with at most two decimals"
		}
	}
	// The exact-cover rule is checked before anything is persisted; a gapped
	// or duplicated day set must never reach the channel manager.
	if stay, ok := room.StayRange(); !ok || !wizard.CoversNights(stay.Nights(), days) {
		fieldErrs["days"] = "entries must cover each night of the room's stay exactly once"
	}
	if !fieldErrs.Empty() {
		s.Mu.Unlock()
		return nil, &ValidationError{Fields: fieldErrs}
	}
	if !s.beginStep(wizard.StepRoomDays) {
		s.Mu.Unlock()
		return nil, ErrStepInFlight
	}
	s.Mu.Unlock()

	var err error
	for _, d := range days {
		if _, err = w.roomDays.CreateRoomDay(ctx, roomID, RoomDayPayload{Date: d.Date, Price: d.Price}); err != nil {
			break
		}
	}

	return w.finishStep(s, wizard.StepRoomDays, err, func() error {
		if err := s.Store.AddRoomDays(tempID, days); err != nil {
			return err
		}
		if w.allRoomsHaveDays(s) {
			if err := s.Store.MarkCompleted(wizard.StepRoomDays); err != nil {
				return err
			}
		}
		if advance {
			s.Store.AdvanceStep()
		}
		return nil
	})
}

func (w *wizardCommandsImpl) allRoomsHaveDays(s *Session) bool {
	d := s.Store.Draft()
	if len(d.Rooms) == 0 {
		return false
	}
	for _, r := range d.Rooms {
		if len(d.RoomDays[r.TempID]) == 0 {
			return false
		}
	}
	return true
}

func (w *wizardCommandsImpl) SubmitService(ctx context.Context, sessionID uuid.UUID, form wizard.ServiceForm, advance bool) (*SessionState, error) {
	s, ok := w.sessions.Find(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}

	s.Mu.Lock()
	draft := s.Store.Draft()
	if draft.BookingID == "" {
		s.Mu.Unlock()
		return nil, wizard.ErrBookingIDRequired
	}
	if fieldErrs := wizard.ValidateService(form); !fieldErrs.Empty() {
		s.Mu.Unlock()
		return nil, &ValidationError{Fields: fieldErrs}
	}
	if !s.beginStep(wizard.StepServices) {
		s.Mu.Unlock()
		return nil, ErrStepInFlight
	}
	s.Mu.Unlock()

	line := wizard.ServiceDraft{ServiceForm: form, Total: wizard.ComputeServiceTotal(form)}
	rec, err := w.services.CreateService(ctx, draft.BookingID, servicePayload(line))

	return w.finishStep(s, wizard.StepServices, err, func() error {
		line.ServerID = rec.ID
		if err := s.Store.AddService(line); err != nil {
			return err
		}
		if err := s.Store.MarkCompleted(wizard.StepServices); err != nil {
			return err
		}
		if advance {
			s.Store.AdvanceStep()
		}
		return nil
	})
}

// RemoveService drops a draft service line locally. Removal needs no gateway
// call; unsaved lines exist only in the draft.
func (w *wizardCommandsImpl) RemoveService(_ context.Context, sessionID uuid.UUID, index int) (*SessionState, error) {
	s, ok := w.sessions.Find(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}
	s.Mu.Lock()
	defer s.Mu.Unlock()
	if err := s.Store.RemoveService(index); err != nil {
		return nil, err
	}
	s.UpdatedAt = w.clock.Now()
	return stateOf(s), nil
}

func (w *wizardCommandsImpl) SubmitGuarantee(ctx context.Context, sessionID uuid.UUID, form wizard.GuaranteeForm) (*SessionState, error) {
	s, ok := w.sessions.Find(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}

	s.Mu.Lock()
	draft := s.Store.Draft()
	if draft.BookingID == "" {
		s.Mu.Unlock()
		return nil, wizard.ErrBookingIDRequired
	}
	if fieldErrs := wizard.ValidateGuarantee(form); !fieldErrs.Empty() {
		s.Mu.Unlock()
		return nil, &ValidationError{Fields: fieldErrs}
	}
	var serverID string
	if draft.Guarantee != nil {
		serverID = draft.Guarantee.ServerID
	}
	if !s.beginStep(wizard.StepGuarantee) {
		s.Mu.Unlock()
		return nil, ErrStepInFlight
	}
	s.Mu.Unlock()

	var rec *GuaranteeRecord
	var err error
	if serverID != "" {
		rec, err = w.guarantees.UpdateGuarantee(ctx, serverID, guaranteePayload(form))
	} else {
		rec, err = w.guarantees.CreateGuarantee(ctx, draft.BookingID, guaranteePayload(form))
	}

	return w.finishStep(s, wizard.StepGuarantee, err, func() error {
		if err := s.Store.SetGuarantee(wizard.GuaranteeDraft{ServerID: rec.ID, GuaranteeForm: form}); err != nil {
			return err
		}
		if err := s.Store.MarkCompleted(wizard.StepGuarantee); err != nil {
			return err
		}
		s.Store.AdvanceStep()
		return nil
	})
}

// SubmitGuest persists one guest. Advancing to review requires the draft to
// end up with at least one guest, which a successful submit guarantees.
func (w *wizardCommandsImpl) SubmitGuest(ctx context.Context, sessionID uuid.UUID, index *int, form wizard.GuestForm, advance bool) (*SessionState, error) {
	s, ok := w.sessions.Find(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}

	s.Mu.Lock()
	draft := s.Store.Draft()
	if draft.BookingID == "" {
		s.Mu.Unlock()
		return nil, wizard.ErrBookingIDRequired
	}
	if fieldErrs := wizard.ValidateGuest(form); !fieldErrs.Empty() {
		s.Mu.Unlock()
		return nil, &ValidationError{Fields: fieldErrs}
	}
	var serverID string
	if index != nil {
		if *index < 0 || *index >= len(draft.Guests) {
			s.Mu.Unlock()
			return nil, wizard.ErrIndexOutOfRange
		}
		serverID = draft.Guests[*index].ServerID
	}
	if !s.beginStep(wizard.StepGuests) {
		s.Mu.Unlock()
		return nil, ErrStepInFlight
	}
	s.Mu.Unlock()

	var rec *GuestRecord
	var err error
	if serverID != "" {
		rec, err = w.guests.UpdateGuest(ctx, serverID, guestPayload(form))
	} else {
		rec, err = w.guests.CreateGuest(ctx, draft.BookingID, guestPayload(form))
	}

	return w.finishStep(s, wizard.StepGuests, err, func() error {
		guest := wizard.GuestDraft{ServerID: rec.ID, GuestForm: form}
		if index != nil {
			if err := s.Store.UpdateGuest(*index, guest); err != nil {
				return err
			}
		} else {
			if err := s.Store.AddGuest(guest); err != nil {
				return err
			}
		}
		if err := s.Store.MarkCompleted(wizard.StepGuests); err != nil {
			return err
		}
		if advance {
			s.Store.AdvanceStep()
		}
		return nil
	})
}

// RemoveGuest deletes a guest remotely when persisted, then locally. An
// earlier completion of the guests step is kept; later steps never cascade.
func (w *wizardCommandsImpl) RemoveGuest(ctx context.Context, sessionID uuid.UUID, index int) (*SessionState, error) {
	s, ok := w.sessions.Find(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}

	s.Mu.Lock()
	draft := s.Store.Draft()
	if index < 0 || index >= len(draft.Guests) {
		s.Mu.Unlock()
		return nil, wizard.ErrIndexOutOfRange
	}
	serverID := draft.Guests[index].ServerID
	if !s.beginStep(wizard.StepGuests) {
		s.Mu.Unlock()
		return nil, ErrStepInFlight
	}
	s.Mu.Unlock()

	var err error
	if serverID != "" {
		err = w.guests.DeleteGuest(ctx, serverID)
	}

	return w.finishStep(s, wizard.StepGuests, err, func() error {
		return s.Store.RemoveGuest(index)
	})
}

// Skip advances past the current optional step without persisting or marking
// it complete. The header and rooms steps are structurally non-skippable.
func (w *wizardCommandsImpl) Skip(_ context.Context, sessionID uuid.UUID) (*SessionState, error) {
	s, ok := w.sessions.Find(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}
	s.Mu.Lock()
	defer s.Mu.Unlock()
	if !s.Store.Draft().CurrentStep.Skippable() {
		return nil, ErrStepNotSkippable
	}
	s.Store.AdvanceStep()
	s.UpdatedAt = w.clock.Now()
	return stateOf(s), nil
}

func (w *wizardCommandsImpl) Back(_ context.Context, sessionID uuid.UUID) (*SessionState, error) {
	s, ok := w.sessions.Find(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}
	s.Mu.Lock()
	defer s.Mu.Unlock()
	s.Store.StepBack()
	s.UpdatedAt = w.clock.Now()
	return stateOf(s), nil
}

func (w *wizardCommandsImpl) Goto(_ context.Context, sessionID uuid.UUID, step wizard.Step) (*SessionState, error) {
	s, ok := w.sessions.Find(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}
	s.Mu.Lock()
	defer s.Mu.Unlock()
	if err := s.Store.SetCurrentStep(step); err != nil {
		if errors.Is(err, wizard.ErrStepUnreachable) {
			return nil, ErrStepUnreachable
		}
		return nil, err
	}
	s.UpdatedAt = w.clock.Now()
	return stateOf(s), nil
}

// Complete finishes the wizard at the review step: the session is discarded
// and the booking identifier handed back to the caller. The persisted child
// resources are already final; there is nothing left to save.
func (w *wizardCommandsImpl) Complete(_ context.Context, sessionID uuid.UUID) (string, error) {
	s, ok := w.sessions.Find(sessionID)
	if !ok {
		return "", ErrSessionNotFound
	}
	s.Mu.Lock()
	defer s.Mu.Unlock()
	d := s.Store.Draft()
	if d.CurrentStep != wizard.StepReview {
		return "", ErrNotAtReview
	}
	if d.BookingID == "" {
		return "", wizard.ErrBookingIDRequired
	}
	bookingID := d.BookingID
	s.Store.Reset()
	w.sessions.Delete(sessionID)
	return bookingID, nil
}

// finishStep applies a step's post-persistence mutations. The gateway error,
// if any, propagates verbatim and leaves the draft and step pointer
// untouched. A session deleted while the call was in flight swallows the
// result: no identifier is written after a reset.
func (w *wizardCommandsImpl) finishStep(s *Session, step wizard.Step, gatewayErr error, apply func() error) (*SessionState, error) {
	s.Mu.Lock()
	defer s.Mu.Unlock()
	s.endStep(step)

	if _, ok := w.sessions.Find(s.ID); !ok {
		return nil, ErrSessionClosed
	}
	if gatewayErr != nil {
		return nil, gatewayErr
	}
	if err := apply(); err != nil {
		return nil, err
	}
	s.UpdatedAt = w.clock.Now()
	return stateOf(s), nil
}

func dayField(i int) string {
	return fmt.Sprintf("days[%d].price", i)
}
