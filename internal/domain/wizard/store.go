package wizard

import (
	"fmt"
	"time"
)

// InvariantError signals a violated draft invariant. These are contract
// violations on the coordinator's side, not user input problems: they must
// surface loudly and are never silently corrected.
type InvariantError struct {
	Invariant string
	Detail    string
}

func (e *InvariantError) Error() string {
	if e.Detail == "" {
		return "wizard invariant violated: " + e.Invariant
	}
	return "wizard invariant violated: " + e.Invariant + ": " + e.Detail
}

var (
	ErrRoomOutsideStay   = &InvariantError{Invariant: "room-range-nesting", Detail: "room dates must lie within the booking date range"}
	ErrRoomNotResolved   = &InvariantError{Invariant: "room-days-require-server-id", Detail: "room days may only be added once the room has a server identifier"}
	ErrRoomDaysMismatch  = &InvariantError{Invariant: "room-days-exact-cover", Detail: "day entries must cover exactly the room's nights"}
	ErrBookingIDRequired = &InvariantError{Invariant: "child-requires-booking-id", Detail: "booking header must be persisted first"}
	ErrStepOutOfRange    = &InvariantError{Invariant: "step-bounds", Detail: "step must be between 1 and 7"}
	ErrStepUnreachable   = &InvariantError{Invariant: "step-reachability", Detail: "step is beyond the highest completed step + 1"}
	ErrUnknownTempID     = &InvariantError{Invariant: "temp-id-known", Detail: "temp identifier has no room in the draft"}
	ErrEmptyIdentifier   = &InvariantError{Invariant: "identifier-non-empty"}
	ErrIndexOutOfRange   = &InvariantError{Invariant: "index-in-range"}
)

// Store owns one Draft and is its only mutation surface. It is not safe for
// concurrent use; callers serialize access per wizard session.
type Store struct {
	draft   Draft
	roomSeq int
}

func NewStore() *Store {
	return &Store{draft: emptyDraft()}
}

// Reconstruct builds a store from a draft rebuilt out of persisted server
// state. The fetched data is trusted as-is; invariants apply again from the
// next mutation on. roomSeq must be past the highest assigned temp index so
// new rooms get fresh temp identifiers.
func Reconstruct(d Draft, roomSeq int) *Store {
	if d.RoomIDs == nil {
		d.RoomIDs = map[string]string{}
	}
	if d.RoomDays == nil {
		d.RoomDays = map[string][]RoomDay{}
	}
	if d.Completed == nil {
		d.Completed = map[Step]struct{}{}
	}
	if d.CurrentStep == 0 {
		d.CurrentStep = StepHeader
	}
	return &Store{draft: d, roomSeq: roomSeq}
}

// Draft returns a deep snapshot so callers cannot mutate held state behind
// the store's back.
func (s *Store) Draft() Draft {
	d := s.draft
	if s.draft.Header != nil {
		h := *s.draft.Header
		d.Header = &h
	}
	d.Rooms = append([]RoomDraft(nil), s.draft.Rooms...)
	d.RoomIDs = make(map[string]string, len(s.draft.RoomIDs))
	for k, v := range s.draft.RoomIDs {
		d.RoomIDs[k] = v
	}
	d.RoomDays = make(map[string][]RoomDay, len(s.draft.RoomDays))
	for k, v := range s.draft.RoomDays {
		d.RoomDays[k] = append([]RoomDay(nil), v...)
	}
	d.Services = append([]ServiceDraft(nil), s.draft.Services...)
	if s.draft.Guarantee != nil {
		g := *s.draft.Guarantee
		d.Guarantee = &g
	}
	d.Guests = append([]GuestDraft(nil), s.draft.Guests...)
	d.Completed = make(map[Step]struct{}, len(s.draft.Completed))
	for k := range s.draft.Completed {
		d.Completed[k] = struct{}{}
	}
	return d
}

// SetHeader replaces the header. Existing rooms must still nest inside the
// new date range.
func (s *Store) SetHeader(h HeaderForm) error {
	if stay, ok := h.StayRange(); ok {
		for _, room := range s.draft.Rooms {
			sub, known := room.StayRange()
			if known && !stay.Contains(sub) {
				return ErrRoomOutsideStay
			}
		}
	}
	copied := h
	s.draft.Header = &copied
	return nil
}

func (s *Store) SetBookingID(id string) error {
	if id == "" {
		return ErrEmptyIdentifier
	}
	s.draft.BookingID = id
	return nil
}

// checkRoomNesting rejects a room whose date range falls outside the booking
// header's range. Without a header or a known range there is nothing to check
// against yet.
func (s *Store) checkRoomNesting(f RoomForm) error {
	if s.draft.Header == nil {
		return nil
	}
	stay, ok := s.draft.Header.StayRange()
	if !ok {
		return nil
	}
	sub, known := f.StayRange()
	if known && !stay.Contains(sub) {
		return ErrRoomOutsideStay
	}
	return nil
}

// AddRoom appends a room draft and assigns it a fresh temp identifier, which
// is returned so the caller can address the room before persistence.
func (s *Store) AddRoom(f RoomForm) (string, error) {
	if err := s.checkRoomNesting(f); err != nil {
		return "", err
	}
	tempID := fmt.Sprintf("temp-%d", s.roomSeq)
	s.roomSeq++
	s.draft.Rooms = append(s.draft.Rooms, RoomDraft{TempID: tempID, RoomForm: f})
	return tempID, nil
}

func (s *Store) UpdateRoom(index int, f RoomForm) error {
	if index < 0 || index >= len(s.draft.Rooms) {
		return ErrIndexOutOfRange
	}
	if err := s.checkRoomNesting(f); err != nil {
		return err
	}
	s.draft.Rooms[index].RoomForm = f
	return nil
}

// RemoveRoom drops the room and any identifier mapping or day groups keyed
// by its temp identifier.
func (s *Store) RemoveRoom(index int) error {
	if index < 0 || index >= len(s.draft.Rooms) {
		return ErrIndexOutOfRange
	}
	tempID := s.draft.Rooms[index].TempID
	s.draft.Rooms = append(s.draft.Rooms[:index], s.draft.Rooms[index+1:]...)
	delete(s.draft.RoomIDs, tempID)
	delete(s.draft.RoomDays, tempID)
	return nil
}

func (s *Store) RoomByTempID(tempID string) (RoomDraft, bool) {
	for _, r := range s.draft.Rooms {
		if r.TempID == tempID {
			return r, true
		}
	}
	return RoomDraft{}, false
}

// MapRoomID records the server identifier issued for a room previously added
// under tempID.
func (s *Store) MapRoomID(tempID, serverID string) error {
	if serverID == "" {
		return ErrEmptyIdentifier
	}
	for i, r := range s.draft.Rooms {
		if r.TempID == tempID {
			s.draft.Rooms[i].ServerID = serverID
			s.draft.RoomIDs[tempID] = serverID
			return nil
		}
	}
	return ErrUnknownTempID
}

// AddRoomDays records the nightly rates for a room. The room must already
// have a resolved server identifier, and the days must cover exactly the
// nights implied by the room's check-in/check-out pair.
func (s *Store) AddRoomDays(tempID string, days []RoomDay) error {
	room, ok := s.RoomByTempID(tempID)
	if !ok {
		return ErrUnknownTempID
	}
	if _, resolved := s.draft.RoomIDs[tempID]; !resolved {
		return ErrRoomNotResolved
	}
	stay, known := room.StayRange()
	if !known {
		return ErrRoomDaysMismatch
	}
	if err := checkExactCover(stay.Nights(), days); err != nil {
		return err
	}
	s.draft.RoomDays[tempID] = append([]RoomDay(nil), days...)
	return nil
}

func checkExactCover(nights []time.Time, days []RoomDay) error {
	if len(days) != len(nights) {
		return ErrRoomDaysMismatch
	}
	seen := make(map[time.Time]bool, len(nights))
	for _, n := range nights {
		seen[n] = false
	}
	for _, d := range days {
		date := time.Date(d.Date.Year(), d.Date.Month(), d.Date.Day(), 0, 0, 0, 0, time.UTC)
		used, ok := seen[date]
		if !ok || used {
			return ErrRoomDaysMismatch
		}
		seen[date] = true
	}
	return nil
}

// CoversNights reports whether days covers each of the given nights exactly
// once, with no extras.
func CoversNights(nights []time.Time, days []RoomDay) bool {
	return checkExactCover(nights, days) == nil
}

func (s *Store) AddService(d ServiceDraft) error {
	s.draft.Services = append(s.draft.Services, d)
	return nil
}

func (s *Store) RemoveService(index int) error {
	if index < 0 || index >= len(s.draft.Services) {
		return ErrIndexOutOfRange
	}
	s.draft.Services = append(s.draft.Services[:index], s.draft.Services[index+1:]...)
	return nil
}

func (s *Store) SetGuarantee(g GuaranteeDraft) error {
	copied := g
	s.draft.Guarantee = &copied
	return nil
}

func (s *Store) AddGuest(g GuestDraft) error {
	s.draft.Guests = append(s.draft.Guests, g)
	return nil
}

func (s *Store) UpdateGuest(index int, g GuestDraft) error {
	if index < 0 || index >= len(s.draft.Guests) {
		return ErrIndexOutOfRange
	}
	s.draft.Guests[index] = g
	return nil
}

func (s *Store) RemoveGuest(index int) error {
	if index < 0 || index >= len(s.draft.Guests) {
		return ErrIndexOutOfRange
	}
	s.draft.Guests = append(s.draft.Guests[:index], s.draft.Guests[index+1:]...)
	return nil
}

// MarkCompleted records that a step has been persisted at least once. Child
// steps require the booking header identifier to exist first.
func (s *Store) MarkCompleted(step Step) error {
	if !step.Valid() {
		return ErrStepOutOfRange
	}
	if step > StepHeader && s.draft.BookingID == "" {
		return ErrBookingIDRequired
	}
	s.draft.Completed[step] = struct{}{}
	return nil
}

// AdvanceStep moves the pointer one step forward. Used for success-advance
// and for skipping an optional step; both are explicit forward navigation and
// bypass the jump reachability rule.
func (s *Store) AdvanceStep() {
	if s.draft.CurrentStep < LastStep {
		s.draft.CurrentStep++
	}
}

// StepBack moves the pointer one step backward unconditionally. Completed
// state is kept.
func (s *Store) StepBack() {
	if s.draft.CurrentStep > FirstStep {
		s.draft.CurrentStep--
	}
}

// SetCurrentStep jumps directly to a step. Any step up to the highest
// completed step + 1 is reachable; anything beyond is rejected.
func (s *Store) SetCurrentStep(step Step) error {
	if !step.Valid() {
		return ErrStepOutOfRange
	}
	if step > s.draft.HighestReachable() {
		return ErrStepUnreachable
	}
	s.draft.CurrentStep = step
	return nil
}

func (s *Store) Reset() {
	s.draft = emptyDraft()
	s.roomSeq = 0
}
