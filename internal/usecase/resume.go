package usecase

import (
	"context"
	"fmt"

	"stayops/internal/domain/wizard"

	"github.com/google/uuid"
)

// Resume fetches the full booking aggregate and rebuilds an equivalent draft,
// positioning the wizard at the first step with no persisted data. A failed
// or empty fetch is terminal: no partial draft is ever produced.
func (w *wizardCommandsImpl) Resume(ctx context.Context, bookingID string) (*SessionState, error) {
	agg, err := w.bookings.GetBookingAggregate(ctx, bookingID)
	if err != nil {
		// Both errors stay in the chain: callers match the sentinel with
		// errors.Is and still reach the gateway error through errors.As.
		return nil, fmt.Errorf("%w: %w", ErrAggregateLoadFailed, err)
	}
	if agg == nil || agg.ID == "" {
		return nil, ErrAggregateLoadFailed
	}

	store := reconstructStore(agg)
	s := NewSession(uuid.New(), store, w.clock.Now())
	w.sessions.Save(s)
	return stateOf(s), nil
}

// reconstructStore is the single-pass reconstruction algorithm. Each step's
// completeness is judged independently against the fetched data — an unmet
// earlier step does not block a later one, mirroring the optional steps of
// the forward flow — while the step pointer keeps the value set by the last
// satisfied condition.
func reconstructStore(agg *BookingAggregate) *wizard.Store {
	draft := wizard.Draft{
		RoomIDs:     map[string]string{},
		RoomDays:    map[string][]wizard.RoomDay{},
		Completed:   map[wizard.Step]struct{}{},
		CurrentStep: wizard.StepHeader,
	}

	header := headerForm(agg.BookingRecord)
	draft.Header = &header
	draft.BookingID = agg.ID
	draft.Completed[wizard.StepHeader] = struct{}{}
	draft.CurrentStep = wizard.StepRooms

	for i, room := range agg.Rooms {
		tempID := fmt.Sprintf("temp-%d", i)
		rd := wizard.RoomDraft{TempID: tempID, RoomForm: roomForm(room)}
		if room.ID != "" {
			rd.ServerID = room.ID
			draft.RoomIDs[tempID] = room.ID
		}
		draft.Rooms = append(draft.Rooms, rd)

		if len(room.Days) > 0 {
			days := make([]wizard.RoomDay, len(room.Days))
			for j, d := range room.Days {
				days[j] = wizard.RoomDay{Date: d.Date, Price: d.Price}
			}
			draft.RoomDays[tempID] = days
		}
	}
	if len(draft.Rooms) > 0 {
		draft.Completed[wizard.StepRooms] = struct{}{}
		draft.CurrentStep = wizard.StepRoomDays
	}

	if allDayGroupsPresent(draft) {
		draft.Completed[wizard.StepRoomDays] = struct{}{}
		draft.CurrentStep = wizard.StepServices
	}

	if len(agg.Services) > 0 {
		for _, svc := range agg.Services {
			draft.Services = append(draft.Services, serviceDraft(svc))
		}
		draft.Completed[wizard.StepServices] = struct{}{}
		draft.CurrentStep = wizard.StepGuarantee
	}

	if len(agg.Guarantees) > 0 {
		g := agg.Guarantees[0]
		gd := wizard.GuaranteeDraft{GuaranteeForm: guaranteeForm(g)}
		// A malformed or placeholder identifier counts as no identifier, so
		// the next guarantee save issues a create rather than an update.
		if uuid.Validate(g.ID) == nil {
			gd.ServerID = g.ID
		}
		draft.Guarantee = &gd
		draft.Completed[wizard.StepGuarantee] = struct{}{}
		draft.CurrentStep = wizard.StepGuests
	}

	if len(agg.Guests) > 0 {
		for _, g := range agg.Guests {
			draft.Guests = append(draft.Guests, wizard.GuestDraft{ServerID: g.ID, GuestForm: guestForm(g)})
		}
		draft.Completed[wizard.StepGuests] = struct{}{}
		draft.CurrentStep = wizard.StepReview
	}

	return wizard.Reconstruct(draft, len(draft.Rooms))
}

func allDayGroupsPresent(d wizard.Draft) bool {
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
