//go:build unit

package wizard_test

import (
	"testing"
	"time"

	"stayops/internal/domain/wizard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func headerForm(arrival, departure time.Time) wizard.HeaderForm {
	return wizard.HeaderForm{
		PropertyID: "prop-1",
		Status:     "new",
		Arrival:    arrival,
		Departure:  departure,
		Amount:     "300.00",
		Currency:   "EUR",
		Adults:     2,
	}
}

func roomForm(checkIn, checkOut time.Time) wizard.RoomForm {
	return wizard.RoomForm{
		RoomTypeID: "rt-1",
		RatePlanID: "rp-1",
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Adults:     2,
		Amount:     "150.00",
	}
}

func daysFor(checkIn, checkOut time.Time) []wizard.RoomDay {
	var days []wizard.RoomDay
	for d := checkIn; d.Before(checkOut); d = d.AddDate(0, 0, 1) {
		days = append(days, wizard.RoomDay{Date: d, Price: "100.00"})
	}
	return days
}

func TestStore_RoomIdentifiers(t *testing.T) {
	arrival := date(2026, 9, 10)
	departure := date(2026, 9, 13)

	t.Run("temp identifiers are sequential and mapping resolves them", func(t *testing.T) {
		s := wizard.NewStore()
		require.NoError(t, s.SetHeader(headerForm(arrival, departure)))

		first, err := s.AddRoom(roomForm(arrival, departure))
		require.NoError(t, err)
		second, err := s.AddRoom(roomForm(arrival, departure))
		require.NoError(t, err)
		assert.Equal(t, "temp-0", first)
		assert.Equal(t, "temp-1", second)

		require.NoError(t, s.MapRoomID(first, "srv-room-1"))

		d := s.Draft()
		assert.Equal(t, "srv-room-1", d.RoomIDs[first])
		assert.Equal(t, "srv-room-1", d.Rooms[0].ServerID)
		assert.Empty(t, d.Rooms[1].ServerID)
	})

	t.Run("mapping an unknown temp identifier fails", func(t *testing.T) {
		s := wizard.NewStore()
		err := s.MapRoomID("temp-9", "srv-room-1")
		assert.ErrorIs(t, err, wizard.ErrUnknownTempID)
	})

	t.Run("empty server identifier is rejected", func(t *testing.T) {
		s := wizard.NewStore()
		tempID, err := s.AddRoom(roomForm(arrival, departure))
		require.NoError(t, err)
		assert.ErrorIs(t, s.MapRoomID(tempID, ""), wizard.ErrEmptyIdentifier)
		assert.ErrorIs(t, s.SetBookingID(""), wizard.ErrEmptyIdentifier)
	})

	t.Run("removing a room drops its mapping and day group", func(t *testing.T) {
		s := wizard.NewStore()
		require.NoError(t, s.SetHeader(headerForm(arrival, departure)))
		tempID, err := s.AddRoom(roomForm(arrival, departure))
		require.NoError(t, err)
		require.NoError(t, s.MapRoomID(tempID, "srv-room-1"))
		require.NoError(t, s.AddRoomDays(tempID, daysFor(arrival, departure)))

		require.NoError(t, s.RemoveRoom(0))

		d := s.Draft()
		assert.Empty(t, d.Rooms)
		assert.NotContains(t, d.RoomIDs, tempID)
		assert.NotContains(t, d.RoomDays, tempID)
	})
}

func TestStore_RoomNesting(t *testing.T) {
	arrival := date(2026, 9, 10)
	departure := date(2026, 9, 13)

	t.Run("room outside the booking range is rejected", func(t *testing.T) {
		s := wizard.NewStore()
		require.NoError(t, s.SetHeader(headerForm(arrival, departure)))

		_, err := s.AddRoom(roomForm(arrival, departure.AddDate(0, 0, 1)))
		assert.ErrorIs(t, err, wizard.ErrRoomOutsideStay)
	})

	t.Run("editing a room outside the booking range is rejected", func(t *testing.T) {
		s := wizard.NewStore()
		require.NoError(t, s.SetHeader(headerForm(arrival, departure)))
		_, err := s.AddRoom(roomForm(arrival, departure))
		require.NoError(t, err)

		err = s.UpdateRoom(0, roomForm(arrival.AddDate(0, 0, -1), departure))
		assert.ErrorIs(t, err, wizard.ErrRoomOutsideStay)
	})

	t.Run("rooms are accepted while the header is still unset", func(t *testing.T) {
		s := wizard.NewStore()
		_, err := s.AddRoom(roomForm(arrival, departure.AddDate(0, 0, 5)))
		assert.NoError(t, err)
	})

	t.Run("shrinking the header range below existing rooms is rejected", func(t *testing.T) {
		s := wizard.NewStore()
		require.NoError(t, s.SetHeader(headerForm(arrival, departure)))
		_, err := s.AddRoom(roomForm(arrival, departure))
		require.NoError(t, err)

		err = s.SetHeader(headerForm(arrival, departure.AddDate(0, 0, -1)))
		assert.ErrorIs(t, err, wizard.ErrRoomOutsideStay)
	})
}

func TestStore_RoomDays(t *testing.T) {
	arrival := date(2026, 9, 10)
	departure := date(2026, 9, 13)

	newStoreWithRoom := func(t *testing.T) (*wizard.Store, string) {
		t.Helper()
		s := wizard.NewStore()
		require.NoError(t, s.SetHeader(headerForm(arrival, departure)))
		require.NoError(t, s.SetBookingID("srv-booking-1"))
		tempID, err := s.AddRoom(roomForm(arrival, departure))
		require.NoError(t, err)
		return s, tempID
	}

	t.Run("days require a resolved server identifier", func(t *testing.T) {
		s, tempID := newStoreWithRoom(t)
		err := s.AddRoomDays(tempID, daysFor(arrival, departure))
		assert.ErrorIs(t, err, wizard.ErrRoomNotResolved)
	})

	t.Run("days must cover exactly the room nights", func(t *testing.T) {
		s, tempID := newStoreWithRoom(t)
		require.NoError(t, s.MapRoomID(tempID, "srv-room-1"))

		short := daysFor(arrival, departure)[:1]
		assert.ErrorIs(t, s.AddRoomDays(tempID, short), wizard.ErrRoomDaysMismatch)

		duplicated := daysFor(arrival, departure)
		duplicated[1].Date = duplicated[0].Date
		assert.ErrorIs(t, s.AddRoomDays(tempID, duplicated), wizard.ErrRoomDaysMismatch)

		require.NoError(t, s.AddRoomDays(tempID, daysFor(arrival, departure)))
		assert.Len(t, s.Draft().RoomDays[tempID], 3)
	})

	t.Run("days for an unknown room fail", func(t *testing.T) {
		s, _ := newStoreWithRoom(t)
		err := s.AddRoomDays("temp-99", daysFor(arrival, departure))
		assert.ErrorIs(t, err, wizard.ErrUnknownTempID)
	})
}

func TestStore_StepCompletion(t *testing.T) {
	t.Run("child steps need the booking identifier first", func(t *testing.T) {
		s := wizard.NewStore()
		assert.ErrorIs(t, s.MarkCompleted(wizard.StepRooms), wizard.ErrBookingIDRequired)

		require.NoError(t, s.SetBookingID("srv-booking-1"))
		require.NoError(t, s.MarkCompleted(wizard.StepRooms))
		assert.True(t, s.Draft().IsCompleted(wizard.StepRooms))
	})

	t.Run("out of range steps are rejected", func(t *testing.T) {
		s := wizard.NewStore()
		assert.ErrorIs(t, s.MarkCompleted(wizard.Step(8)), wizard.ErrStepOutOfRange)
		assert.ErrorIs(t, s.SetCurrentStep(wizard.Step(0)), wizard.ErrStepOutOfRange)
	})
}

func TestStore_Navigation(t *testing.T) {
	t.Run("jumps are limited to highest completed plus one", func(t *testing.T) {
		s := wizard.NewStore()
		require.NoError(t, s.SetBookingID("srv-booking-1"))
		require.NoError(t, s.MarkCompleted(wizard.StepHeader))
		require.NoError(t, s.MarkCompleted(wizard.StepRooms))

		require.NoError(t, s.SetCurrentStep(wizard.StepRoomDays))
		assert.Equal(t, wizard.StepRoomDays, s.Draft().CurrentStep)

		assert.ErrorIs(t, s.SetCurrentStep(wizard.StepServices), wizard.ErrStepUnreachable)
	})

	t.Run("advance and back move one step and respect the bounds", func(t *testing.T) {
		s := wizard.NewStore()
		s.StepBack()
		assert.Equal(t, wizard.StepHeader, s.Draft().CurrentStep)

		s.AdvanceStep()
		assert.Equal(t, wizard.StepRooms, s.Draft().CurrentStep)

		for range 10 {
			s.AdvanceStep()
		}
		assert.Equal(t, wizard.StepReview, s.Draft().CurrentStep)
	})

	t.Run("advance bypasses the jump rule for skipped optional steps", func(t *testing.T) {
		s := wizard.NewStore()
		require.NoError(t, s.SetBookingID("srv-booking-1"))
		require.NoError(t, s.MarkCompleted(wizard.StepHeader))
		require.NoError(t, s.MarkCompleted(wizard.StepRooms))
		require.NoError(t, s.SetCurrentStep(wizard.StepRoomDays))

		// Skipping 3 and 4 lands on 5 even though only 1-2 are completed.
		s.AdvanceStep()
		s.AdvanceStep()
		assert.Equal(t, wizard.StepGuarantee, s.Draft().CurrentStep)
		assert.Equal(t, wizard.StepRoomDays, s.Draft().HighestReachable())
	})
}

func TestStore_DraftSnapshot(t *testing.T) {
	arrival := date(2026, 9, 10)
	departure := date(2026, 9, 13)

	s := wizard.NewStore()
	require.NoError(t, s.SetHeader(headerForm(arrival, departure)))
	require.NoError(t, s.SetBookingID("srv-booking-1"))
	tempID, err := s.AddRoom(roomForm(arrival, departure))
	require.NoError(t, err)
	require.NoError(t, s.MapRoomID(tempID, "srv-room-1"))

	d := s.Draft()
	d.Header.PropertyID = "tampered"
	d.RoomIDs[tempID] = "tampered"
	d.Rooms[0].ServerID = "tampered"

	fresh := s.Draft()
	assert.Equal(t, "prop-1", fresh.Header.PropertyID)
	assert.Equal(t, "srv-room-1", fresh.RoomIDs[tempID])
	assert.Equal(t, "srv-room-1", fresh.Rooms[0].ServerID)
}

func TestStore_Reset(t *testing.T) {
	s := wizard.NewStore()
	require.NoError(t, s.SetBookingID("srv-booking-1"))
	require.NoError(t, s.MarkCompleted(wizard.StepHeader))

	s.Reset()

	d := s.Draft()
	assert.Empty(t, d.BookingID)
	assert.Empty(t, d.Completed)
	assert.Equal(t, wizard.StepHeader, d.CurrentStep)

	// Temp identifier sequence restarts as well.
	tempID, err := s.AddRoom(roomForm(date(2026, 9, 10), date(2026, 9, 11)))
	require.NoError(t, err)
	assert.Equal(t, "temp-0", tempID)
}

func TestStep_Properties(t *testing.T) {
	assert.True(t, wizard.StepRoomDays.Skippable())
	assert.True(t, wizard.StepServices.Skippable())
	assert.True(t, wizard.StepGuarantee.Skippable())
	assert.True(t, wizard.StepGuests.Skippable())
	assert.False(t, wizard.StepHeader.Skippable())
	assert.False(t, wizard.StepRooms.Skippable())
	assert.False(t, wizard.StepReview.Skippable())

	assert.Equal(t, wizard.StepRooms, wizard.StepHeader.Next())
	assert.Equal(t, wizard.StepReview, wizard.StepReview.Next())
	assert.Equal(t, wizard.StepHeader, wizard.StepHeader.Prev())
}
