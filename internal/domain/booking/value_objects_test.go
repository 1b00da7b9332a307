//go:build unit

package booking_test

import (
	"testing"
	"time"

	"stayops/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestStayRange(t *testing.T) {
	t.Run("clock time is truncated", func(t *testing.T) {
		r, err := booking.NewStayRange(
			time.Date(2026, 9, 10, 15, 30, 0, 0, time.FixedZone("CET", 3600)),
			time.Date(2026, 9, 12, 11, 0, 0, 0, time.UTC),
		)
		require.NoError(t, err)
		assert.Equal(t, day(2026, 9, 10), r.Arrival())
		assert.Equal(t, day(2026, 9, 12), r.Departure())
	})

	t.Run("departure must be after arrival", func(t *testing.T) {
		_, err := booking.NewStayRange(day(2026, 9, 10), day(2026, 9, 10))
		assert.ErrorIs(t, err, booking.ErrInvalidStayRange)

		_, err = booking.NewStayRange(day(2026, 9, 10), day(2026, 9, 9))
		assert.ErrorIs(t, err, booking.ErrInvalidStayRange)
	})

	t.Run("nights enumerate the half-open range", func(t *testing.T) {
		r, err := booking.NewStayRange(day(2026, 9, 10), day(2026, 9, 13))
		require.NoError(t, err)

		nights := r.Nights()
		require.Len(t, nights, 3)
		assert.Equal(t, day(2026, 9, 10), nights[0])
		assert.Equal(t, day(2026, 9, 12), nights[2])
		assert.Equal(t, 3, r.NightCount())
	})

	t.Run("containment is inclusive on both edges", func(t *testing.T) {
		outer, err := booking.NewStayRange(day(2026, 9, 10), day(2026, 9, 13))
		require.NoError(t, err)

		same, _ := booking.NewStayRange(day(2026, 9, 10), day(2026, 9, 13))
		inner, _ := booking.NewStayRange(day(2026, 9, 11), day(2026, 9, 12))
		early, _ := booking.NewStayRange(day(2026, 9, 9), day(2026, 9, 12))
		late, _ := booking.NewStayRange(day(2026, 9, 11), day(2026, 9, 14))

		assert.True(t, outer.Contains(same))
		assert.True(t, outer.Contains(inner))
		assert.False(t, outer.Contains(early))
		assert.False(t, outer.Contains(late))
	})
}

func TestValidAmount(t *testing.T) {
	valid := []string{"0", "12", "12.5", "12.50", "1234567.89"}
	for _, v := range valid {
		assert.True(t, booking.ValidAmount(v), "expected %q to be valid", v)
	}

	invalid := []string{"", "-5", "12.345", "12,50", "abc", "12.", ".50"}
	for _, v := range invalid {
		assert.False(t, booking.ValidAmount(v), "expected %q to be invalid", v)
	}
}

func TestValidReference(t *testing.T) {
	assert.True(t, booking.ValidReference("BK-123456"))
	assert.True(t, booking.ValidReference("BDC-1234567890"))
	assert.False(t, booking.ValidReference("B-123456"))
	assert.False(t, booking.ValidReference("BOOKING-123456"))
	assert.False(t, booking.ValidReference("BK-12345"))
	assert.False(t, booking.ValidReference("bk-123456"))
}

func TestNewStatus(t *testing.T) {
	for _, s := range []string{"new", "confirmed", "modified", "cancelled"} {
		st, err := booking.NewStatus(s)
		require.NoError(t, err)
		assert.Equal(t, s, st.String())
	}

	_, err := booking.NewStatus("tentative")
	assert.ErrorIs(t, err, booking.ErrInvalidStatus)
}

func TestNewOccupancy(t *testing.T) {
	occ, err := booking.NewOccupancy(2, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, occ.Total())

	_, err = booking.NewOccupancy(0, 0, 0)
	assert.ErrorIs(t, err, booking.ErrInvalidOccupancy)

	_, err = booking.NewOccupancy(-1, 2, 0)
	assert.ErrorIs(t, err, booking.ErrInvalidOccupancy)
}
