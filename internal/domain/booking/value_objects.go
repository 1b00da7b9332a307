package booking

import (
	"errors"
	"regexp"
	"time"
)

var (
	ErrInvalidStayRange = errors.New("departure must be after arrival")
	ErrInvalidAmount    = errors.New("amount must be a non-negative number with at most two decimals")
	ErrInvalidOccupancy = errors.New("total occupancy must be at least one")
	ErrInvalidReference = errors.New("invalid external reference format")
	ErrInvalidStatus    = errors.New("invalid booking status")
)

// amountPattern allows "0", "12", "12.5" and "12.50" but not negatives or
// more than two decimal digits.
var amountPattern = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)

// referencePattern matches external OTA references such as "BK-123456".
var referencePattern = regexp.MustCompile(`^[A-Z]{2,4}-\d{6,}$`)

// StayRange is a half-open [arrival, departure) date range. Both dates are
// normalized to midnight UTC so equality and nesting checks ignore clock time.
type StayRange struct {
	arrival   time.Time
	departure time.Time
}

func NewStayRange(arrival, departure time.Time) (StayRange, error) {
	a := truncateToDate(arrival)
	d := truncateToDate(departure)
	if !d.After(a) {
		return StayRange{}, ErrInvalidStayRange
	}
	return StayRange{arrival: a, departure: d}, nil
}

func (r StayRange) Arrival() time.Time   { return r.arrival }
func (r StayRange) Departure() time.Time { return r.departure }
func (r StayRange) IsZero() bool         { return r.arrival.IsZero() }

// Contains reports whether sub nests entirely inside r.
func (r StayRange) Contains(sub StayRange) bool {
	return !sub.arrival.Before(r.arrival) && !sub.departure.After(r.departure)
}

// Nights returns the occupied nights in order: one date per night from
// arrival up to but excluding departure.
func (r StayRange) Nights() []time.Time {
	var nights []time.Time
	for d := r.arrival; d.Before(r.departure); d = d.AddDate(0, 0, 1) {
		nights = append(nights, d)
	}
	return nights
}

func (r StayRange) NightCount() int {
	return int(r.departure.Sub(r.arrival).Hours() / 24)
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Amount is a decimal money amount kept in its wire representation. The
// channel-manager API exchanges amounts as strings, so parsing is limited to
// format validation.
type Amount struct {
	value string
}

func NewAmount(value string) (Amount, error) {
	if !amountPattern.MatchString(value) {
		return Amount{}, ErrInvalidAmount
	}
	return Amount{value: value}, nil
}

func (a Amount) String() string { return a.value }
func (a Amount) IsZero() bool   { return a.value == "" }

// ValidAmount reports whether value is a well-formed amount string.
func ValidAmount(value string) bool {
	return amountPattern.MatchString(value)
}

type Occupancy struct {
	adults   int
	children int
	infants  int
}

func NewOccupancy(adults, children, infants int) (Occupancy, error) {
	if adults < 0 || children < 0 || infants < 0 {
		return Occupancy{}, ErrInvalidOccupancy
	}
	if adults+children+infants < 1 {
		return Occupancy{}, ErrInvalidOccupancy
	}
	return Occupancy{adults: adults, children: children, infants: infants}, nil
}

func (o Occupancy) Adults() int   { return o.adults }
func (o Occupancy) Children() int { return o.children }
func (o Occupancy) Infants() int  { return o.infants }
func (o Occupancy) Total() int    { return o.adults + o.children + o.infants }

// ValidReference reports whether ref matches the external reference shape
// (two to four uppercase letters, a hyphen, six or more digits).
func ValidReference(ref string) bool {
	return referencePattern.MatchString(ref)
}

type Status string

const (
	StatusNew       Status = "new"
	StatusConfirmed Status = "confirmed"
	StatusModified  Status = "modified"
	StatusCancelled Status = "cancelled"
)

func NewStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusNew, StatusConfirmed, StatusModified, StatusCancelled:
		return Status(s), nil
	}
	return "", ErrInvalidStatus
}

func (s Status) String() string { return string(s) }
