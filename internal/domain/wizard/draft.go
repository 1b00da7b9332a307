package wizard

import (
	"time"

	"stayops/internal/domain/booking"
)

// HeaderForm carries the step 1 input. Amounts stay in their wire (string)
// representation; dates are date-only.
type HeaderForm struct {
	PropertyID   string
	Status       string
	Arrival      time.Time
	Departure    time.Time
	Amount       string
	Currency     string
	Adults       int
	Children     int
	Infants      int
	OTAChannel   string
	OTAReference string
}

// StayRange returns the header's date range when both dates are set.
func (h HeaderForm) StayRange() (booking.StayRange, bool) {
	if h.Arrival.IsZero() || h.Departure.IsZero() {
		return booking.StayRange{}, false
	}
	r, err := booking.NewStayRange(h.Arrival, h.Departure)
	if err != nil {
		return booking.StayRange{}, false
	}
	return r, true
}

type RoomForm struct {
	RoomTypeID string
	RatePlanID string
	CheckIn    time.Time
	CheckOut   time.Time
	Adults     int
	Children   int
	Infants    int
	Amount     string
}

func (r RoomForm) StayRange() (booking.StayRange, bool) {
	if r.CheckIn.IsZero() || r.CheckOut.IsZero() {
		return booking.StayRange{}, false
	}
	sr, err := booking.NewStayRange(r.CheckIn, r.CheckOut)
	if err != nil {
		return booking.StayRange{}, false
	}
	return sr, true
}

// RoomDraft is a room as held by the wizard: the submitted form plus the
// locally assigned temp identifier and, once persisted, the server one.
type RoomDraft struct {
	TempID   string
	ServerID string
	RoomForm
}

// RoomDay is one nightly rate for a room.
type RoomDay struct {
	Date  time.Time
	Price string
}

type PricingMode string

const (
	PricePerPerson PricingMode = "per_person"
	PricePerStay   PricingMode = "per_stay"
	PricePerNight  PricingMode = "per_night"
)

type ServiceForm struct {
	Type        string
	PricingMode PricingMode
	Persons     int
	Nights      int
	UnitPrice   string
}

type ServiceDraft struct {
	ServerID string
	Total    string
	ServiceForm
}

type GuaranteeForm struct {
	CardType    string
	CardNumber  string
	CardHolder  string
	ExpiryMonth string
	ExpiryYear  string
	IsVirtual   bool
}

type GuaranteeDraft struct {
	ServerID string
	GuaranteeForm
}

type GuestForm struct {
	FirstName     string
	LastName      string
	Email         string
	Phone         string
	Language      string
	Country       string
	Address       string
	City          string
	PostalCode    string
	CompanyName   string
	CompanyNumber string
}

type GuestDraft struct {
	ServerID string
	GuestForm
}

// Draft is the working booking aggregate being assembled by the wizard. It is
// mutated only through Store operations.
type Draft struct {
	Header    *HeaderForm
	BookingID string

	Rooms []RoomDraft
	// RoomIDs maps a room's temp identifier to the server identifier issued
	// by the create call. Room days must reference rooms through this map.
	RoomIDs  map[string]string
	RoomDays map[string][]RoomDay

	Services  []ServiceDraft
	Guarantee *GuaranteeDraft
	Guests    []GuestDraft

	CurrentStep Step
	Completed   map[Step]struct{}
}

func (d Draft) IsCompleted(s Step) bool {
	_, ok := d.Completed[s]
	return ok
}

// HighestCompleted returns the largest completed step number, or zero when
// nothing has been persisted yet.
func (d Draft) HighestCompleted() Step {
	var max Step
	for s := range d.Completed {
		if s > max {
			max = s
		}
	}
	return max
}

// HighestReachable is the furthest step the user may jump to directly.
func (d Draft) HighestReachable() Step {
	r := d.HighestCompleted() + 1
	if r < FirstStep {
		return FirstStep
	}
	if r > LastStep {
		return LastStep
	}
	return r
}

// CompletedSteps returns the completed set in ascending order.
func (d Draft) CompletedSteps() []Step {
	steps := make([]Step, 0, len(d.Completed))
	for s := FirstStep; s <= LastStep; s++ {
		if d.IsCompleted(s) {
			steps = append(steps, s)
		}
	}
	return steps
}

func emptyDraft() Draft {
	return Draft{
		RoomIDs:     map[string]string{},
		RoomDays:    map[string][]RoomDay{},
		CurrentStep: StepHeader,
		Completed:   map[Step]struct{}{},
	}
}
