//go:build unit || e2e

package builder

import (
	"time"

	"stayops/internal/domain/wizard"
	"stayops/internal/usecase"

	"github.com/google/uuid"
)

// WizardBuilder produces consistent wizard forms and server-side aggregates
// for tests: room dates nest inside the stay and day entries cover the nights.
type WizardBuilder struct {
	BookingID  string
	PropertyID string
	Arrival    time.Time
	Departure  time.Time
	Amount     string
	Currency   string
	Adults     int

	RoomTypeID string
	RatePlanID string
	RoomAmount string

	NightPrice string
}

func NewWizardBuilder() *WizardBuilder {
	return &WizardBuilder{
		BookingID:  uuid.NewString(),
		PropertyID: uuid.NewString(),
		Arrival:    time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		Departure:  time.Date(2026, 9, 13, 0, 0, 0, 0, time.UTC),
		Amount:     "450.00",
		Currency:   "EUR",
		Adults:     2,
		RoomTypeID: uuid.NewString(),
		RatePlanID: uuid.NewString(),
		RoomAmount: "150.00",
		NightPrice: "150.00",
	}
}

func (b *WizardBuilder) WithBookingID(id string) *WizardBuilder {
	b.BookingID = id
	return b
}

func (b *WizardBuilder) WithStay(arrival, departure time.Time) *WizardBuilder {
	b.Arrival = arrival
	b.Departure = departure
	return b
}

func (b *WizardBuilder) WithAmount(amount string) *WizardBuilder {
	b.Amount = amount
	return b
}

func (b *WizardBuilder) BuildHeaderForm() wizard.HeaderForm {
	return wizard.HeaderForm{
		PropertyID: b.PropertyID,
		Status:     "new",
		Arrival:    b.Arrival,
		Departure:  b.Departure,
		Amount:     b.Amount,
		Currency:   b.Currency,
		Adults:     b.Adults,
	}
}

func (b *WizardBuilder) BuildRoomForm() wizard.RoomForm {
	return wizard.RoomForm{
		RoomTypeID: b.RoomTypeID,
		RatePlanID: b.RatePlanID,
		CheckIn:    b.Arrival,
		CheckOut:   b.Departure,
		Adults:     b.Adults,
		Amount:     b.RoomAmount,
	}
}

// BuildRoomDays covers each night of the stay with the builder's night price.
func (b *WizardBuilder) BuildRoomDays() []wizard.RoomDay {
	var days []wizard.RoomDay
	for d := b.Arrival; d.Before(b.Departure); d = d.AddDate(0, 0, 1) {
		days = append(days, wizard.RoomDay{Date: d, Price: b.NightPrice})
	}
	return days
}

func (b *WizardBuilder) BuildServiceForm() wizard.ServiceForm {
	return wizard.ServiceForm{
		Type:        "breakfast",
		PricingMode: wizard.PricePerPerson,
		Persons:     b.Adults,
		Nights:      3,
		UnitPrice:   "12.50",
	}
}

func (b *WizardBuilder) BuildGuaranteeForm() wizard.GuaranteeForm {
	return wizard.GuaranteeForm{
		CardType:    "visa",
		CardNumber:  "4111111111111111",
		CardHolder:  "Jamie Harper",
		ExpiryMonth: "09",
		ExpiryYear:  "2029",
	}
}

func (b *WizardBuilder) BuildGuestForm() wizard.GuestForm {
	return wizard.GuestForm{
		FirstName:  "Jamie",
		LastName:   "Harper",
		Email:      "jamie.harper@example.com",
		Phone:      "+35312345678",
		Language:   "en",
		Country:    "IE",
		Address:    "12 Quay Street",
		City:       "Galway",
		PostalCode: "H91AX68",
	}
}

func (b *WizardBuilder) buildHeaderPayload() usecase.HeaderPayload {
	return usecase.HeaderPayload{
		PropertyID: b.PropertyID,
		Status:     "new",
		Arrival:    b.Arrival,
		Departure:  b.Departure,
		Amount:     b.Amount,
		Currency:   b.Currency,
		Adults:     b.Adults,
	}
}

// BuildRoomRecord returns a persisted room, with day records when withDays.
func (b *WizardBuilder) BuildRoomRecord(withDays bool) usecase.RoomRecord {
	rec := usecase.RoomRecord{
		ID: uuid.NewString(),
		RoomPayload: usecase.RoomPayload{
			RoomTypeID: b.RoomTypeID,
			RatePlanID: b.RatePlanID,
			CheckIn:    b.Arrival,
			CheckOut:   b.Departure,
			Adults:     b.Adults,
			Amount:     b.RoomAmount,
		},
	}
	if withDays {
		for d := b.Arrival; d.Before(b.Departure); d = d.AddDate(0, 0, 1) {
			rec.Days = append(rec.Days, usecase.RoomDayRecord{
				ID:             uuid.NewString(),
				RoomDayPayload: usecase.RoomDayPayload{Date: d, Price: b.NightPrice},
			})
		}
	}
	return rec
}

func (b *WizardBuilder) BuildServiceRecord() usecase.ServiceRecord {
	return usecase.ServiceRecord{
		ID: uuid.NewString(),
		ServicePayload: usecase.ServicePayload{
			Type:        "breakfast",
			PricingMode: "per_person",
			Persons:     b.Adults,
			Nights:      3,
			UnitPrice:   "12.50",
			Total:       "75.00",
		},
	}
}

func (b *WizardBuilder) BuildGuaranteeRecord(id string) usecase.GuaranteeRecord {
	return usecase.GuaranteeRecord{
		ID: id,
		GuaranteePayload: usecase.GuaranteePayload{
			CardType:    "visa",
			CardNumber:  "4111111111111111",
			CardHolder:  "Jamie Harper",
			ExpiryMonth: "09",
			ExpiryYear:  "2029",
		},
	}
}

func (b *WizardBuilder) BuildGuestRecord() usecase.GuestRecord {
	return usecase.GuestRecord{
		ID: uuid.NewString(),
		GuestPayload: usecase.GuestPayload{
			FirstName:  "Jamie",
			LastName:   "Harper",
			Email:      "jamie.harper@example.com",
			Phone:      "+35312345678",
			Language:   "en",
			Country:    "IE",
			Address:    "12 Quay Street",
			City:       "Galway",
			PostalCode: "H91AX68",
		},
	}
}

// BuildAggregate assembles a header-only server aggregate; callers append
// children for the scenario under test.
func (b *WizardBuilder) BuildAggregate() *usecase.BookingAggregate {
	return &usecase.BookingAggregate{
		BookingRecord: usecase.BookingRecord{
			ID:            b.BookingID,
			HeaderPayload: b.buildHeaderPayload(),
		},
	}
}

// BuildFullAggregate has every child populated: resume should land on review.
func (b *WizardBuilder) BuildFullAggregate() *usecase.BookingAggregate {
	agg := b.BuildAggregate()
	agg.Rooms = []usecase.RoomRecord{b.BuildRoomRecord(true)}
	agg.Services = []usecase.ServiceRecord{b.BuildServiceRecord()}
	agg.Guarantees = []usecase.GuaranteeRecord{b.BuildGuaranteeRecord(uuid.NewString())}
	agg.Guests = []usecase.GuestRecord{b.BuildGuestRecord()}
	return agg
}
