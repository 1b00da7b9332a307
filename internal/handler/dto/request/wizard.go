package request

import (
	"errors"
	"time"

	"stayops/internal/domain/wizard"
)

const dateLayout = "2006-01-02"

var errBadDate = errors.New("dates must use the YYYY-MM-DD format")

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, errBadDate
	}
	return t, nil
}

type ResumeRequest struct {
	BookingID string `json:"booking_id" binding:"required"`
}

type HeaderRequest struct {
	PropertyID   string `json:"property_id" binding:"required"`
	Status       string `json:"status" binding:"required"`
	Arrival      string `json:"arrival" binding:"required"`
	Departure    string `json:"departure" binding:"required"`
	Amount       string `json:"amount" binding:"required"`
	Currency     string `json:"currency" binding:"required"`
	Adults       int    `json:"adults"`
	Children     int    `json:"children"`
	Infants      int    `json:"infants"`
	OTAChannel   string `json:"ota_channel"`
	OTAReference string `json:"ota_reference"`
}

func (r HeaderRequest) ToForm() (wizard.HeaderForm, error) {
	arrival, err := parseDate(r.Arrival)
	if err != nil {
		return wizard.HeaderForm{}, err
	}
	departure, err := parseDate(r.Departure)
	if err != nil {
		return wizard.HeaderForm{}, err
	}
	return wizard.HeaderForm{
		PropertyID:   r.PropertyID,
		Status:       r.Status,
		Arrival:      arrival,
		Departure:    departure,
		Amount:       r.Amount,
		Currency:     r.Currency,
		Adults:       r.Adults,
		Children:     r.Children,
		Infants:      r.Infants,
		OTAChannel:   r.OTAChannel,
		OTAReference: r.OTAReference,
	}, nil
}

type RoomRequest struct {
	RoomTypeID string `json:"room_type_id" binding:"required"`
	RatePlanID string `json:"rate_plan_id" binding:"required"`
	CheckIn    string `json:"check_in" binding:"required"`
	CheckOut   string `json:"check_out" binding:"required"`
	Adults     int    `json:"adults"`
	Children   int    `json:"children"`
	Infants    int    `json:"infants"`
	Amount     string `json:"amount" binding:"required"`
	Advance    bool   `json:"advance"`
}

func (r RoomRequest) ToForm() (wizard.RoomForm, error) {
	checkIn, err := parseDate(r.CheckIn)
	if err != nil {
		return wizard.RoomForm{}, err
	}
	checkOut, err := parseDate(r.CheckOut)
	if err != nil {
		return wizard.RoomForm{}, err
	}
	return wizard.RoomForm{
		RoomTypeID: r.RoomTypeID,
		RatePlanID: r.RatePlanID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Adults:     r.Adults,
		Children:   r.Children,
		Infants:    r.Infants,
		Amount:     r.Amount,
	}, nil
}

type RoomDayRequest struct {
	Date  string `json:"date" binding:"required"`
	Price string `json:"price" binding:"required"`
}

type RoomDaysRequest struct {
	Days    []RoomDayRequest `json:"days" binding:"required,min=1"`
	Advance bool             `json:"advance"`
}

func (r RoomDaysRequest) ToDays() ([]wizard.RoomDay, error) {
	days := make([]wizard.RoomDay, len(r.Days))
	for i, d := range r.Days {
		date, err := parseDate(d.Date)
		if err != nil {
			return nil, err
		}
		days[i] = wizard.RoomDay{Date: date, Price: d.Price}
	}
	return days, nil
}

type ServiceRequest struct {
	Type        string `json:"type" binding:"required"`
	PricingMode string `json:"pricing_mode" binding:"required"`
	Persons     int    `json:"persons"`
	Nights      int    `json:"nights"`
	UnitPrice   string `json:"unit_price" binding:"required"`
	Advance     bool   `json:"advance"`
}

func (r ServiceRequest) ToForm() wizard.ServiceForm {
	return wizard.ServiceForm{
		Type:        r.Type,
		PricingMode: wizard.PricingMode(r.PricingMode),
		Persons:     r.Persons,
		Nights:      r.Nights,
		UnitPrice:   r.UnitPrice,
	}
}

type GuaranteeRequest struct {
	CardType    string `json:"card_type" binding:"required"`
	CardNumber  string `json:"card_number" binding:"required"`
	CardHolder  string `json:"card_holder" binding:"required"`
	ExpiryMonth string `json:"expiry_month" binding:"required"`
	ExpiryYear  string `json:"expiry_year" binding:"required"`
	IsVirtual   bool   `json:"is_virtual"`
}

func (r GuaranteeRequest) ToForm() wizard.GuaranteeForm {
	return wizard.GuaranteeForm{
		CardType:    r.CardType,
		CardNumber:  r.CardNumber,
		CardHolder:  r.CardHolder,
		ExpiryMonth: r.ExpiryMonth,
		ExpiryYear:  r.ExpiryYear,
		IsVirtual:   r.IsVirtual,
	}
}

type GuestRequest struct {
	FirstName     string `json:"first_name" binding:"required"`
	LastName      string `json:"last_name" binding:"required"`
	Email         string `json:"email" binding:"required"`
	Phone         string `json:"phone" binding:"required"`
	Language      string `json:"language" binding:"required"`
	Country       string `json:"country" binding:"required"`
	Address       string `json:"address"`
	City          string `json:"city"`
	PostalCode    string `json:"postal_code"`
	CompanyName   string `json:"company_name"`
	CompanyNumber string `json:"company_number"`
	Advance       bool   `json:"advance"`
}

func (r GuestRequest) ToForm() wizard.GuestForm {
	return wizard.GuestForm{
		FirstName:     r.FirstName,
		LastName:      r.LastName,
		Email:         r.Email,
		Phone:         r.Phone,
		Language:      r.Language,
		Country:       r.Country,
		Address:       r.Address,
		City:          r.City,
		PostalCode:    r.PostalCode,
		CompanyName:   r.CompanyName,
		CompanyNumber: r.CompanyNumber,
	}
}

type GotoRequest struct {
	Step int `json:"step" binding:"required"`
}
