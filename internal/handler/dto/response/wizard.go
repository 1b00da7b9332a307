package response

import (
	"strings"
	"time"

	"stayops/internal/domain/wizard"
	"stayops/internal/usecase"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

type SessionStateResponse struct {
	SessionID        uuid.UUID     `json:"sessionId"`
	BookingID        string        `json:"bookingId,omitempty"`
	CurrentStep      int           `json:"currentStep"`
	CurrentStepName  string        `json:"currentStepName"`
	CompletedSteps   []int         `json:"completedSteps"`
	HighestReachable int           `json:"highestReachable"`
	Draft            DraftResponse `json:"draft"`
}

type DraftResponse struct {
	Header    *HeaderResponse         `json:"header,omitempty"`
	Rooms     []RoomResponse          `json:"rooms"`
	RoomDays  map[string][]RoomDayDTO `json:"roomDays"`
	Services  []ServiceResponse       `json:"services"`
	Guarantee *GuaranteeResponse      `json:"guarantee,omitempty"`
	Guests    []GuestResponse         `json:"guests"`
}

type HeaderResponse struct {
	PropertyID   string `json:"propertyId"`
	Status       string `json:"status"`
	Arrival      string `json:"arrival"`
	Departure    string `json:"departure"`
	Amount       string `json:"amount"`
	Currency     string `json:"currency"`
	Adults       int    `json:"adults"`
	Children     int    `json:"children"`
	Infants      int    `json:"infants"`
	OTAChannel   string `json:"otaChannel,omitempty"`
	OTAReference string `json:"otaReference,omitempty"`
}

type RoomResponse struct {
	TempID     string `json:"tempId"`
	ServerID   string `json:"serverId,omitempty"`
	RoomTypeID string `json:"roomTypeId"`
	RatePlanID string `json:"ratePlanId"`
	CheckIn    string `json:"checkIn"`
	CheckOut   string `json:"checkOut"`
	Adults     int    `json:"adults"`
	Children   int    `json:"children"`
	Infants    int    `json:"infants"`
	Amount     string `json:"amount"`
}

type RoomDayDTO struct {
	Date  string `json:"date"`
	Price string `json:"price"`
}

type ServiceResponse struct {
	ServerID    string `json:"serverId,omitempty"`
	Type        string `json:"type"`
	PricingMode string `json:"pricingMode"`
	Persons     int    `json:"persons"`
	Nights      int    `json:"nights"`
	UnitPrice   string `json:"unitPrice"`
	Total       string `json:"total"`
}

type GuaranteeResponse struct {
	ServerID    string `json:"serverId,omitempty"`
	CardType    string `json:"cardType"`
	CardNumber  string `json:"cardNumber"`
	CardHolder  string `json:"cardHolder"`
	ExpiryMonth string `json:"expiryMonth"`
	ExpiryYear  string `json:"expiryYear"`
	IsVirtual   bool   `json:"isVirtual"`
}

type GuestResponse struct {
	ServerID      string `json:"serverId,omitempty"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Language      string `json:"language"`
	Country       string `json:"country"`
	Address       string `json:"address,omitempty"`
	City          string `json:"city,omitempty"`
	PostalCode    string `json:"postalCode,omitempty"`
	CompanyName   string `json:"companyName,omitempty"`
	CompanyNumber string `json:"companyNumber,omitempty"`
}

type CompleteResponse struct {
	BookingID string `json:"bookingId"`
}

func FromSessionState(st *usecase.SessionState) *SessionStateResponse {
	completed := make([]int, len(st.CompletedSteps))
	for i, s := range st.CompletedSteps {
		completed[i] = int(s)
	}
	return &SessionStateResponse{
		SessionID:        st.SessionID,
		BookingID:        st.BookingID,
		CurrentStep:      int(st.CurrentStep),
		CurrentStepName:  st.CurrentStep.String(),
		CompletedSteps:   completed,
		HighestReachable: int(st.HighestReachable),
		Draft:            fromDraft(st.Draft),
	}
}

func fromDraft(d wizard.Draft) DraftResponse {
	resp := DraftResponse{
		Rooms:    make([]RoomResponse, len(d.Rooms)),
		RoomDays: make(map[string][]RoomDayDTO, len(d.RoomDays)),
		Services: make([]ServiceResponse, len(d.Services)),
		Guests:   make([]GuestResponse, len(d.Guests)),
	}

	if d.Header != nil {
		resp.Header = &HeaderResponse{
			PropertyID:   d.Header.PropertyID,
			Status:       d.Header.Status,
			Arrival:      formatDate(d.Header.Arrival),
			Departure:    formatDate(d.Header.Departure),
			Amount:       d.Header.Amount,
			Currency:     d.Header.Currency,
			Adults:       d.Header.Adults,
			Children:     d.Header.Children,
			Infants:      d.Header.Infants,
			OTAChannel:   d.Header.OTAChannel,
			OTAReference: d.Header.OTAReference,
		}
	}

	for i, r := range d.Rooms {
		resp.Rooms[i] = RoomResponse{
			TempID:     r.TempID,
			ServerID:   r.ServerID,
			RoomTypeID: r.RoomTypeID,
			RatePlanID: r.RatePlanID,
			CheckIn:    formatDate(r.CheckIn),
			CheckOut:   formatDate(r.CheckOut),
			Adults:     r.Adults,
			Children:   r.Children,
			Infants:    r.Infants,
			Amount:     r.Amount,
		}
	}

	for tempID, days := range d.RoomDays {
		out := make([]RoomDayDTO, len(days))
		for i, day := range days {
			out[i] = RoomDayDTO{Date: formatDate(day.Date), Price: day.Price}
		}
		resp.RoomDays[tempID] = out
	}

	for i, svc := range d.Services {
		resp.Services[i] = ServiceResponse{
			ServerID:    svc.ServerID,
			Type:        svc.Type,
			PricingMode: string(svc.PricingMode),
			Persons:     svc.Persons,
			Nights:      svc.Nights,
			UnitPrice:   svc.UnitPrice,
			Total:       svc.Total,
		}
	}

	if d.Guarantee != nil {
		resp.Guarantee = &GuaranteeResponse{
			ServerID:    d.Guarantee.ServerID,
			CardType:    d.Guarantee.CardType,
			CardNumber:  maskCardNumber(d.Guarantee.CardNumber),
			CardHolder:  d.Guarantee.CardHolder,
			ExpiryMonth: d.Guarantee.ExpiryMonth,
			ExpiryYear:  d.Guarantee.ExpiryYear,
			IsVirtual:   d.Guarantee.IsVirtual,
		}
	}

	for i, g := range d.Guests {
		resp.Guests[i] = GuestResponse{
			ServerID:      g.ServerID,
			FirstName:     g.FirstName,
			LastName:      g.LastName,
			Email:         g.Email,
			Phone:         g.Phone,
			Language:      g.Language,
			Country:       g.Country,
			Address:       g.Address,
			City:          g.City,
			PostalCode:    g.PostalCode,
			CompanyName:   g.CompanyName,
			CompanyNumber: g.CompanyNumber,
		}
	}

	return resp
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

// maskCardNumber keeps the last four digits. Card data never leaves the
// service unmasked.
func maskCardNumber(n string) string {
	if len(n) <= 4 {
		return n
	}
	return strings.Repeat("*", len(n)-4) + n[len(n)-4:]
}
