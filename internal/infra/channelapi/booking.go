package channelapi

import (
	"context"
	"net/http"
	"net/url"

	"stayops/internal/usecase"
)

// bookingCreateBody is the allow-list of fields accepted on create. Update
// uses a narrower body: property and OTA linkage are immutable once issued.
type bookingCreateBody struct {
	PropertyID   string  `json:"property_id"`
	Status       string  `json:"status"`
	Arrival      apiDate `json:"arrival"`
	Departure    apiDate `json:"departure"`
	Amount       string  `json:"amount"`
	Currency     string  `json:"currency,omitempty"`
	Adults       int     `json:"adults"`
	Children     int     `json:"children"`
	Infants      int     `json:"infants"`
	OTAChannel   string  `json:"ota_channel,omitempty"`
	OTAReference string  `json:"ota_reference,omitempty"`
}

type bookingUpdateBody struct {
	Status    string  `json:"status"`
	Arrival   apiDate `json:"arrival"`
	Departure apiDate `json:"departure"`
	Amount    string  `json:"amount"`
	Currency  string  `json:"currency,omitempty"`
	Adults    int     `json:"adults"`
	Children  int     `json:"children"`
	Infants   int     `json:"infants"`
}

type bookingEntity struct {
	ID           string  `json:"id"`
	PropertyID   string  `json:"property_id"`
	Status       string  `json:"status"`
	Arrival      apiDate `json:"arrival"`
	Departure    apiDate `json:"departure"`
	Amount       string  `json:"amount"`
	Currency     string  `json:"currency"`
	Adults       int     `json:"adults"`
	Children     int     `json:"children"`
	Infants      int     `json:"infants"`
	OTAChannel   string  `json:"ota_channel"`
	OTAReference string  `json:"ota_reference"`
}

type bookingAggregateEntity struct {
	bookingEntity
	Rooms      []roomEntity      `json:"rooms"`
	Services   []serviceEntity   `json:"services"`
	Guarantees []guaranteeEntity `json:"guarantees"`
	Guests     []guestEntity     `json:"guests"`
}

func (c *Client) CreateBooking(ctx context.Context, p usecase.HeaderPayload) (*usecase.BookingRecord, error) {
	body := bookingCreateBody{
		PropertyID:   p.PropertyID,
		Status:       p.Status,
		Arrival:      newAPIDate(p.Arrival),
		Departure:    newAPIDate(p.Departure),
		Amount:       p.Amount,
		Currency:     p.Currency,
		Adults:       p.Adults,
		Children:     p.Children,
		Infants:      p.Infants,
		OTAChannel:   p.OTAChannel,
		OTAReference: p.OTAReference,
	}
	var ent bookingEntity
	if err := c.do(ctx, http.MethodPost, "/bookings", body, &ent); err != nil {
		return nil, err
	}
	rec := toBookingRecord(ent)
	return &rec, nil
}

func (c *Client) UpdateBooking(ctx context.Context, id string, p usecase.HeaderPayload) (*usecase.BookingRecord, error) {
	body := bookingUpdateBody{
		Status:    p.Status,
		Arrival:   newAPIDate(p.Arrival),
		Departure: newAPIDate(p.Departure),
		Amount:    p.Amount,
		Currency:  p.Currency,
		Adults:    p.Adults,
		Children:  p.Children,
		Infants:   p.Infants,
	}
	var ent bookingEntity
	if err := c.do(ctx, http.MethodPut, "/bookings/"+url.PathEscape(id), body, &ent); err != nil {
		return nil, err
	}
	rec := toBookingRecord(ent)
	return &rec, nil
}

// GetBookingAggregate is the single read used by the resume flow: the header
// with all nested child records in one response.
func (c *Client) GetBookingAggregate(ctx context.Context, id string) (*usecase.BookingAggregate, error) {
	var ent bookingAggregateEntity
	if err := c.do(ctx, http.MethodGet, "/bookings/"+url.PathEscape(id)+"?include=rooms,services,guarantees,guests", nil, &ent); err != nil {
		return nil, err
	}

	agg := &usecase.BookingAggregate{BookingRecord: toBookingRecord(ent.bookingEntity)}
	for _, r := range ent.Rooms {
		agg.Rooms = append(agg.Rooms, toRoomRecord(r))
	}
	for _, s := range ent.Services {
		agg.Services = append(agg.Services, toServiceRecord(s))
	}
	for _, g := range ent.Guarantees {
		agg.Guarantees = append(agg.Guarantees, toGuaranteeRecord(g))
	}
	for _, g := range ent.Guests {
		agg.Guests = append(agg.Guests, toGuestRecord(g))
	}
	return agg, nil
}

func toBookingRecord(ent bookingEntity) usecase.BookingRecord {
	return usecase.BookingRecord{
		ID: ent.ID,
		HeaderPayload: usecase.HeaderPayload{
			PropertyID:   ent.PropertyID,
			Status:       ent.Status,
			Arrival:      ent.Arrival.Time,
			Departure:    ent.Departure.Time,
			Amount:       ent.Amount,
			Currency:     ent.Currency,
			Adults:       ent.Adults,
			Children:     ent.Children,
			Infants:      ent.Infants,
			OTAChannel:   ent.OTAChannel,
			OTAReference: ent.OTAReference,
		},
	}
}
