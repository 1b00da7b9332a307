package channelapi

import (
	"context"
	"net/http"
	"net/url"

	"stayops/internal/usecase"
)

type serviceBody struct {
	Type        string `json:"type"`
	PricingMode string `json:"pricing_mode"`
	Persons     int    `json:"persons"`
	Nights      int    `json:"nights"`
	UnitPrice   string `json:"unit_price"`
	Total       string `json:"total"`
}

type serviceEntity struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	PricingMode string `json:"pricing_mode"`
	Persons     int    `json:"persons"`
	Nights      int    `json:"nights"`
	UnitPrice   string `json:"unit_price"`
	Total       string `json:"total"`
}

func (c *Client) CreateService(ctx context.Context, bookingID string, p usecase.ServicePayload) (*usecase.ServiceRecord, error) {
	body := serviceBody{
		Type:        p.Type,
		PricingMode: p.PricingMode,
		Persons:     p.Persons,
		Nights:      p.Nights,
		UnitPrice:   p.UnitPrice,
		Total:       p.Total,
	}
	var ent serviceEntity
	if err := c.do(ctx, http.MethodPost, "/bookings/"+url.PathEscape(bookingID)+"/services", body, &ent); err != nil {
		return nil, err
	}
	rec := toServiceRecord(ent)
	return &rec, nil
}

func toServiceRecord(ent serviceEntity) usecase.ServiceRecord {
	return usecase.ServiceRecord{
		ID: ent.ID,
		ServicePayload: usecase.ServicePayload{
			Type:        ent.Type,
			PricingMode: ent.PricingMode,
			Persons:     ent.Persons,
			Nights:      ent.Nights,
			UnitPrice:   ent.UnitPrice,
			Total:       ent.Total,
		},
	}
}
