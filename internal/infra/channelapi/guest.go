package channelapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"stayops/internal/infra"
	"stayops/internal/usecase"
)

type guestBody struct {
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Language      string `json:"language"`
	Country       string `json:"country"`
	Address       string `json:"address"`
	City          string `json:"city"`
	PostalCode    string `json:"postal_code"`
	CompanyName   string `json:"company_name,omitempty"`
	CompanyNumber string `json:"company_number,omitempty"`
}

type guestEntity struct {
	ID            string `json:"id"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Language      string `json:"language"`
	Country       string `json:"country"`
	Address       string `json:"address"`
	City          string `json:"city"`
	PostalCode    string `json:"postal_code"`
	CompanyName   string `json:"company_name"`
	CompanyNumber string `json:"company_number"`
}

func (c *Client) CreateGuest(ctx context.Context, bookingID string, p usecase.GuestPayload) (*usecase.GuestRecord, error) {
	var ent guestEntity
	if err := c.do(ctx, http.MethodPost, "/bookings/"+url.PathEscape(bookingID)+"/guests", guestBodyFrom(p), &ent); err != nil {
		return nil, err
	}
	rec := toGuestRecord(ent)
	return &rec, nil
}

func (c *Client) UpdateGuest(ctx context.Context, id string, p usecase.GuestPayload) (*usecase.GuestRecord, error) {
	var ent guestEntity
	if err := c.do(ctx, http.MethodPut, "/guests/"+url.PathEscape(id), guestBodyFrom(p), &ent); err != nil {
		return nil, err
	}
	rec := toGuestRecord(ent)
	return &rec, nil
}

func (c *Client) DeleteGuest(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/guests/"+url.PathEscape(id), nil, nil)
}

// ListGuestsByBooking returns the guest collection. List endpoints wrap the
// array in a data envelope; a bare array is not a shape this API produces.
func (c *Client) ListGuestsByBooking(ctx context.Context, bookingID string) ([]usecase.GuestRecord, error) {
	var out struct {
		Data []guestEntity `json:"data"`
	}
	if err := c.doList(ctx, "/bookings/"+url.PathEscape(bookingID)+"/guests", &out); err != nil {
		return nil, err
	}
	records := make([]usecase.GuestRecord, len(out.Data))
	for i, ent := range out.Data {
		records[i] = toGuestRecord(ent)
	}
	return records, nil
}

// doList decodes a list envelope directly, bypassing the single-entity shape
// rules in decodeEntity.
func (c *Client) doList(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return infra.WrapGatewayErr(infra.KindTransport, "failed to build request", "", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return infra.WrapGatewayErr(infra.KindTransport, "channel API request failed", "", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return infra.WrapGatewayErr(infra.KindRemoteFailure, "channel API failure", "", nil)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return infra.WrapGatewayErr(infra.KindUnexpectedShape, "failed to decode list response", "", err)
	}
	return nil
}

func guestBodyFrom(p usecase.GuestPayload) guestBody {
	return guestBody{
		FirstName:     p.FirstName,
		LastName:      p.LastName,
		Email:         p.Email,
		Phone:         p.Phone,
		Language:      p.Language,
		Country:       p.Country,
		Address:       p.Address,
		City:          p.City,
		PostalCode:    p.PostalCode,
		CompanyName:   p.CompanyName,
		CompanyNumber: p.CompanyNumber,
	}
}

func toGuestRecord(ent guestEntity) usecase.GuestRecord {
	return usecase.GuestRecord{
		ID: ent.ID,
		GuestPayload: usecase.GuestPayload{
			FirstName:     ent.FirstName,
			LastName:      ent.LastName,
			Email:         ent.Email,
			Phone:         ent.Phone,
			Language:      ent.Language,
			Country:       ent.Country,
			Address:       ent.Address,
			City:          ent.City,
			PostalCode:    ent.PostalCode,
			CompanyName:   ent.CompanyName,
			CompanyNumber: ent.CompanyNumber,
		},
	}
}
