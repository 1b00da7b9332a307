package channelapi

import (
	"context"
	"net/http"
	"net/url"

	"stayops/internal/usecase"
)

type guaranteeBody struct {
	CardType    string `json:"card_type"`
	CardNumber  string `json:"card_number"`
	CardHolder  string `json:"card_holder"`
	ExpiryMonth string `json:"expiry_month"`
	ExpiryYear  string `json:"expiry_year"`
	IsVirtual   bool   `json:"is_virtual"`
}

type guaranteeEntity struct {
	ID          string `json:"id"`
	CardType    string `json:"card_type"`
	CardNumber  string `json:"card_number"`
	CardHolder  string `json:"card_holder"`
	ExpiryMonth string `json:"expiry_month"`
	ExpiryYear  string `json:"expiry_year"`
	IsVirtual   bool   `json:"is_virtual"`
}

func (c *Client) CreateGuarantee(ctx context.Context, bookingID string, p usecase.GuaranteePayload) (*usecase.GuaranteeRecord, error) {
	var ent guaranteeEntity
	if err := c.do(ctx, http.MethodPost, "/bookings/"+url.PathEscape(bookingID)+"/guarantees", guaranteeBodyFrom(p), &ent); err != nil {
		return nil, err
	}
	rec := toGuaranteeRecord(ent)
	return &rec, nil
}

func (c *Client) UpdateGuarantee(ctx context.Context, id string, p usecase.GuaranteePayload) (*usecase.GuaranteeRecord, error) {
	var ent guaranteeEntity
	if err := c.do(ctx, http.MethodPut, "/guarantees/"+url.PathEscape(id), guaranteeBodyFrom(p), &ent); err != nil {
		return nil, err
	}
	rec := toGuaranteeRecord(ent)
	return &rec, nil
}

func guaranteeBodyFrom(p usecase.GuaranteePayload) guaranteeBody {
	return guaranteeBody{
		CardType:    p.CardType,
		CardNumber:  p.CardNumber,
		CardHolder:  p.CardHolder,
		ExpiryMonth: p.ExpiryMonth,
		ExpiryYear:  p.ExpiryYear,
		IsVirtual:   p.IsVirtual,
	}
}

func toGuaranteeRecord(ent guaranteeEntity) usecase.GuaranteeRecord {
	return usecase.GuaranteeRecord{
		ID: ent.ID,
		GuaranteePayload: usecase.GuaranteePayload{
			CardType:    ent.CardType,
			CardNumber:  ent.CardNumber,
			CardHolder:  ent.CardHolder,
			ExpiryMonth: ent.ExpiryMonth,
			ExpiryYear:  ent.ExpiryYear,
			IsVirtual:   ent.IsVirtual,
		},
	}
}
