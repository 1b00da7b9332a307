package channelapi

import (
	"context"
	"net/http"
	"net/url"

	"stayops/internal/usecase"
)

type roomBody struct {
	RoomTypeID string  `json:"room_type_id"`
	RatePlanID string  `json:"rate_plan_id"`
	CheckIn    apiDate `json:"check_in"`
	CheckOut   apiDate `json:"check_out"`
	Adults     int     `json:"adults"`
	Children   int     `json:"children"`
	Infants    int     `json:"infants"`
	Amount     string  `json:"amount,omitempty"`
}

type roomEntity struct {
	ID         string         `json:"id"`
	RoomTypeID string         `json:"room_type_id"`
	RatePlanID string         `json:"rate_plan_id"`
	CheckIn    apiDate        `json:"check_in"`
	CheckOut   apiDate        `json:"check_out"`
	Adults     int            `json:"adults"`
	Children   int            `json:"children"`
	Infants    int            `json:"infants"`
	Amount     string         `json:"amount"`
	Days       []roomDayEntity `json:"days"`
}

type roomDayBody struct {
	Date  apiDate `json:"date"`
	Price string  `json:"price"`
}

type roomDayEntity struct {
	ID    string  `json:"id"`
	Date  apiDate `json:"date"`
	Price string  `json:"price"`
}

func (c *Client) CreateRoom(ctx context.Context, bookingID string, p usecase.RoomPayload) (*usecase.RoomRecord, error) {
	var ent roomEntity
	if err := c.do(ctx, http.MethodPost, "/bookings/"+url.PathEscape(bookingID)+"/rooms", roomBodyFrom(p), &ent); err != nil {
		return nil, err
	}
	rec := toRoomRecord(ent)
	return &rec, nil
}

func (c *Client) UpdateRoom(ctx context.Context, id string, p usecase.RoomPayload) (*usecase.RoomRecord, error) {
	var ent roomEntity
	if err := c.do(ctx, http.MethodPut, "/rooms/"+url.PathEscape(id), roomBodyFrom(p), &ent); err != nil {
		return nil, err
	}
	rec := toRoomRecord(ent)
	return &rec, nil
}

func (c *Client) DeleteRoom(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/rooms/"+url.PathEscape(id), nil, nil)
}

func (c *Client) CreateRoomDay(ctx context.Context, roomID string, p usecase.RoomDayPayload) (*usecase.RoomDayRecord, error) {
	body := roomDayBody{Date: newAPIDate(p.Date), Price: p.Price}
	var ent roomDayEntity
	if err := c.do(ctx, http.MethodPost, "/rooms/"+url.PathEscape(roomID)+"/days", body, &ent); err != nil {
		return nil, err
	}
	rec := toRoomDayRecord(ent)
	return &rec, nil
}

func roomBodyFrom(p usecase.RoomPayload) roomBody {
	return roomBody{
		RoomTypeID: p.RoomTypeID,
		RatePlanID: p.RatePlanID,
		CheckIn:    newAPIDate(p.CheckIn),
		CheckOut:   newAPIDate(p.CheckOut),
		Adults:     p.Adults,
		Children:   p.Children,
		Infants:    p.Infants,
		Amount:     p.Amount,
	}
}

func toRoomRecord(ent roomEntity) usecase.RoomRecord {
	rec := usecase.RoomRecord{
		ID: ent.ID,
		RoomPayload: usecase.RoomPayload{
			RoomTypeID: ent.RoomTypeID,
			RatePlanID: ent.RatePlanID,
			CheckIn:    ent.CheckIn.Time,
			CheckOut:   ent.CheckOut.Time,
			Adults:     ent.Adults,
			Children:   ent.Children,
			Infants:    ent.Infants,
			Amount:     ent.Amount,
		},
	}
	for _, d := range ent.Days {
		rec.Days = append(rec.Days, toRoomDayRecord(d))
	}
	return rec
}

func toRoomDayRecord(ent roomDayEntity) usecase.RoomDayRecord {
	return usecase.RoomDayRecord{
		ID:             ent.ID,
		RoomDayPayload: usecase.RoomDayPayload{Date: ent.Date.Time, Price: ent.Price},
	}
}
