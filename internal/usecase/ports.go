package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=ports.go -destination=../../tests/mock/gateway/gateway.go -package=gatewaymock

// Gateway ports for the channel-manager API. Identifiers are opaque strings:
// the coordinator only compares them for equality and shape, never structure.

type HeaderPayload struct {
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

type RoomPayload struct {
	RoomTypeID string
	RatePlanID string
	CheckIn    time.Time
	CheckOut   time.Time
	Adults     int
	Children   int
	Infants    int
	Amount     string
}

type RoomDayPayload struct {
	Date  time.Time
	Price string
}

type ServicePayload struct {
	Type        string
	PricingMode string
	Persons     int
	Nights      int
	UnitPrice   string
	Total       string
}

type GuaranteePayload struct {
	CardType    string
	CardNumber  string
	CardHolder  string
	ExpiryMonth string
	ExpiryYear  string
	IsVirtual   bool
}

type GuestPayload struct {
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

type BookingRecord struct {
	ID string
	HeaderPayload
}

type RoomDayRecord struct {
	ID string
	RoomDayPayload
}

type RoomRecord struct {
	ID string
	RoomPayload
	Days []RoomDayRecord
}

type ServiceRecord struct {
	ID string
	ServicePayload
}

type GuaranteeRecord struct {
	ID string
	GuaranteePayload
}

type GuestRecord struct {
	ID string
	GuestPayload
}

// BookingAggregate is the full server-side booking with nested children,
// fetched in one read for the resume algorithm.
type BookingAggregate struct {
	BookingRecord
	Rooms      []RoomRecord
	Services   []ServiceRecord
	Guarantees []GuaranteeRecord
	Guests     []GuestRecord
}

type BookingGateway interface {
	CreateBooking(ctx context.Context, p HeaderPayload) (*BookingRecord, error)
	UpdateBooking(ctx context.Context, id string, p HeaderPayload) (*BookingRecord, error)
	GetBookingAggregate(ctx context.Context, id string) (*BookingAggregate, error)
}

type RoomGateway interface {
	CreateRoom(ctx context.Context, bookingID string, p RoomPayload) (*RoomRecord, error)
	UpdateRoom(ctx context.Context, id string, p RoomPayload) (*RoomRecord, error)
	DeleteRoom(ctx context.Context, id string) error
}

type RoomDayGateway interface {
	CreateRoomDay(ctx context.Context, roomID string, p RoomDayPayload) (*RoomDayRecord, error)
}

type ServiceGateway interface {
	CreateService(ctx context.Context, bookingID string, p ServicePayload) (*ServiceRecord, error)
}

type GuaranteeGateway interface {
	CreateGuarantee(ctx context.Context, bookingID string, p GuaranteePayload) (*GuaranteeRecord, error)
	UpdateGuarantee(ctx context.Context, id string, p GuaranteePayload) (*GuaranteeRecord, error)
}

type GuestGateway interface {
	CreateGuest(ctx context.Context, bookingID string, p GuestPayload) (*GuestRecord, error)
	UpdateGuest(ctx context.Context, id string, p GuestPayload) (*GuestRecord, error)
	DeleteGuest(ctx context.Context, id string) error
	ListGuestsByBooking(ctx context.Context, bookingID string) ([]GuestRecord, error)
}

// SessionRepository holds live wizard sessions. Implementations must be safe
// for concurrent use; per-session mutation is serialized by Session.Mu.
type SessionRepository interface {
	Save(s *Session)
	Find(id uuid.UUID) (*Session, bool)
	Delete(id uuid.UUID)
}
