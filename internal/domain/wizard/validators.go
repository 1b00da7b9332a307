package wizard

import (
	"regexp"
	"strings"

	"stayops/internal/domain/booking"
)

// Step validators are pure: they read only their form argument (plus the
// parent stay range where cross-step nesting applies) and return a field →
// message map. They never touch the store or the network.

var (
	emailPattern    = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	phonePattern    = regexp.MustCompile(`^[+0-9][0-9 ()\-]{4,}$`)
	languagePattern = regexp.MustCompile(`^[a-z]{2}$`)
	countryPattern  = regexp.MustCompile(`^[A-Z]{2}$`)
)

func ValidateHeader(f HeaderForm) FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(f.PropertyID) == "" {
		errs["propertyId"] = "property is required"
	}
	if f.Status == "" {
		errs["status"] = "status is required"
	} else if _, err := booking.NewStatus(f.Status); err != nil {
		errs["status"] = "unknown status"
	}
	if f.Arrival.IsZero() {
		errs["arrival"] = "arrival date is required"
	}
	if f.Departure.IsZero() {
		errs["departure"] = "departure date is required"
	}
	if !f.Arrival.IsZero() && !f.Departure.IsZero() {
		if _, err := booking.NewStayRange(f.Arrival, f.Departure); err != nil {
			errs["departure"] = "departure must be after arrival"
		}
	}
	if f.Amount == "" {
		errs["amount"] = "amount is required"
	} else if _, err := booking.NewAmount(f.Amount); err != nil {
		errs["amount"] = "amount must be a non-negative number with at most two decimals"
	}
	if _, err := booking.NewOccupancy(f.Adults, f.Children, f.Infants); err != nil {
		errs["adults"] = "at least one occupant is required"
	}
	if f.OTAReference != "" && !booking.ValidReference(f.OTAReference) {
		errs["otaReference"] = "reference must look like AB-123456"
	}
	return errs
}

// ValidateRoom checks a room form in isolation and, when the booking header's
// range is known, verifies the room's sub-range nests inside it.
func ValidateRoom(f RoomForm, stay *booking.StayRange) FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(f.RoomTypeID) == "" {
		errs["roomTypeId"] = "room type is required"
	}
	if strings.TrimSpace(f.RatePlanID) == "" {
		errs["ratePlanId"] = "rate plan is required"
	}
	if f.CheckIn.IsZero() {
		errs["checkIn"] = "check-in date is required"
	}
	if f.CheckOut.IsZero() {
		errs["checkOut"] = "check-out date is required"
	}
	if !f.CheckIn.IsZero() && !f.CheckOut.IsZero() {
		sub, err := booking.NewStayRange(f.CheckIn, f.CheckOut)
		if err != nil {
			errs["checkOut"] = "check-out must be after check-in"
		} else if stay != nil && !stay.Contains(sub) {
			errs["checkIn"] = "room dates must lie within the booking dates"
		}
	}
	if _, err := booking.NewOccupancy(f.Adults, f.Children, f.Infants); err != nil {
		errs["adults"] = "at least one occupant is required"
	}
	if f.Amount != "" {
		if _, err := booking.NewAmount(f.Amount); err != nil {
			errs["amount"] = "amount must be a non-negative number with at most two decimals"
		}
	}
	return errs
}

func ValidateService(f ServiceForm) FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(f.Type) == "" {
		errs["type"] = "service type is required"
	}
	switch f.PricingMode {
	case PricePerPerson, PricePerStay, PricePerNight:
	case "":
		errs["pricingMode"] = "pricing mode is required"
	default:
		errs["pricingMode"] = "unknown pricing mode"
	}
	if f.Persons < 1 {
		errs["persons"] = "persons must be at least one"
	}
	if f.Nights < 1 {
		errs["nights"] = "nights must be at least one"
	}
	if f.UnitPrice == "" {
		errs["unitPrice"] = "unit price is required"
	} else if _, err := booking.NewAmount(f.UnitPrice); err != nil {
		errs["unitPrice"] = "unit price must be a non-negative number with at most two decimals"
	}
	return errs
}

var (
	cardNumberPattern = regexp.MustCompile(`^[0-9]{12,19}$`)
	monthPattern      = regexp.MustCompile(`^(0[1-9]|1[0-2])$`)
	yearPattern       = regexp.MustCompile(`^[0-9]{4}$`)
)

func ValidateGuarantee(f GuaranteeForm) FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(f.CardType) == "" {
		errs["cardType"] = "card type is required"
	}
	if f.CardNumber == "" {
		errs["cardNumber"] = "card number is required"
	} else if !cardNumberPattern.MatchString(f.CardNumber) {
		errs["cardNumber"] = "card number must be 12 to 19 digits"
	}
	if strings.TrimSpace(f.CardHolder) == "" {
		errs["cardHolder"] = "card holder is required"
	}
	if !monthPattern.MatchString(f.ExpiryMonth) {
		errs["expiryMonth"] = "expiry month must be 01-12"
	}
	if !yearPattern.MatchString(f.ExpiryYear) {
		errs["expiryYear"] = "expiry year must be four digits"
	}
	return errs
}

const (
	maxNameLength    = 100
	maxAddressLength = 200
)

func ValidateGuest(f GuestForm) FieldErrors {
	errs := FieldErrors{}
	requireText(errs, "firstName", f.FirstName, maxNameLength)
	requireText(errs, "lastName", f.LastName, maxNameLength)
	if f.Email == "" {
		errs["email"] = "email is required"
	} else if !emailPattern.MatchString(f.Email) {
		errs["email"] = "invalid email address"
	}
	if f.Phone == "" {
		errs["phone"] = "phone is required"
	} else if !phonePattern.MatchString(f.Phone) {
		errs["phone"] = "invalid phone number"
	}
	if !languagePattern.MatchString(f.Language) {
		errs["language"] = "language must be a two-letter lowercase code"
	}
	if !countryPattern.MatchString(f.Country) {
		errs["country"] = "country must be a two-letter uppercase code"
	}
	requireText(errs, "address", f.Address, maxAddressLength)
	requireText(errs, "city", f.City, maxNameLength)
	requireText(errs, "postalCode", f.PostalCode, 20)
	if f.CompanyName != "" && strings.TrimSpace(f.CompanyNumber) == "" {
		errs["companyNumber"] = "company number is required when a company name is given"
	}
	return errs
}

func requireText(errs FieldErrors, field, value string, maxLen int) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		errs[field] = field + " is required"
		return
	}
	if len(trimmed) > maxLen {
		errs[field] = field + " is too long"
	}
}
