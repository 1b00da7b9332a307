package usecase

import (
	"stayops/internal/domain/wizard"

	"github.com/jinzhu/copier"
)

// Form and payload structs share field names one-to-one, so the conversions
// are straight field copies in both directions.

func headerPayload(f wizard.HeaderForm) HeaderPayload {
	var p HeaderPayload
	_ = copier.Copy(&p, &f)
	return p
}

func headerForm(r BookingRecord) wizard.HeaderForm {
	var f wizard.HeaderForm
	_ = copier.Copy(&f, &r.HeaderPayload)
	return f
}

func roomPayload(f wizard.RoomForm) RoomPayload {
	var p RoomPayload
	_ = copier.Copy(&p, &f)
	return p
}

func roomForm(r RoomRecord) wizard.RoomForm {
	var f wizard.RoomForm
	_ = copier.Copy(&f, &r.RoomPayload)
	return f
}

func servicePayload(d wizard.ServiceDraft) ServicePayload {
	return ServicePayload{
		Type:        d.Type,
		PricingMode: string(d.PricingMode),
		Persons:     d.Persons,
		Nights:      d.Nights,
		UnitPrice:   d.UnitPrice,
		Total:       d.Total,
	}
}

func serviceDraft(r ServiceRecord) wizard.ServiceDraft {
	return wizard.ServiceDraft{
		ServerID: r.ID,
		Total:    r.Total,
		ServiceForm: wizard.ServiceForm{
			Type:        r.Type,
			PricingMode: wizard.PricingMode(r.PricingMode),
			Persons:     r.Persons,
			Nights:      r.Nights,
			UnitPrice:   r.UnitPrice,
		},
	}
}

func guaranteePayload(f wizard.GuaranteeForm) GuaranteePayload {
	var p GuaranteePayload
	_ = copier.Copy(&p, &f)
	return p
}

func guaranteeForm(r GuaranteeRecord) wizard.GuaranteeForm {
	var f wizard.GuaranteeForm
	_ = copier.Copy(&f, &r.GuaranteePayload)
	return f
}

func guestPayload(f wizard.GuestForm) GuestPayload {
	var p GuestPayload
	_ = copier.Copy(&p, &f)
	return p
}

func guestForm(r GuestRecord) wizard.GuestForm {
	var f wizard.GuestForm
	_ = copier.Copy(&f, &r.GuestPayload)
	return f
}
