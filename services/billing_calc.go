package services

import (
	"time"

	"frontdesk-backend/models"
)

// Bill is the result of a rate-card computation. Amounts are kept separate
// so the history record can snapshot each component.
type Bill struct {
	TotalHours int     `json:"totalHours"`
	Gross      float64 `json:"grossAmount"`
	Discount   float64 `json:"discountAmount"`
	Ancillary  float64 `json:"ancillaryAmount"`
	Final      float64 `json:"finalAmount"`
}

// ComputeBill prices a stay. Partial hours round up, full days are charged
// at the day rate and the remainder at the hour rate; the discount applies
// to room charges only, never to ancillary (food) charges.
//
// A checkout before check-in can only come from clock skew and is clamped
// to zero hours rather than producing a negative bill.
func ComputeBill(checkIn, checkOut time.Time, rate models.RateCard, ancillary float64) Bill {
	elapsed := checkOut.Sub(checkIn)
	if elapsed < 0 {
		elapsed = 0
	}

	hours := int(elapsed / time.Hour)
	if elapsed%time.Hour > 0 {
		hours++
	}

	days := hours / 24
	remHours := hours % 24

	gross := float64(days)*rate.CostPerDay + float64(remHours)*rate.CostPerHour
	discount := gross * rate.DiscountPercent / 100

	return Bill{
		TotalHours: hours,
		Gross:      gross,
		Discount:   discount,
		Ancillary:  ancillary,
		Final:      gross - discount + ancillary,
	}
}
