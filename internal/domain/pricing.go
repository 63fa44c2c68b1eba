package domain

import "github.com/m04kA/SMC-RentalCalendar/pkg/calendardate"

// Enhancement optional add-on charged per rental day
type Enhancement struct {
	Name        string
	PricePerDay float64
}

// Enhancements catalog offered in the booking wizard
var Enhancements = []Enhancement{
	{Name: "Elite Insurance Coverage", PricePerDay: 150},
	{Name: "Personal Chauffeur", PricePerDay: 450},
	{Name: "Concierge Delivery", PricePerDay: 100},
	{Name: "GPS Navigation Pro", PricePerDay: 25},
}

// FindEnhancement looks up an enhancement by its exact name
func FindEnhancement(name string) (Enhancement, bool) {
	for _, e := range Enhancements {
		if e.Name == name {
			return e, true
		}
	}
	return Enhancement{}, false
}

// RentalDays is the number of charged days; a same-day rental costs one day
func RentalDays(pickup, ret calendardate.Date) int {
	days := pickup.DaysUntil(ret)
	if days < MinRentalDaysForPrice {
		return MinRentalDaysForPrice
	}
	return days
}

// PriceQuote breakdown of a rental price
type PriceQuote struct {
	Days              int
	BasePrice         float64
	EnhancementsPrice float64
	Total             float64
}

// QuotePrice computes the price for the rental; unknown enhancements are ignored
func QuotePrice(pricePerDay float64, pickup, ret calendardate.Date, enhancements []string) PriceQuote {
	days := RentalDays(pickup, ret)
	base := pricePerDay * float64(days)

	var extras float64
	for _, name := range enhancements {
		if e, ok := FindEnhancement(name); ok {
			extras += e.PricePerDay * float64(days)
		}
	}

	return PriceQuote{
		Days:              days,
		BasePrice:         base,
		EnhancementsPrice: extras,
		Total:             base + extras,
	}
}
