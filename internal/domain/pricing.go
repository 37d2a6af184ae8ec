package domain

import "math"

// TaxRate applied to the nightly price for "Taxes & fees".
const TaxRate = 0.12

// OriginalPrice derives the undiscounted price from a discounted one:
// round(price / (1 - discount/100)).
func OriginalPrice(price float64, discount int) int {
	if discount <= 0 || discount >= 100 {
		return int(math.Round(price))
	}
	return int(math.Round(price / (1 - float64(discount)/100)))
}

// DiscountedPrice is round(price × (1 − discount/100)).
func DiscountedPrice(price float64, discount int) int {
	if discount <= 0 {
		return int(math.Round(price))
	}
	if discount >= 100 {
		return 0
	}
	return int(math.Round(price * (1 - float64(discount)/100)))
}

// ValidDiscount reports whether d is a percentage in [0,100].
func ValidDiscount(d int) bool { return d >= 0 && d <= 100 }
