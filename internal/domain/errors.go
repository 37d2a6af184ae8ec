package domain

import "errors"

var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidFilter     = errors.New("invalid filter value")
	ErrInvalidGuests     = errors.New("invalid guest count")
	ErrInvalidPriceRange = errors.New("invalid price range")
	ErrInvalidDate       = errors.New("invalid date")
	ErrInvalidDiscount   = errors.New("discount must be within 0..100")
)
