package service

import "errors"

// ErrQuantityAboveLimit rejects line items past the hard quantity ceiling.
var ErrQuantityAboveLimit = errors.New("quantity above 20 identical items is not allowed")

// DiscountForQuantity returns the discount rate applied to a line item based
// on its quantity: 4-9 items get 10%, 10-20 items get 20%. More than 20
// identical items is rejected. Quantities below 1 are a caller-side
// validation concern.
func DiscountForQuantity(qty int) (float64, error) {
	switch {
	case qty > 20:
		return 0, ErrQuantityAboveLimit
	case qty >= 10:
		return 0.20, nil
	case qty >= 4:
		return 0.10, nil
	default:
		return 0, nil
	}
}
