package checkout

// Shipping fee policy: flat fee below the free-shipping threshold, free at or
// above it. Pure function of the subtotal; recomputed on every quote.
const (
	FreeShippingThreshold = 5000.0 // PKR, inclusive on the free side
	FlatShippingFee       = 250.0  // PKR
)

// ShippingFee returns the fee for a given cart subtotal.
func ShippingFee(subtotal float64) float64 {
	if subtotal >= FreeShippingThreshold {
		return 0
	}
	return FlatShippingFee
}
