package pricing

import (
	"math"

	"github.com/rideon-labs/motorcycle-rental-platform/internal/models"
)

// ApplyDiscountsAndCalculateTotals allocates the cart's coupon (if any)
// across its items and recomputes all derived totals. The caller must have
// populated item RentAmount/TaxPercentage and cart.SecurityDepositTotal;
// cart.Coupon must already be resolved and validated. Deterministic: items
// are walked in cart order, so repeated runs produce identical allocations.
func ApplyDiscountsAndCalculateTotals(cart *models.Cart) {
	// Baseline: no discount, tax on the raw amounts.
	cart.RentTotal = 0
	for i := range cart.Items {
		item := &cart.Items[i]
		item.DiscountedRentAmount = item.RentAmount
		item.TotalTax = item.RentAmount * (item.TaxPercentage / 100)
		cart.RentTotal += item.RentAmount
	}

	if cart.Coupon == nil {
		cart.TotalTax = sumTax(cart.Items)
		cart.DiscountedRentTotal = cart.RentTotal + cart.TotalTax
		cart.DiscountedTotal = cart.RentTotal + cart.TotalTax + cart.SecurityDepositTotal

		return
	}

	switch cart.Coupon.Type {
	case models.PromoCodeTypePercentage:
		applyPercentageDiscount(cart)
	case models.PromoCodeTypeFlat:
		applyFlatDiscount(cart)
	}

	discountedRent := 0.0
	for i := range cart.Items {
		discountedRent += cart.Items[i].DiscountedRentAmount
	}

	cart.TotalTax = sumTax(cart.Items)
	cart.DiscountedRentTotal = discountedRent + cart.TotalTax
	cart.DiscountedTotal = discountedRent + cart.TotalTax + cart.SecurityDepositTotal
}

// applyPercentageDiscount discounts each item independently; exact by
// construction, no cross-item interaction.
func applyPercentageDiscount(cart *models.Cart) {
	for i := range cart.Items {
		item := &cart.Items[i]
		discount := item.RentAmount * (cart.Coupon.DiscountValue / 100)
		item.DiscountedRentAmount = math.Max(0, item.RentAmount-discount)
		item.TotalTax = item.DiscountedRentAmount * (item.TaxPercentage / 100)
	}
}

// applyFlatDiscount distributes a fixed discount across items without driving
// any item negative and without leaving a residual when the cart can absorb
// the full amount. Two passes: proportional shares first, then a greedy
// redistribution of whatever the caps left over.
func applyFlatDiscount(cart *models.Cart) {
	if cart.RentTotal <= 0 {
		return
	}

	remaining := cart.Coupon.DiscountValue

	// First pass: proportional to each item's share of the original rent,
	// capped at the item's own rent and the remaining budget.
	for i := range cart.Items {
		if remaining <= 0 {
			break
		}

		item := &cart.Items[i]
		proportion := item.RentAmount / cart.RentTotal
		discount := math.Min(cart.Coupon.DiscountValue*proportion, item.RentAmount)
		discount = math.Min(discount, remaining)

		item.DiscountedRentAmount = math.Max(0, item.RentAmount-discount)
		item.TotalTax = item.DiscountedRentAmount * (item.TaxPercentage / 100)
		remaining -= discount
	}

	// Second pass: proportional shares capped by small items leave a
	// remainder; sweep it into whatever headroom the other items still have.
	if remaining > 0 {
		for i := range cart.Items {
			if remaining <= 0 {
				break
			}

			item := &cart.Items[i]
			discount := math.Min(remaining, item.DiscountedRentAmount)

			item.DiscountedRentAmount -= discount
			item.TotalTax = item.DiscountedRentAmount * (item.TaxPercentage / 100)
			remaining -= discount
		}
	}
}

// PreDiscountTax is the tax the cart would carry with no coupon applied. Used
// for the pre-discount cartTotal reference figure and the coupon eligibility
// gate.
func PreDiscountTax(items []models.CartItem) float64 {
	total := 0.0
	for i := range items {
		total += items[i].RentAmount * (items[i].TaxPercentage / 100)
	}

	return total
}

func sumTax(items []models.CartItem) float64 {
	total := 0.0
	for i := range items {
		total += items[i].TotalTax
	}

	return total
}
