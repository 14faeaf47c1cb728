package domain

// SellerCut - доля продавца, удерживаемая с целого заказа
const SellerCut = 0.3

// CalcDebtAmount computes an order's contribution to its supplier's debt.
// Whole orders: cost - cost*0.3 - premium. Split halves: cost - premium,
// with cost and premium already halved by the caller - the seller cut is
// not applied to split halves. The result may be negative, no clamping.
func CalcDebtAmount(cost, premium float64, isSplit bool) float64 {
	if isSplit {
		return cost - premium
	}
	return cost - cost*SellerCut - premium
}

// SplitHalf returns the halved cost, premium and debt for one half of a
// split order.
func SplitHalf(cost, premium float64) (halfCost, halfPremium, halfDebt float64) {
	halfCost = cost / 2
	halfPremium = premium / 2
	halfDebt = CalcDebtAmount(halfCost, halfPremium, true)
	return halfCost, halfPremium, halfDebt
}
