package settle

import "math"

// Summarize reduces a snapshot into game-level totals.
//
// Revenue is rake in rake mode and entry fees otherwise. NetIncome is the
// pool hosts split by share ratio; ActualReceipts reconstructs the same
// figure from cash flow as a cross-check.
func Summarize(g Snapshot) Summary {
	var sum Summary

	for _, p := range g.Players {
		sum.TotalBuyIn += p.BuyIn
		// BuyIn+Profit is the cash-out amount for cashed-out players
		// and zero for active ones.
		sum.TotalCashOut += p.BuyIn + p.Profit

		fee, ok := EntryFee(p, g)
		if !ok {
			sum.PendingEntryFees++
			continue
		}
		sum.TotalEntryFee += fee
	}

	for _, amount := range g.Rakes {
		sum.TotalRake += amount
	}
	for _, d := range g.Dealers {
		sum.TotalTips += d.TotalTips
		sum.TotalDealerSalary += EstimatedSalary(d)
	}
	for _, e := range g.Expenses {
		sum.TotalExpenses += e.Amount
	}
	for _, ins := range g.Insurances {
		sum.InsuranceProfit += ins.Amount
	}

	if g.Mode == ModeNoRake {
		sum.Revenue = sum.TotalEntryFee
	} else {
		sum.Revenue = sum.TotalRake
	}

	sum.NetIncome = sum.Revenue + sum.TotalTips - sum.TotalExpenses - sum.TotalDealerSalary
	sum.ActualReceipts = sum.TotalBuyIn - sum.TotalCashOut - sum.TotalExpenses -
		sum.TotalDealerSalary - sum.InsuranceProfit
	sum.Difference = sum.ActualReceipts - sum.NetIncome
	sum.Balanced = math.Abs(sum.Difference) < Epsilon

	return sum
}
