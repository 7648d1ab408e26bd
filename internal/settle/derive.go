package settle

import (
	"math"

	"pokerhost/pkg/utils/clock"
)

// EntryFee computes the fee owed by one player. The bool is false when the
// fee is pending: hourly mode without both timestamps yet. Callers must not
// conflate "0 because free" with "not yet computable".
func EntryFee(p Player, g Snapshot) (float64, bool) {
	if p.CustomEntryFee != nil {
		return *p.CustomEntryFee, true
	}
	return BaseEntryFee(p, g)
}

// BaseEntryFee is the formula-derived fee, ignoring any per-player override.
// Used to show the calculated value while an override is being edited.
func BaseEntryFee(p Player, g Snapshot) (float64, bool) {
	if g.Mode != ModeNoRake {
		return 0, true
	}
	// A positive fixed fee takes priority regardless of mode.
	if g.FixedEntryFee > 0 || g.EntryFeeMode == EntryFeeFixed {
		return g.FixedEntryFee, true
	}

	if p.BuyInAt.IsZero() || p.CashOutAt == nil || !p.CashOutAt.After(p.BuyInAt) {
		return 0, false
	}
	minutes := math.Ceil(p.CashOutAt.Sub(p.BuyInAt).Minutes())
	units := math.Ceil(minutes / 30)
	if units < 1 {
		units = 1
	}
	return units * g.HourlyRate, true
}

// EstimatedSalary computes a dealer's pay: their share of the tip pool plus
// the hourly portion, unless a manual override is set.
func EstimatedSalary(d Dealer) float64 {
	if d.SalaryOverride != nil && *d.SalaryOverride > 0 {
		return *d.SalaryOverride
	}
	return d.TotalTips*(d.TipSharePct/100) + d.HourlyRate*d.WorkHours
}

// WorkHours derives hours from clock strings ("14:00" or "1400"), rounded up
// to the nearest half hour. end <= start is treated as crossing midnight.
// Unparseable input yields 0.
func WorkHours(start, end string) float64 {
	startMin, ok := clock.Minutes(start)
	if !ok {
		return 0
	}
	endMin, ok := clock.Minutes(end)
	if !ok {
		return 0
	}

	total := endMin - startMin
	if total <= 0 {
		total = (24*60 - startMin) + endMin
	}
	// Dealers are paid for any started half-hour block.
	return math.Ceil(float64(total)/60*2) / 2
}
