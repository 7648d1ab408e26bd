package settle

// InsuranceTransfers settles insurance side-bet profit and loss among the
// designated partners. This pass is independent of the primary settlement:
// its transfers are displayed alongside but never merged numerically, so a
// host can appear as payer in both lists for unrelated reasons.
//
// The main payer is the host already owing the most in the primary
// settlement; it absorbs insurance exposure by default. The returned map is
// the net effect per name, for display.
func InsuranceTransfers(g Snapshot, positions []HostPosition) ([]Transfer, map[string]float64) {
	if len(g.Insurances) == 0 || len(positions) == 0 {
		return nil, nil
	}

	main := mainPayer(positions)
	net := make(map[string]float64)
	var transfers []Transfer

	for _, ins := range g.Insurances {
		var totalPct float64
		for _, partner := range ins.Partners {
			if partner.Percentage > 0 {
				totalPct += partner.Percentage
			}
		}
		if totalPct <= 0 {
			continue
		}

		amount := ins.Amount
		for _, partner := range ins.Partners {
			if partner.Percentage <= 0 {
				continue
			}
			share := abs(amount) * partner.Percentage / totalPct
			if share < Epsilon {
				continue
			}
			if amount > 0 {
				// Side-bet won: the main host pays each partner.
				transfers = append(transfers, Transfer{From: main, To: partner.Name, Amount: share})
				net[main] -= share
				net[partner.Name] += share
			} else {
				// Side-bet lost: partners reimburse the main host.
				transfers = append(transfers, Transfer{From: partner.Name, To: main, Amount: share})
				net[main] += share
				net[partner.Name] -= share
			}
		}
	}

	if len(transfers) == 0 {
		return nil, nil
	}
	return transfers, net
}

func mainPayer(positions []HostPosition) string {
	best := positions[0].Name
	bestAmount := 0.0
	for _, p := range positions {
		if p.TransferAmount > bestAmount {
			best = p.Name
			bestAmount = p.TransferAmount
		}
	}
	return best
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
