package settle

import "sort"

type party struct {
	name      string
	remaining float64
}

// Transfers turns host positions into point-to-point payment instructions
// that net every balance to zero within Epsilon.
//
// Greedy two-pointer matching: partition into payers and receivers, sort both
// descending by magnitude, and settle min(payer, receiver) at each step. This
// matches the largest obligations first; it is the standard debt-settlement
// heuristic, deterministic given the sorted input, not a provably minimal
// solver. Leftover dust below Epsilon is dropped.
func Transfers(positions []HostPosition) []Transfer {
	if len(positions) < 2 {
		return nil
	}

	var payers, receivers []party
	for _, p := range positions {
		switch {
		case p.TransferAmount > Epsilon:
			payers = append(payers, party{name: p.Name, remaining: p.TransferAmount})
		case p.TransferAmount < -Epsilon:
			receivers = append(receivers, party{name: p.Name, remaining: -p.TransferAmount})
		}
	}

	sortByAmountDesc(payers)
	sortByAmountDesc(receivers)

	var transfers []Transfer
	i, j := 0, 0
	for i < len(payers) && j < len(receivers) {
		amount := payers[i].remaining
		if receivers[j].remaining < amount {
			amount = receivers[j].remaining
		}

		if amount > Epsilon {
			transfers = append(transfers, Transfer{
				From:   payers[i].name,
				To:     receivers[j].name,
				Amount: amount,
			})
		}

		payers[i].remaining -= amount
		receivers[j].remaining -= amount

		if payers[i].remaining < Epsilon {
			i++
		}
		if receivers[j].remaining < Epsilon {
			j++
		}
	}

	return transfers
}

func sortByAmountDesc(parties []party) {
	sort.Slice(parties, func(i, j int) bool {
		if parties[i].remaining != parties[j].remaining {
			return parties[i].remaining > parties[j].remaining
		}
		return parties[i].name < parties[j].name
	})
}
