package settle

// NormalizeHosts defends against share ratios that do not sum to 1: actual
// totals are divided out, and a list with no usable ratios falls back to an
// equal split. Malformed ratios are normalized rather than rejected.
func NormalizeHosts(hosts []Host) []Host {
	if len(hosts) == 0 {
		return nil
	}

	var total float64
	for _, h := range hosts {
		if h.ShareRatio > 0 {
			total += h.ShareRatio
		}
	}

	out := make([]Host, len(hosts))
	copy(out, hosts)
	if total <= 0 {
		equal := 1.0 / float64(len(out))
		for i := range out {
			out[i].ShareRatio = equal
		}
		return out
	}
	for i := range out {
		if out[i].ShareRatio < 0 {
			out[i].ShareRatio = 0
		}
		out[i].ShareRatio /= total
	}
	return out
}

// AttributeHosts distributes player cash flow, expenses, and dealer salaries
// across hosts.
//
// Cashed-out players attribute their profit to the host who processed the
// cash-out; with no recorded host the first host takes it. Expenses without a
// host tag stay unattributed when multiple hosts exist. Dealer salaries with
// no responsible host split equally across all hosts.
func AttributeHosts(g Snapshot) Attribution {
	attr := Attribution{
		ProfitByHost:  make(map[string]float64),
		ExpenseByHost: make(map[string]float64),
		SalaryByHost:  make(map[string]float64),
	}

	hosts := NormalizeHosts(g.Hosts)
	if len(hosts) == 0 {
		return attr
	}
	known := make(map[string]bool, len(hosts))
	for _, h := range hosts {
		known[h.Name] = true
	}
	fallback := hosts[0].Name

	for _, p := range g.Players {
		if !p.CashedOut {
			continue
		}
		host := p.CashOutHost
		if host == "" || !known[host] || len(hosts) == 1 {
			host = fallback
		}
		attr.ProfitByHost[host] += p.Profit
	}

	for _, e := range g.Expenses {
		host := e.Host
		if host == "" {
			if len(hosts) == 1 {
				host = fallback
			} else {
				// Untagged expenses vanish from per-host cost when
				// multiple hosts exist; the summary still carries them
				// so the imbalance diagnostic flags the gap.
				continue
			}
		}
		attr.ExpenseByHost[host] += e.Amount
	}

	for _, d := range g.Dealers {
		salary := EstimatedSalary(d)
		if salary == 0 {
			continue
		}
		if d.Host != "" && known[d.Host] {
			attr.SalaryByHost[d.Host] += salary
			continue
		}
		if len(hosts) == 1 {
			attr.SalaryByHost[fallback] += salary
			continue
		}
		split := salary / float64(len(hosts))
		for _, h := range hosts {
			attr.SalaryByHost[h.Name] += split
		}
	}

	return attr
}

// HostPositions computes each host's required transfer amount: what it
// collected from player cash flow, less its costs and dealer salaries, less
// its entitled share of net income.
func HostPositions(g Snapshot, sum Summary) []HostPosition {
	hosts := NormalizeHosts(g.Hosts)
	if len(hosts) == 0 {
		return nil
	}
	attr := AttributeHosts(g)

	positions := make([]HostPosition, 0, len(hosts))
	for _, h := range hosts {
		// Negative player profit means the host collected money.
		collected := -attr.ProfitByHost[h.Name]
		cost := attr.ExpenseByHost[h.Name]
		salary := attr.SalaryByHost[h.Name]
		share := sum.NetIncome * h.ShareRatio

		positions = append(positions, HostPosition{
			Name:           h.Name,
			ShareRatio:     h.ShareRatio,
			Collected:      collected,
			Cost:           cost,
			DealerSalary:   salary,
			ShareAmount:    share,
			TransferAmount: (collected - cost - salary) - share,
		})
	}
	return positions
}
