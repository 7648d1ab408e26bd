package settle_test

import (
	"testing"

	"pokerhost/internal/settle"
)

func TestInsuranceWinPaysPartners(t *testing.T) {
	g := settle.Snapshot{
		Insurances: []settle.Insurance{{
			Amount: 200,
			Partners: []settle.Partner{
				{Name: "X", Percentage: 50},
				{Name: "Y", Percentage: 50},
			},
		}},
	}
	positions := []settle.HostPosition{
		{Name: "A", TransferAmount: 120},
		{Name: "B", TransferAmount: -120},
	}

	transfers, net := settle.InsuranceTransfers(g, positions)
	if len(transfers) != 2 {
		t.Fatalf("expected 2 transfers, got %+v", transfers)
	}
	for _, tr := range transfers {
		if tr.From != "A" || !approx(tr.Amount, 100) {
			t.Fatalf("main payer A should pay each partner 100: %+v", tr)
		}
	}
	if !approx(net["A"], -200) || !approx(net["X"], 100) || !approx(net["Y"], 100) {
		t.Fatalf("unexpected net effect: %+v", net)
	}
}

func TestInsuranceLossReimbursesMainHost(t *testing.T) {
	g := settle.Snapshot{
		Insurances: []settle.Insurance{{
			Amount: -90,
			Partners: []settle.Partner{
				{Name: "X", Percentage: 60},
				{Name: "Y", Percentage: 40},
			},
		}},
	}
	positions := []settle.HostPosition{{Name: "A", TransferAmount: 10}}

	transfers, net := settle.InsuranceTransfers(g, positions)
	if len(transfers) != 2 {
		t.Fatalf("expected 2 transfers, got %+v", transfers)
	}
	if transfers[0].From != "X" || transfers[0].To != "A" || !approx(transfers[0].Amount, 54) {
		t.Fatalf("X should reimburse 54: %+v", transfers[0])
	}
	if transfers[1].From != "Y" || !approx(transfers[1].Amount, 36) {
		t.Fatalf("Y should reimburse 36: %+v", transfers[1])
	}
	if !approx(net["A"], 90) {
		t.Fatalf("main host should net +90, got %v", net["A"])
	}
}

func TestInsuranceNormalizesPartnerPercentages(t *testing.T) {
	// Percentages sum to 150; shares divide by the actual total.
	g := settle.Snapshot{
		Insurances: []settle.Insurance{{
			Amount: 300,
			Partners: []settle.Partner{
				{Name: "X", Percentage: 100},
				{Name: "Y", Percentage: 50},
			},
		}},
	}
	positions := []settle.HostPosition{{Name: "A", TransferAmount: 1}}

	transfers, _ := settle.InsuranceTransfers(g, positions)
	if !approx(transfers[0].Amount, 200) || !approx(transfers[1].Amount, 100) {
		t.Fatalf("expected 200/100 split, got %+v", transfers)
	}
}

func TestInsuranceMainPayerFallback(t *testing.T) {
	// Nobody owes in the primary settlement: the first host absorbs it.
	g := settle.Snapshot{
		Insurances: []settle.Insurance{{
			Amount:   50,
			Partners: []settle.Partner{{Name: "X", Percentage: 100}},
		}},
	}
	positions := []settle.HostPosition{
		{Name: "A", TransferAmount: -30},
		{Name: "B", TransferAmount: -20},
	}

	transfers, _ := settle.InsuranceTransfers(g, positions)
	if len(transfers) != 1 || transfers[0].From != "A" {
		t.Fatalf("first host should be the fallback payer: %+v", transfers)
	}
}

func TestInsuranceDegenerate(t *testing.T) {
	positions := []settle.HostPosition{{Name: "A", TransferAmount: 10}}

	// No partners at all.
	g := settle.Snapshot{Insurances: []settle.Insurance{{Amount: 100}}}
	if transfers, net := settle.InsuranceTransfers(g, positions); transfers != nil || net != nil {
		t.Fatalf("partnerless record should settle nothing: %+v", transfers)
	}

	// No hosts.
	g = settle.Snapshot{Insurances: []settle.Insurance{{
		Amount:   100,
		Partners: []settle.Partner{{Name: "X", Percentage: 100}},
	}}}
	if transfers, _ := settle.InsuranceTransfers(g, nil); transfers != nil {
		t.Fatalf("no hosts means nobody to settle with: %+v", transfers)
	}
}
