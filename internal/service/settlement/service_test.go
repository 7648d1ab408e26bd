package settlement_test

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"

	"pokerhost/internal/model"
	"pokerhost/internal/service/settlement"
	appErr "pokerhost/pkg/errors"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newSettlementService(t *testing.T) (*gorm.DB, *settlement.Service) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&model.Game{}, &model.Player{}, &model.BuyInEntry{},
		&model.Dealer{}, &model.Expense{}, &model.RakeEntry{}, &model.Insurance{}); err != nil {
		t.Fatalf("failed to migrate models: %v", err)
	}

	return db, settlement.NewService(db, nil)
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func floatPtr(v float64) *float64 { return &v }

// seedTwoHostGame stores a rake-mode game where host A collected a losing
// player's 600 and paid a 40 expense, host B paid out 500 to a winner, and
// one insurance side-bet won 200 for the house, split between two partners.
func seedTwoHostGame(t *testing.T, db *gorm.DB) *model.Game {
	t.Helper()

	game := model.Game{
		Name:   "test",
		Mode:   "rake",
		Status: "active",
		HostsJSON: model.EncodeHosts([]model.HostShare{
			{Name: "A", ShareRatio: 0.5},
			{Name: "B", ShareRatio: 0.5},
		}),
		Players: []model.Player{
			{
				Name:          "輸家",
				Status:        "cashed_out",
				CashOutAmount: floatPtr(400),
				CashOutHost:   "A",
				BuyIns:        []model.BuyInEntry{{Amount: 600}, {Amount: 400}},
			},
			{
				Name:          "贏家",
				Status:        "cashed_out",
				CashOutAmount: floatPtr(1000),
				CashOutHost:   "B",
				BuyIns:        []model.BuyInEntry{{Amount: 500}},
			},
		},
		Expenses: []model.Expense{{Amount: 40, Host: "A", Category: "餐飲"}},
		Rakes:    []model.RakeEntry{{Amount: 60}, {Amount: 40}},
		Insurances: []model.Insurance{
			{
				Amount: 200,
				PartnersJSON: model.EncodePartners([]model.InsurancePartner{
					{Name: "X", Percentage: 50},
					{Name: "Y", Percentage: 50},
				}),
			},
		},
	}
	if err := db.Create(&game).Error; err != nil {
		t.Fatalf("seed game failed: %v", err)
	}
	return &game
}

func TestSummary(t *testing.T) {
	ctx := context.Background()
	db, svc := newSettlementService(t)
	game := seedTwoHostGame(t, db)

	sum, err := svc.Summary(ctx, game.ID)
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}

	if !approx(sum.TotalBuyIn, 1500) {
		t.Fatalf("expected total buy-in 1500, got %v", sum.TotalBuyIn)
	}
	if !approx(sum.TotalCashOut, 1400) {
		t.Fatalf("expected total cash-out 1400, got %v", sum.TotalCashOut)
	}
	if !approx(sum.TotalRake, 100) || !approx(sum.Revenue, 100) {
		t.Fatalf("expected rake revenue 100, got rake=%v revenue=%v", sum.TotalRake, sum.Revenue)
	}
	if !approx(sum.NetIncome, 60) {
		t.Fatalf("expected net income 60, got %v", sum.NetIncome)
	}
	// insurance winnings sit outside the cash-flow cross-check
	if !approx(sum.ActualReceipts, -140) {
		t.Fatalf("expected actual receipts -140, got %v", sum.ActualReceipts)
	}
	if sum.Balanced {
		t.Fatalf("expected imbalance flagged, got balanced summary")
	}
}

func TestSummaryGameNotFound(t *testing.T) {
	ctx := context.Background()
	_, svc := newSettlementService(t)

	_, err := svc.Summary(ctx, 999)
	if !errors.Is(err, appErr.ErrGameNotFound) {
		t.Fatalf("expected ErrGameNotFound, got %v", err)
	}
}

func TestSettle(t *testing.T) {
	ctx := context.Background()
	db, svc := newSettlementService(t)
	game := seedTwoHostGame(t, db)

	result, err := svc.Settle(ctx, game.ID)
	if err != nil {
		t.Fatalf("settle failed: %v", err)
	}

	if len(result.Positions) != 2 {
		t.Fatalf("expected 2 host positions, got %d", len(result.Positions))
	}
	a, b := result.Positions[0], result.Positions[1]
	if a.Name != "A" || !approx(a.Collected, 600) || !approx(a.Cost, 40) || !approx(a.TransferAmount, 530) {
		t.Fatalf("unexpected position for A: %+v", a)
	}
	if b.Name != "B" || !approx(b.Collected, -500) || !approx(b.TransferAmount, -530) {
		t.Fatalf("unexpected position for B: %+v", b)
	}

	if len(result.Transfers) != 1 {
		t.Fatalf("expected one transfer, got %+v", result.Transfers)
	}
	tr := result.Transfers[0]
	if tr.From != "A" || tr.To != "B" || !approx(tr.Amount, 530) {
		t.Fatalf("unexpected transfer: %+v", tr)
	}

	// A owes the most in the primary settlement, so it pays the partners.
	if len(result.InsuranceTransfers) != 2 {
		t.Fatalf("expected two insurance transfers, got %+v", result.InsuranceTransfers)
	}
	for _, ins := range result.InsuranceTransfers {
		if ins.From != "A" || !approx(ins.Amount, 100) {
			t.Fatalf("unexpected insurance transfer: %+v", ins)
		}
	}
	if !approx(result.InsuranceNet["A"], -200) || !approx(result.InsuranceNet["X"], 100) {
		t.Fatalf("unexpected insurance net: %+v", result.InsuranceNet)
	}
}

func TestReport(t *testing.T) {
	ctx := context.Background()
	db, svc := newSettlementService(t)
	game := seedTwoHostGame(t, db)

	report, err := svc.Report(ctx, game.ID)
	if err != nil {
		t.Fatalf("report failed: %v", err)
	}

	for _, want := range []string{
		"牌局結算報告",
		"總買入 $1500",
		"總兌出 $1400",
		"總抽水 $100",
		"淨收入 $60",
		"支出明細",
		"轉帳指示",
		"A → B 轉帳 $530",
		"保險結算",
	} {
		if !strings.Contains(report, want) {
			t.Fatalf("report missing %q:\n%s", want, report)
		}
	}
}

func TestSummaryWithoutRedisCache(t *testing.T) {
	ctx := context.Background()
	db, svc := newSettlementService(t)
	game := seedTwoHostGame(t, db)

	first, err := svc.Summary(ctx, game.ID)
	if err != nil {
		t.Fatalf("first summary failed: %v", err)
	}

	// Invalidate is a no-op without redis; a recompute must still agree.
	svc.Invalidate(ctx, game.ID)

	second, err := svc.Summary(ctx, game.ID)
	if err != nil {
		t.Fatalf("second summary failed: %v", err)
	}
	if !approx(first.NetIncome, second.NetIncome) || !approx(first.ActualReceipts, second.ActualReceipts) {
		t.Fatalf("recomputed summary diverged: %+v vs %+v", first, second)
	}
}
