package dealer_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"pokerhost/internal/model"
	"pokerhost/internal/service/dealer"
	appErr "pokerhost/pkg/errors"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newDealerService(t *testing.T) (*gorm.DB, *dealer.Service) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&model.Game{}, &model.Dealer{}); err != nil {
		t.Fatalf("failed to migrate models: %v", err)
	}

	return db, dealer.NewService(db)
}

func seedGame(t *testing.T, db *gorm.DB, status string) *model.Game {
	t.Helper()

	game := model.Game{Name: "test", Mode: "rake", Status: status}
	if err := db.Create(&game).Error; err != nil {
		t.Fatalf("seed game failed: %v", err)
	}
	return &game
}

func TestAddDealer(t *testing.T) {
	ctx := context.Background()
	db, svc := newDealerService(t)
	game := seedGame(t, db, "active")

	created, err := svc.Add(ctx, game.ID, dealer.MutationParams{
		Name:        "小王",
		TipSharePct: 50,
		HourlyRate:  150,
		TotalTips:   600,
		Host:        "阿明",
	})
	if err != nil {
		t.Fatalf("add dealer failed: %v", err)
	}
	if created.Status != "working" || created.TipSharePct != 50 {
		t.Fatalf("unexpected dealer: %+v", created)
	}
}

func TestAddDealerInvalidTipShare(t *testing.T) {
	ctx := context.Background()
	db, svc := newDealerService(t)
	game := seedGame(t, db, "active")

	_, err := svc.Add(ctx, game.ID, dealer.MutationParams{Name: "小王", TipSharePct: 70})
	if !errors.Is(err, appErr.ErrInvalidGameParams) {
		t.Fatalf("expected ErrInvalidGameParams for tip share 70, got %v", err)
	}
}

func TestAddDealerGameNotFound(t *testing.T) {
	ctx := context.Background()
	_, svc := newDealerService(t)

	_, err := svc.Add(ctx, 999, dealer.MutationParams{Name: "小王", TipSharePct: 50})
	if !errors.Is(err, appErr.ErrGameNotFound) {
		t.Fatalf("expected ErrGameNotFound, got %v", err)
	}
}

func TestAddDealerCompletedGame(t *testing.T) {
	ctx := context.Background()
	db, svc := newDealerService(t)
	game := seedGame(t, db, "completed")

	_, err := svc.Add(ctx, game.ID, dealer.MutationParams{Name: "小王", TipSharePct: 50})
	if !errors.Is(err, appErr.ErrGameCompleted) {
		t.Fatalf("expected ErrGameCompleted, got %v", err)
	}
}

func TestClockOut(t *testing.T) {
	ctx := context.Background()
	db, svc := newDealerService(t)
	game := seedGame(t, db, "active")

	created, err := svc.Add(ctx, game.ID, dealer.MutationParams{Name: "小王", TipSharePct: 100, HourlyRate: 150})
	if err != nil {
		t.Fatalf("add dealer failed: %v", err)
	}

	// compact input, shift crossing midnight
	out, err := svc.ClockOut(ctx, created.ID, "1800", "0230")
	if err != nil {
		t.Fatalf("clock out failed: %v", err)
	}
	if out.StartTime != "18:00" || out.EndTime != "02:30" {
		t.Fatalf("expected normalized clock times, got %q-%q", out.StartTime, out.EndTime)
	}
	if out.WorkHours != 8.5 {
		t.Fatalf("expected 8.5 work hours, got %v", out.WorkHours)
	}
	if out.Status != "off_duty" {
		t.Fatalf("expected off_duty status, got %q", out.Status)
	}
}

func TestClockOutInvalidTime(t *testing.T) {
	ctx := context.Background()
	db, svc := newDealerService(t)
	game := seedGame(t, db, "active")

	created, err := svc.Add(ctx, game.ID, dealer.MutationParams{Name: "小王", TipSharePct: 100})
	if err != nil {
		t.Fatalf("add dealer failed: %v", err)
	}

	_, err = svc.ClockOut(ctx, created.ID, "25:00", "02:00")
	if !errors.Is(err, appErr.ErrInvalidClockTime) {
		t.Fatalf("expected ErrInvalidClockTime, got %v", err)
	}
}

func TestClockOutCompletedGame(t *testing.T) {
	ctx := context.Background()
	db, svc := newDealerService(t)
	game := seedGame(t, db, "active")

	created, err := svc.Add(ctx, game.ID, dealer.MutationParams{Name: "小王", TipSharePct: 100, HourlyRate: 150})
	if err != nil {
		t.Fatalf("add dealer failed: %v", err)
	}

	if err := db.Model(&model.Game{}).Where("id = ?", game.ID).
		Update("status", "completed").Error; err != nil {
		t.Fatalf("complete game failed: %v", err)
	}

	_, err = svc.ClockOut(ctx, created.ID, "18:00", "02:30")
	if !errors.Is(err, appErr.ErrGameCompleted) {
		t.Fatalf("expected ErrGameCompleted, got %v", err)
	}
}

func TestUpdateDealerNotFound(t *testing.T) {
	ctx := context.Background()
	_, svc := newDealerService(t)

	_, err := svc.Update(ctx, 999, dealer.MutationParams{Name: "小王", TipSharePct: 50})
	if !errors.Is(err, appErr.ErrDealerNotFound) {
		t.Fatalf("expected ErrDealerNotFound, got %v", err)
	}
}

func TestUpdateDealerCompletedGame(t *testing.T) {
	ctx := context.Background()
	db, svc := newDealerService(t)
	game := seedGame(t, db, "active")

	created, err := svc.Add(ctx, game.ID, dealer.MutationParams{Name: "小王", TipSharePct: 50})
	if err != nil {
		t.Fatalf("add dealer failed: %v", err)
	}

	if err := db.Model(&model.Game{}).Where("id = ?", game.ID).
		Update("status", "completed").Error; err != nil {
		t.Fatalf("complete game failed: %v", err)
	}

	_, err = svc.Update(ctx, created.ID, dealer.MutationParams{Name: "小王", TipSharePct: 100})
	if !errors.Is(err, appErr.ErrGameCompleted) {
		t.Fatalf("expected ErrGameCompleted, got %v", err)
	}
}

func TestUpdateDealerSalaryOverride(t *testing.T) {
	ctx := context.Background()
	db, svc := newDealerService(t)
	game := seedGame(t, db, "active")

	created, err := svc.Add(ctx, game.ID, dealer.MutationParams{Name: "小王", TipSharePct: 50, HourlyRate: 150})
	if err != nil {
		t.Fatalf("add dealer failed: %v", err)
	}

	override := 2000.0
	if _, err := svc.Update(ctx, created.ID, dealer.MutationParams{
		Name:           "小王",
		TipSharePct:    50,
		HourlyRate:     150,
		SalaryOverride: &override,
	}); err != nil {
		t.Fatalf("update dealer failed: %v", err)
	}

	var stored model.Dealer
	if err := db.First(&stored, created.ID).Error; err != nil {
		t.Fatalf("load dealer failed: %v", err)
	}
	if stored.SalaryOverride == nil || *stored.SalaryOverride != 2000 {
		t.Fatalf("expected salary override 2000, got %+v", stored.SalaryOverride)
	}
}
