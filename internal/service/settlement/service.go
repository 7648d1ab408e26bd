package settlement

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"pokerhost/internal/model"
	"pokerhost/internal/settle"
	appErr "pokerhost/pkg/errors"
	"pokerhost/pkg/logger"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const summaryCacheTTL = time.Minute

// Service computes derived settlement views from stored games. All the
// arithmetic lives in the settle package; this layer only loads snapshots,
// caches summaries, and formats reports.
type Service struct {
	db  *gorm.DB
	rdb *redis.Client // optional; nil disables the summary cache
}

func NewService(db *gorm.DB, rdb *redis.Client) *Service {
	return &Service{db: db, rdb: rdb}
}

// Result is the full settlement view for one game. The insurance transfer
// list is displayed alongside the primary one but never merged numerically.
type Result struct {
	Summary            settle.Summary        `json:"summary"`
	Positions          []settle.HostPosition `json:"positions"`
	Transfers          []settle.Transfer     `json:"transfers"`
	InsuranceTransfers []settle.Transfer     `json:"insuranceTransfers"`
	InsuranceNet       map[string]float64    `json:"insuranceNet"`
}

// Summary returns the game-level totals, served from the redis cache when
// fresh. The engine recomputes in microseconds; the cache exists so the
// websocket feed and polling clients don't hammer the database.
func (s *Service) Summary(ctx context.Context, gameID int64) (*settle.Summary, error) {
	if s.rdb != nil {
		if raw, err := s.rdb.Get(ctx, summaryKey(gameID)).Bytes(); err == nil {
			var cached settle.Summary
			if err := json.Unmarshal(raw, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	game, err := s.loadGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	sum := settle.Summarize(BuildSnapshot(game))

	if s.rdb != nil {
		raw, err := json.Marshal(sum)
		if err == nil {
			if err := s.rdb.Set(ctx, summaryKey(gameID), raw, summaryCacheTTL).Err(); err != nil {
				logger.Log.Warn("failed to cache summary",
					zap.Int64("gameID", gameID), zap.Error(err))
			}
		}
	}
	return &sum, nil
}

// Settle computes the complete settlement view: per-host positions, the
// primary transfer list, and the independent insurance pass.
func (s *Service) Settle(ctx context.Context, gameID int64) (*Result, error) {
	game, err := s.loadGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	snapshot := BuildSnapshot(game)
	sum := settle.Summarize(snapshot)
	positions := settle.HostPositions(snapshot, sum)
	transfers := settle.Transfers(positions)
	insTransfers, insNet := settle.InsuranceTransfers(snapshot, positions)

	return &Result{
		Summary:            sum,
		Positions:          positions,
		Transfers:          transfers,
		InsuranceTransfers: insTransfers,
		InsuranceNet:       insNet,
	}, nil
}

// Invalidate drops the cached summary after a mutation.
func (s *Service) Invalidate(ctx context.Context, gameID int64) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, summaryKey(gameID)).Err(); err != nil {
		logger.Log.Warn("failed to invalidate summary cache",
			zap.Int64("gameID", gameID), zap.Error(err))
	}
}

func (s *Service) loadGame(ctx context.Context, gameID int64) (*model.Game, error) {
	var game model.Game
	err := s.db.WithContext(ctx).
		Preload("Players").
		Preload("Players.BuyIns").
		Preload("Dealers").
		Preload("Expenses").
		Preload("Rakes").
		Preload("Insurances").
		First(&game, gameID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, appErr.ErrGameNotFound
		}
		return nil, err
	}
	return &game, nil
}

func summaryKey(gameID int64) string {
	return fmt.Sprintf("pokerhost:summary:%d", gameID)
}

// BuildSnapshot converts a loaded game into the engine's input value. The
// snapshot owns its data; nothing aliases the gorm structs.
func BuildSnapshot(game *model.Game) settle.Snapshot {
	snapshot := settle.Snapshot{
		Mode:          settle.GameMode(game.Mode),
		EntryFeeMode:  settle.EntryFeeMode(game.EntryFeeMode),
		FixedEntryFee: game.FixedEntryFee,
		HourlyRate:    game.HourlyRate,
	}

	for _, h := range model.DecodeHosts(game.HostsJSON) {
		snapshot.Hosts = append(snapshot.Hosts, settle.Host{
			Name:       h.Name,
			ShareRatio: h.ShareRatio,
		})
	}

	for _, p := range game.Players {
		player := settle.Player{
			Name:        p.Name,
			BuyIn:       p.TotalBuyIn(),
			Profit:      p.Profit(),
			CashedOut:   p.Status == "cashed_out",
			BuyInAt:     p.BuyInAt,
			CashOutAt:   p.CashOutAt,
			CashOutHost: p.CashOutHost,
		}
		if p.CustomEntryFee != nil {
			fee := *p.CustomEntryFee
			player.CustomEntryFee = &fee
		}
		snapshot.Players = append(snapshot.Players, player)
	}

	for _, d := range game.Dealers {
		dealer := settle.Dealer{
			Name:        d.Name,
			TipSharePct: float64(d.TipSharePct),
			HourlyRate:  d.HourlyRate,
			WorkHours:   d.WorkHours,
			TotalTips:   d.TotalTips,
			Host:        d.Host,
		}
		if d.SalaryOverride != nil {
			override := *d.SalaryOverride
			dealer.SalaryOverride = &override
		}
		snapshot.Dealers = append(snapshot.Dealers, dealer)
	}

	for _, e := range game.Expenses {
		snapshot.Expenses = append(snapshot.Expenses, settle.Expense{
			Category:    e.Category,
			Description: e.Description,
			Amount:      e.Amount,
			Host:        e.Host,
		})
	}

	for _, r := range game.Rakes {
		snapshot.Rakes = append(snapshot.Rakes, r.Amount)
	}

	for _, ins := range game.Insurances {
		record := settle.Insurance{Amount: ins.Amount}
		for _, p := range model.DecodePartners(ins.PartnersJSON) {
			record.Partners = append(record.Partners, settle.Partner{
				Name:       p.Name,
				Percentage: p.Percentage,
			})
		}
		snapshot.Insurances = append(snapshot.Insurances, record)
	}

	return snapshot
}
