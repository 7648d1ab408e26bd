package player

import (
	"context"
	"fmt"
	"strings"
	"time"

	"pokerhost/internal/model"
	appErr "pokerhost/pkg/errors"
	"pokerhost/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

type BuyInParams struct {
	Amount     float64
	RecordedAt *time.Time
}

type CashOutParams struct {
	Amount float64
	Host   string
}

// Add creates a player on their first buy-in. A player with zero buy-in
// entries does not exist.
func (s *Service) Add(ctx context.Context, gameID int64, name string, params BuyInParams) (*model.Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: player name is required", appErr.ErrInvalidGameParams)
	}
	if params.Amount <= 0 {
		return nil, appErr.ErrInvalidAmount
	}

	if err := s.requireActiveGame(ctx, gameID); err != nil {
		return nil, err
	}

	at := time.Now()
	if params.RecordedAt != nil {
		at = *params.RecordedAt
	}

	player := model.Player{
		GameID:  gameID,
		Name:    name,
		Status:  "active",
		BuyInAt: at,
		BuyIns: []model.BuyInEntry{
			{GameID: gameID, Amount: params.Amount, RecordedAt: at},
		},
	}
	if err := s.db.WithContext(ctx).Create(&player).Error; err != nil {
		return nil, err
	}
	return &player, nil
}

func (s *Service) AddBuyIn(ctx context.Context, playerID int64, params BuyInParams) (*model.BuyInEntry, error) {
	if params.Amount <= 0 {
		return nil, appErr.ErrInvalidAmount
	}

	player, err := s.load(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if player.Status == "cashed_out" {
		return nil, appErr.ErrPlayerCashedOut
	}
	if err := s.requireActiveGame(ctx, player.GameID); err != nil {
		return nil, err
	}

	at := time.Now()
	if params.RecordedAt != nil {
		at = *params.RecordedAt
	}

	entry := model.BuyInEntry{
		GameID:     player.GameID,
		PlayerID:   player.ID,
		Amount:     params.Amount,
		RecordedAt: at,
	}
	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *Service) UpdateBuyIn(ctx context.Context, buyInID int64, amount float64) (*model.BuyInEntry, error) {
	if amount <= 0 {
		return nil, appErr.ErrInvalidAmount
	}

	var entry model.BuyInEntry
	if err := s.db.WithContext(ctx).First(&entry, buyInID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, appErr.ErrBuyInNotFound
		}
		return nil, err
	}
	if err := s.requireActiveGame(ctx, entry.GameID); err != nil {
		return nil, err
	}

	entry.Amount = amount
	if err := s.db.WithContext(ctx).Save(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// DeleteBuyIn removes one entry and reports which game it belonged to.
// Deleting a player's last entry removes the player as well: the
// zero-buy-in collapse.
func (s *Service) DeleteBuyIn(ctx context.Context, buyInID int64) (int64, error) {
	var gameID int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var entry model.BuyInEntry
		if err := tx.First(&entry, buyInID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return appErr.ErrBuyInNotFound
			}
			return err
		}

		gameID = entry.GameID

		var game model.Game
		if err := tx.Select("id", "status").First(&game, entry.GameID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return appErr.ErrGameNotFound
			}
			return err
		}
		if game.Status == "completed" {
			return appErr.ErrGameCompleted
		}

		if err := tx.Delete(&entry).Error; err != nil {
			return err
		}

		var remaining int64
		if err := tx.Model(&model.BuyInEntry{}).
			Where("player_id = ?", entry.PlayerID).
			Count(&remaining).Error; err != nil {
			return err
		}
		if remaining == 0 {
			logger.Log.Info("last buy-in deleted, removing player",
				zap.Int64("playerID", entry.PlayerID))
			return tx.Delete(&model.Player{}, entry.PlayerID).Error
		}
		return nil
	})
	return gameID, err
}

func (s *Service) CashOut(ctx context.Context, playerID int64, params CashOutParams) (*model.Player, error) {
	if params.Amount < 0 {
		return nil, appErr.ErrInvalidAmount
	}

	player, err := s.load(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if player.Status == "cashed_out" {
		return nil, appErr.ErrPlayerCashedOut
	}
	if err := s.requireActiveGame(ctx, player.GameID); err != nil {
		return nil, err
	}

	now := time.Now()
	player.Status = "cashed_out"
	player.CashOutAt = &now
	player.CashOutAmount = &params.Amount
	player.CashOutHost = strings.TrimSpace(params.Host)

	if err := s.db.WithContext(ctx).Save(player).Error; err != nil {
		return nil, err
	}
	return player, nil
}

// SetCustomEntryFee sets or clears (nil) the per-player fee override.
func (s *Service) SetCustomEntryFee(ctx context.Context, playerID int64, fee *float64) (*model.Player, error) {
	if fee != nil && *fee < 0 {
		return nil, appErr.ErrInvalidAmount
	}

	player, err := s.load(ctx, playerID)
	if err != nil {
		return nil, err
	}

	player.CustomEntryFee = fee
	// Select forces the nil write when clearing the override.
	if err := s.db.WithContext(ctx).Model(player).
		Select("custom_entry_fee").
		Updates(map[string]interface{}{"custom_entry_fee": fee}).Error; err != nil {
		return nil, err
	}
	return player, nil
}

// SetEntryFeeCollected tracks collection, not calculation.
func (s *Service) SetEntryFeeCollected(ctx context.Context, playerID int64, collected bool) (*model.Player, error) {
	player, err := s.load(ctx, playerID)
	if err != nil {
		return nil, err
	}

	player.EntryFeeCollected = collected
	if err := s.db.WithContext(ctx).Model(player).
		Update("entry_fee_collected", collected).Error; err != nil {
		return nil, err
	}
	return player, nil
}

func (s *Service) load(ctx context.Context, playerID int64) (*model.Player, error) {
	var player model.Player
	err := s.db.WithContext(ctx).Preload("BuyIns").First(&player, playerID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, appErr.ErrPlayerNotFound
		}
		return nil, err
	}
	return &player, nil
}

func (s *Service) requireActiveGame(ctx context.Context, gameID int64) error {
	var game model.Game
	if err := s.db.WithContext(ctx).Select("id", "status").First(&game, gameID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return appErr.ErrGameNotFound
		}
		return err
	}
	if game.Status == "completed" {
		return appErr.ErrGameCompleted
	}
	return nil
}
