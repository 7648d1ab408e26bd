package ledger

import (
	"context"
	"strings"
	"time"

	"pokerhost/internal/model"
	appErr "pokerhost/pkg/errors"

	"gorm.io/gorm"
)

// Service records the non-player money events of a game: expenses, rake
// collections, and insurance side-bets.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

type ExpenseParams struct {
	Category    string
	Description string
	Amount      float64
	Host        string
}

func (s *Service) AddExpense(ctx context.Context, gameID int64, params ExpenseParams) (*model.Expense, error) {
	if params.Amount <= 0 {
		return nil, appErr.ErrInvalidAmount
	}
	if err := s.requireActiveGame(ctx, gameID); err != nil {
		return nil, err
	}

	expense := model.Expense{
		GameID:      gameID,
		Category:    strings.TrimSpace(params.Category),
		Description: strings.TrimSpace(params.Description),
		Amount:      params.Amount,
		Host:        strings.TrimSpace(params.Host),
		SpentAt:     time.Now(),
	}
	if err := s.db.WithContext(ctx).Create(&expense).Error; err != nil {
		return nil, err
	}
	return &expense, nil
}

// DeleteExpense removes an expense and reports which game it belonged to.
func (s *Service) DeleteExpense(ctx context.Context, expenseID int64) (int64, error) {
	var expense model.Expense
	if err := s.db.WithContext(ctx).First(&expense, expenseID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return 0, appErr.ErrExpenseNotFound
		}
		return 0, err
	}
	if err := s.db.WithContext(ctx).Delete(&expense).Error; err != nil {
		return 0, err
	}
	return expense.GameID, nil
}

// AddRake records one house cut; only meaningful in rake mode.
func (s *Service) AddRake(ctx context.Context, gameID int64, amount float64) (*model.RakeEntry, error) {
	if amount <= 0 {
		return nil, appErr.ErrInvalidAmount
	}

	game, err := s.loadGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if game.Status == "completed" {
		return nil, appErr.ErrGameCompleted
	}
	if game.Mode != "rake" {
		return nil, appErr.ErrRakeModeRequired
	}

	entry := model.RakeEntry{
		GameID:  gameID,
		Amount:  amount,
		TakenAt: time.Now(),
	}
	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// AddInsurance records a side-bet result. Amount is signed: positive won for
// the house, negative lost. Without explicit partners the game's default
// partner template is copied in. Percentages may not sum to 100; they are
// normalized at settlement time rather than rejected here.
func (s *Service) AddInsurance(ctx context.Context, gameID int64, amount float64, partners []model.InsurancePartner) (*model.Insurance, error) {
	game, err := s.loadGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if game.Status == "completed" {
		return nil, appErr.ErrGameCompleted
	}

	if len(partners) == 0 {
		partners = model.DecodePartners(game.DefaultPartnersJSON)
	}
	if len(partners) == 0 {
		return nil, appErr.ErrInvalidPartners
	}

	insurance := model.Insurance{
		GameID:       gameID,
		Amount:       amount,
		PartnersJSON: model.EncodePartners(partners),
		RecordedAt:   time.Now(),
	}
	if err := s.db.WithContext(ctx).Create(&insurance).Error; err != nil {
		return nil, err
	}
	return &insurance, nil
}

// DeleteInsurance removes an insurance record and reports its game.
func (s *Service) DeleteInsurance(ctx context.Context, insuranceID int64) (int64, error) {
	var insurance model.Insurance
	if err := s.db.WithContext(ctx).First(&insurance, insuranceID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return 0, appErr.ErrInsuranceNotFound
		}
		return 0, err
	}
	if err := s.db.WithContext(ctx).Delete(&insurance).Error; err != nil {
		return 0, err
	}
	return insurance.GameID, nil
}

func (s *Service) loadGame(ctx context.Context, gameID int64) (*model.Game, error) {
	var game model.Game
	if err := s.db.WithContext(ctx).First(&game, gameID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, appErr.ErrGameNotFound
		}
		return nil, err
	}
	return &game, nil
}

func (s *Service) requireActiveGame(ctx context.Context, gameID int64) error {
	game, err := s.loadGame(ctx, gameID)
	if err != nil {
		return err
	}
	if game.Status == "completed" {
		return appErr.ErrGameCompleted
	}
	return nil
}
