package dealer

import (
	"context"
	"fmt"
	"strings"

	"pokerhost/internal/model"
	"pokerhost/internal/settle"
	appErr "pokerhost/pkg/errors"
	"pokerhost/pkg/utils/clock"

	"gorm.io/gorm"
)

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

type MutationParams struct {
	Name           string
	TipSharePct    int
	HourlyRate     float64
	TotalTips      float64
	Host           string
	SalaryOverride *float64
	WorkHours      *float64 // manual entry; clock times win when both set later
}

func (s *Service) Add(ctx context.Context, gameID int64, params MutationParams) (*model.Dealer, error) {
	if err := validate(params); err != nil {
		return nil, err
	}
	if err := s.requireActiveGame(ctx, gameID); err != nil {
		return nil, err
	}

	dealer := model.Dealer{
		GameID:         gameID,
		Name:           strings.TrimSpace(params.Name),
		Status:         "working",
		TipSharePct:    params.TipSharePct,
		HourlyRate:     params.HourlyRate,
		TotalTips:      params.TotalTips,
		Host:           strings.TrimSpace(params.Host),
		SalaryOverride: params.SalaryOverride,
	}
	if params.WorkHours != nil {
		dealer.WorkHours = *params.WorkHours
	}
	if err := s.db.WithContext(ctx).Create(&dealer).Error; err != nil {
		return nil, err
	}
	return &dealer, nil
}

func (s *Service) Update(ctx context.Context, dealerID int64, params MutationParams) (*model.Dealer, error) {
	if err := validate(params); err != nil {
		return nil, err
	}

	dealer, err := s.load(ctx, dealerID)
	if err != nil {
		return nil, err
	}
	if err := s.requireActiveGame(ctx, dealer.GameID); err != nil {
		return nil, err
	}

	dealer.Name = strings.TrimSpace(params.Name)
	dealer.TipSharePct = params.TipSharePct
	dealer.HourlyRate = params.HourlyRate
	dealer.TotalTips = params.TotalTips
	dealer.Host = strings.TrimSpace(params.Host)
	dealer.SalaryOverride = params.SalaryOverride
	if params.WorkHours != nil {
		dealer.WorkHours = *params.WorkHours
	}

	if err := s.db.WithContext(ctx).Save(dealer).Error; err != nil {
		return nil, err
	}
	return dealer, nil
}

// ClockOut records the shift's clock times and derives work hours, rounded
// up to the started half hour. Accepts "14:00" or "1400" style input.
func (s *Service) ClockOut(ctx context.Context, dealerID int64, start, end string) (*model.Dealer, error) {
	normStart, ok := clock.Normalize(start)
	if !ok {
		return nil, fmt.Errorf("%w: %q", appErr.ErrInvalidClockTime, start)
	}
	normEnd, ok := clock.Normalize(end)
	if !ok {
		return nil, fmt.Errorf("%w: %q", appErr.ErrInvalidClockTime, end)
	}

	dealer, err := s.load(ctx, dealerID)
	if err != nil {
		return nil, err
	}
	if err := s.requireActiveGame(ctx, dealer.GameID); err != nil {
		return nil, err
	}

	dealer.StartTime = normStart
	dealer.EndTime = normEnd
	dealer.WorkHours = settle.WorkHours(normStart, normEnd)
	dealer.Status = "off_duty"

	if err := s.db.WithContext(ctx).Save(dealer).Error; err != nil {
		return nil, err
	}
	return dealer, nil
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

func (s *Service) load(ctx context.Context, dealerID int64) (*model.Dealer, error) {
	var dealer model.Dealer
	if err := s.db.WithContext(ctx).First(&dealer, dealerID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, appErr.ErrDealerNotFound
		}
		return nil, err
	}
	return &dealer, nil
}

func validate(params MutationParams) error {
	if strings.TrimSpace(params.Name) == "" {
		return fmt.Errorf("%w: dealer name is required", appErr.ErrInvalidGameParams)
	}
	if params.TipSharePct != 50 && params.TipSharePct != 100 {
		return fmt.Errorf("%w: tip share must be 50 or 100", appErr.ErrInvalidGameParams)
	}
	if params.HourlyRate < 0 || params.TotalTips < 0 {
		return appErr.ErrInvalidAmount
	}
	if params.WorkHours != nil && *params.WorkHours < 0 {
		return appErr.ErrInvalidAmount
	}
	return nil
}
