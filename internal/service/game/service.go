package game

import (
	"context"
	"fmt"
	"strings"
	"time"

	"pokerhost/internal/model"
	appErr "pokerhost/pkg/errors"

	"gorm.io/gorm"
)

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

type ListResult struct {
	Items []model.Game
	Total int64
}

type MutationParams struct {
	Name            string
	Mode            string
	EntryFeeMode    string
	FixedEntryFee   float64
	HourlyRate      float64
	SmallBlind      float64
	BigBlind        float64
	Hosts           []model.HostShare
	DefaultPartners []model.InsurancePartner
	StartedAt       *time.Time
}

func (s *Service) Create(ctx context.Context, params MutationParams) (*model.Game, error) {
	mode := strings.ToLower(strings.TrimSpace(params.Mode))
	if mode == "" {
		mode = "rake"
	}
	if mode != "rake" && mode != "no_rake" {
		return nil, fmt.Errorf("%w: mode must be rake or no_rake", appErr.ErrInvalidGameParams)
	}

	feeMode := strings.ToLower(strings.TrimSpace(params.EntryFeeMode))
	if feeMode != "" && feeMode != "fixed" && feeMode != "hourly" {
		return nil, fmt.Errorf("%w: entryFeeMode must be fixed or hourly", appErr.ErrInvalidGameParams)
	}
	if params.FixedEntryFee < 0 || params.HourlyRate < 0 {
		return nil, fmt.Errorf("%w: fees must not be negative", appErr.ErrInvalidGameParams)
	}

	startedAt := time.Now()
	if params.StartedAt != nil {
		startedAt = *params.StartedAt
	}

	game := model.Game{
		Name:                strings.TrimSpace(params.Name),
		Mode:                mode,
		EntryFeeMode:        feeMode,
		FixedEntryFee:       params.FixedEntryFee,
		HourlyRate:          params.HourlyRate,
		SmallBlind:          params.SmallBlind,
		BigBlind:            params.BigBlind,
		Status:              "active",
		StartedAt:           startedAt,
		HostsJSON:           model.EncodeHosts(params.Hosts),
		DefaultPartnersJSON: model.EncodePartners(params.DefaultPartners),
	}
	if err := s.db.WithContext(ctx).Create(&game).Error; err != nil {
		return nil, err
	}
	return &game, nil
}

func (s *Service) List(ctx context.Context, page, size int) (*ListResult, error) {
	if page < 1 {
		page = 1
	}
	if size <= 0 {
		size = 20
	}
	if size > 100 {
		size = 100
	}

	var total int64
	if err := s.db.WithContext(ctx).
		Model(&model.Game{}).
		Count(&total).Error; err != nil {
		return nil, err
	}

	var items []model.Game
	if total > 0 {
		offset := (page - 1) * size
		if err := s.db.WithContext(ctx).
			Model(&model.Game{}).
			Order("id DESC").
			Limit(size).
			Offset(offset).
			Find(&items).Error; err != nil {
			return nil, err
		}
	}

	return &ListResult{Items: items, Total: total}, nil
}

// Get loads a game with every child collection; this is the snapshot the
// settlement engine consumes.
func (s *Service) Get(ctx context.Context, id int64) (*model.Game, error) {
	var game model.Game
	err := s.db.WithContext(ctx).
		Preload("Players").
		Preload("Players.BuyIns").
		Preload("Dealers").
		Preload("Expenses").
		Preload("Rakes").
		Preload("Insurances").
		First(&game, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, appErr.ErrGameNotFound
		}
		return nil, err
	}
	return &game, nil
}

func (s *Service) End(ctx context.Context, id int64) (*model.Game, error) {
	var game model.Game
	if err := s.db.WithContext(ctx).First(&game, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, appErr.ErrGameNotFound
		}
		return nil, err
	}
	if game.Status == "completed" {
		return nil, appErr.ErrGameCompleted
	}

	now := time.Now()
	game.Status = "completed"
	game.EndedAt = &now
	if err := s.db.WithContext(ctx).Save(&game).Error; err != nil {
		return nil, err
	}
	return &game, nil
}

// UpdateHosts replaces the host list. Ratios may be transiently off while
// editing; they are normalized at computation time, not rejected here.
func (s *Service) UpdateHosts(ctx context.Context, id int64, hosts []model.HostShare) (*model.Game, error) {
	for _, h := range hosts {
		if strings.TrimSpace(h.Name) == "" {
			return nil, fmt.Errorf("%w: host name is required", appErr.ErrInvalidHosts)
		}
	}

	var game model.Game
	if err := s.db.WithContext(ctx).First(&game, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, appErr.ErrGameNotFound
		}
		return nil, err
	}

	game.HostsJSON = model.EncodeHosts(hosts)
	if err := s.db.WithContext(ctx).Save(&game).Error; err != nil {
		return nil, err
	}
	return &game, nil
}

// SetDefaultPartners stores the partner template reused when recording new
// insurance events without explicit partners.
func (s *Service) SetDefaultPartners(ctx context.Context, id int64, partners []model.InsurancePartner) (*model.Game, error) {
	for _, p := range partners {
		if strings.TrimSpace(p.Name) == "" {
			return nil, fmt.Errorf("%w: partner name is required", appErr.ErrInvalidPartners)
		}
	}

	var game model.Game
	if err := s.db.WithContext(ctx).First(&game, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, appErr.ErrGameNotFound
		}
		return nil, err
	}

	game.DefaultPartnersJSON = model.EncodePartners(partners)
	if err := s.db.WithContext(ctx).Save(&game).Error; err != nil {
		return nil, err
	}
	return &game, nil
}
