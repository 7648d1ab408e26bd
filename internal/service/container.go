package service

import (
	"pokerhost/internal/service/dealer"
	"pokerhost/internal/service/game"
	"pokerhost/internal/service/ledger"
	"pokerhost/internal/service/player"
	"pokerhost/internal/service/settlement"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	Game       *game.Service
	Player     *player.Service
	Dealer     *dealer.Service
	Ledger     *ledger.Service
	Settlement *settlement.Service
}

func NewContainer(db *gorm.DB, rdb *redis.Client) *Container {
	return &Container{
		Game:       game.NewService(db),
		Player:     player.NewService(db),
		Dealer:     dealer.NewService(db),
		Ledger:     ledger.NewService(db),
		Settlement: settlement.NewService(db, rdb),
	}
}
