package errors

import "errors"

var (
	ErrGameNotFound      = errors.New("game not found")
	ErrGameCompleted     = errors.New("game already completed")
	ErrPlayerNotFound    = errors.New("player not found")
	ErrPlayerCashedOut   = errors.New("player already cashed out")
	ErrBuyInNotFound     = errors.New("buy-in entry not found")
	ErrDealerNotFound    = errors.New("dealer not found")
	ErrExpenseNotFound   = errors.New("expense not found")
	ErrInsuranceNotFound = errors.New("insurance record not found")

	ErrInvalidAmount     = errors.New("invalid amount")
	ErrInvalidHosts      = errors.New("invalid host list")
	ErrInvalidPartners   = errors.New("invalid insurance partners")
	ErrRakeModeRequired  = errors.New("game is not in rake mode")
	ErrInvalidClockTime  = errors.New("invalid clock time")
	ErrInvalidGameParams = errors.New("invalid game parameters")
)
