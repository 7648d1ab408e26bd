package model

import (
	"time"

	"gorm.io/datatypes"
)

// 2.1 Game & Hosts

type Game struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"`
	Name          string `gorm:"size:128"`
	Mode          string `gorm:"default:rake;not null"` // rake/no_rake
	EntryFeeMode  string // fixed/hourly, meaningful in no_rake mode
	FixedEntryFee float64
	HourlyRate    float64
	SmallBlind    float64
	BigBlind      float64
	Status        string `gorm:"default:active;not null"` // active/completed
	StartedAt     time.Time
	EndedAt       *time.Time

	// HostsJSON stores the host list: [{"name":..,"shareRatio":..}], with
	// legacy plain-string entries ["A","B"] still accepted on decode.
	HostsJSON datatypes.JSON `gorm:"type:jsonb"`

	// DefaultPartnersJSON is the partner template copied onto new
	// insurance records when the caller supplies none.
	DefaultPartnersJSON datatypes.JSON `gorm:"type:jsonb"`

	Players    []Player    `gorm:"constraint:OnDelete:CASCADE"`
	BuyIns     []BuyInEntry `gorm:"constraint:OnDelete:CASCADE"`
	Dealers    []Dealer    `gorm:"constraint:OnDelete:CASCADE"`
	Expenses   []Expense   `gorm:"constraint:OnDelete:CASCADE"`
	Rakes      []RakeEntry `gorm:"constraint:OnDelete:CASCADE"`
	Insurances []Insurance `gorm:"constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// 2.2 Players & buy-ins

type Player struct {
	ID     int64 `gorm:"primaryKey;autoIncrement"`
	GameID int64 `gorm:"index;not null"`
	Name   string `gorm:"size:64;not null"`
	Status string `gorm:"default:active;not null"` // active/cashed_out

	BuyInAt       time.Time
	CashOutAt     *time.Time
	CashOutAmount *float64
	CashOutHost   string `gorm:"size:64"` // host who processed the cash-out

	// CustomEntryFee overrides the computed fee when present.
	CustomEntryFee    *float64
	EntryFeeCollected bool

	BuyIns []BuyInEntry `gorm:"constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TotalBuyIn is the invariant sum over the loaded buy-in entries.
func (p *Player) TotalBuyIn() float64 {
	var total float64
	for _, b := range p.BuyIns {
		total += b.Amount
	}
	return total
}

// Profit is -buyIn while active, cashOutAmount-buyIn once cashed out.
func (p *Player) Profit() float64 {
	buyIn := p.TotalBuyIn()
	if p.Status == "cashed_out" && p.CashOutAmount != nil {
		return *p.CashOutAmount - buyIn
	}
	return -buyIn
}

type BuyInEntry struct {
	ID         int64 `gorm:"primaryKey;autoIncrement"`
	GameID     int64 `gorm:"index;not null"`
	PlayerID   int64 `gorm:"index;not null"`
	Amount     float64
	RecordedAt time.Time
}

// 2.3 Dealers

type Dealer struct {
	ID     int64 `gorm:"primaryKey;autoIncrement"`
	GameID int64 `gorm:"index;not null"`
	Name   string `gorm:"size:64;not null"`
	Status string `gorm:"default:working;not null"` // working/off_duty

	TipSharePct int // percent of tip pool owed to the dealer: 50 or 100
	HourlyRate  float64
	WorkHours   float64 // derived from clock times or entered manually
	StartTime   string  `gorm:"size:8"` // "HH:MM"
	EndTime     string  `gorm:"size:8"`
	TotalTips   float64

	// SalaryOverride is authoritative over the computed formula when > 0.
	SalaryOverride *float64

	// Host financially responsible for this dealer's pay.
	Host string `gorm:"size:64"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// 2.4 Ledger entries

type Expense struct {
	ID          int64 `gorm:"primaryKey;autoIncrement"`
	GameID      int64 `gorm:"index;not null"`
	Category    string `gorm:"size:64"`
	Description string `gorm:"size:255"`
	Amount      float64
	Host        string `gorm:"size:64"` // who paid
	SpentAt     time.Time
}

type RakeEntry struct {
	ID      int64 `gorm:"primaryKey;autoIncrement"`
	GameID  int64 `gorm:"index;not null"`
	Amount  float64
	TakenAt time.Time
}

type Insurance struct {
	ID     int64 `gorm:"primaryKey;autoIncrement"`
	GameID int64 `gorm:"index;not null"`

	// Amount is signed: positive means the side-bet won money for the
	// house, negative means it lost.
	Amount       float64
	PartnersJSON datatypes.JSON `gorm:"type:jsonb"`
	RecordedAt   time.Time
}
