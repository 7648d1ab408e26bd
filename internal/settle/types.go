// Package settle is the pure settlement engine. Every function here is a
// referentially transparent computation over an explicit Snapshot value:
// no database, cache, or ambient state is touched, so results can be
// recomputed from the same snapshot on any goroutine.
package settle

import "time"

// Epsilon absorbs floating-point and rounding drift. Differences below it
// are treated as settled; imbalances above it are reported, never fatal.
const Epsilon = 0.01

type GameMode string

const (
	ModeRake   GameMode = "rake"
	ModeNoRake GameMode = "no_rake"
)

type EntryFeeMode string

const (
	EntryFeeFixed  EntryFeeMode = "fixed"
	EntryFeeHourly EntryFeeMode = "hourly"
)

// Snapshot is the engine's only input: a completed-or-in-progress game's
// recorded events, already normalized by the caller.
type Snapshot struct {
	Mode          GameMode
	EntryFeeMode  EntryFeeMode
	FixedEntryFee float64
	HourlyRate    float64

	Hosts      []Host
	Players    []Player
	Dealers    []Dealer
	Expenses   []Expense
	Rakes      []float64
	Insurances []Insurance
}

type Host struct {
	Name       string
	ShareRatio float64 // fraction of net income entitled to this host
}

type Player struct {
	Name      string
	BuyIn     float64 // sum of buy-in entries
	Profit    float64 // -BuyIn while active, cashOut-BuyIn once cashed out
	CashedOut bool

	BuyInAt     time.Time
	CashOutAt   *time.Time
	CashOutHost string // host who processed the cash-out, may be empty

	// CustomEntryFee overrides the computed fee verbatim when present.
	CustomEntryFee *float64
}

type Dealer struct {
	Name        string
	TipSharePct float64 // 50 or 100
	HourlyRate  float64
	WorkHours   float64
	TotalTips   float64
	Host        string // host responsible for this dealer's pay, may be empty

	// SalaryOverride is authoritative over the formula when present and > 0.
	SalaryOverride *float64
}

type Expense struct {
	Category    string
	Description string
	Amount      float64
	Host        string // who paid, may be empty
}

type Insurance struct {
	Amount   float64 // signed: positive = side-bet won for the house
	Partners []Partner
}

type Partner struct {
	Name       string
	Percentage float64 // should sum to 100 across a record, normalized if not
}

// Summary is the game-level reduction of a snapshot.
type Summary struct {
	TotalBuyIn        float64 `json:"totalBuyIn"`
	TotalCashOut      float64 `json:"totalCashOut"`
	TotalRake         float64 `json:"totalRake"`
	TotalEntryFee     float64 `json:"totalEntryFee"`
	TotalTips         float64 `json:"totalTips"`
	TotalExpenses     float64 `json:"totalExpenses"`
	TotalDealerSalary float64 `json:"totalDealerSalary"`
	InsuranceProfit   float64 `json:"insuranceProfit"`
	Revenue           float64 `json:"revenue"`
	NetIncome         float64 `json:"netIncome"`
	ActualReceipts    float64 `json:"actualReceipts"`

	// Difference is ActualReceipts-NetIncome, surfaced for operator review.
	// Imbalance is a diagnostic, not an error.
	Difference float64 `json:"difference"`
	Balanced   bool    `json:"balanced"`

	// PendingEntryFees counts players whose hourly fee is not yet
	// computable (missing cash-out time). Distinct from a zero fee.
	PendingEntryFees int `json:"pendingEntryFees"`
}

// Attribution distributes game-level aggregates across hosts by name.
type Attribution struct {
	ProfitByHost  map[string]float64
	ExpenseByHost map[string]float64
	SalaryByHost  map[string]float64
}

// HostPosition is one host's computed financial position.
// TransferAmount > 0 means the host collected more than its entitled share
// and owes the surplus; < 0 means it is owed the deficit.
type HostPosition struct {
	Name           string  `json:"name"`
	ShareRatio     float64 `json:"shareRatio"`
	Collected      float64 `json:"collected"`
	Cost           float64 `json:"cost"`
	DealerSalary   float64 `json:"dealerSalary"`
	ShareAmount    float64 `json:"shareAmount"`
	TransferAmount float64 `json:"transferAmount"`
}

// Transfer is one point-to-point payment instruction.
type Transfer struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Amount float64 `json:"amount"`
}
