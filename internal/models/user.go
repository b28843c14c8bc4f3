package models

import "time"

// User represents a client account.
type User struct {
	UserID       string    `json:"user_id" badgerhold:"key"`
	Name         string    `json:"name"`
	Mobile       string    `json:"mobile"` // unique across all users
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"` // "client" or "advisor"
	CreatedAt    time.Time `json:"created_at"`
}

// Investment represents one holding recorded for a user. Identifier is the
// mutual fund scheme code or the stock ticker symbol, depending on
// InstrumentType.
type Investment struct {
	InvestmentID   string         `json:"investment_id" badgerhold:"key"`
	UserID         string         `json:"user_id"`
	InstrumentType InstrumentType `json:"instrument_type"`
	InstrumentName string         `json:"instrument_name"`
	Identifier     string         `json:"identifier"`
	InvestedAmount float64        `json:"invested_amount"`
	DateAdded      time.Time      `json:"date_added"`
}

// Holding is the narrow tuple the analytics engine consumes. The engine does
// not own user or investment records; callers project them down to this.
type Holding struct {
	InstrumentType InstrumentType `json:"instrument_type"`
	Identifier     string         `json:"identifier"`
	InvestedAmount float64        `json:"invested_amount"`
}

// ToHolding projects an Investment down to the engine's input tuple.
func (inv Investment) ToHolding() Holding {
	return Holding{
		InstrumentType: inv.InstrumentType,
		Identifier:     inv.Identifier,
		InvestedAmount: inv.InvestedAmount,
	}
}
