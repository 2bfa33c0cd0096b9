package bourse

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cockroachdb/apd"
)

const (
	// MinQty is the smallest order quantity accepted at intake.
	MinQty = 1

	// TimeLayout is the placement time format - wall clock time of day, minute granularity.
	TimeLayout = "15:04"
)

var (
	ErrInvalidQty  = errors.New("invalid quantity provided")
	ErrInvalidSide = errors.New("invalid order side")
)

type OrderSide byte

const (
	SideBuy OrderSide = iota
	SideSell
)

func (s OrderSide) String() string {
	if s == SideBuy {
		return "BUY"
	}
	return "SELL"
}

// Parse a case-insensitive side token ("buy"/"sell").
func ParseOrderSide(token string) (OrderSide, error) {
	switch strings.ToUpper(token) {
	case "BUY":
		return SideBuy, nil
	case "SELL":
		return SideSell, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidSide, token)
}

// Order is a single limit order. All fields except Qty are fixed at creation.
// Qty is the remaining quantity - it only ever decreases as fills occur, and
// an order with Qty 0 stays in its book but can no longer match.
type Order struct {
	ID         string
	Instrument string
	Side       OrderSide
	Time       time.Time // placement time, time of day only
	Qty        int64
	Price      apd.Decimal // limit price, never mutated
}

func (o *Order) IsFilled() bool {
	return o.Qty == 0
}

// function that compares two orders and returns true if a sorts strictly before b
type LessFunc func(a, b *Order) bool

// Buy side: placement time ascending, ties broken by ID. Orders with equal
// IDs compare as equal - intake relies on that for duplicate detection and
// must never insert blindly, since the container would mask the duplicate.
func buyLess(a, b *Order) bool {
	if a.ID == b.ID {
		return false
	}
	if !a.Time.Equal(b.Time) {
		return a.Time.Before(b.Time)
	}
	return a.ID < b.ID
}

// Sell side: limit price ascending, ties broken by placement time. Equal IDs
// compare as equal, same as the buy side.
func sellLess(a, b *Order) bool {
	if a.ID == b.ID {
		return false
	}
	if cmp := a.Price.Cmp(&b.Price); cmp != 0 {
		return cmp < 0
	}
	return a.Time.Before(b.Time)
}
