package bourse

import (
	"fmt"

	"github.com/cockroachdb/apd"
	"github.com/google/uuid"
)

// Entry records one execution between two opposed matched orders. Party is
// the resting sell order, CounterParty the buy order it matched against;
// the execution price is always the seller's ask. Entries are immutable
// once recorded.
type Entry struct {
	ID           uuid.UUID
	Party        *Order
	CounterParty *Order
	Qty          int64
	Price        apd.Decimal
}

// String renders the conventional report line:
//
//	<party id> <qty> <price, 2 decimals> <counter-party id>
//
// A price that doesn't fit a float64 falls back to its exact decimal form.
func (e Entry) String() string {
	price, err := e.Price.Float64()
	if err != nil {
		return fmt.Sprintf("%s %d %s %s", e.Party.ID, e.Qty, e.Price.String(), e.CounterParty.ID)
	}
	return fmt.Sprintf("%s %d %.2f %s", e.Party.ID, e.Qty, price, e.CounterParty.ID)
}
