package bourse

import (
	"errors"
	"fmt"
	"log"
	"sort"

	"github.com/google/uuid"
)

var (
	// ErrMissingInstrument aborts an intake batch when an order carries no
	// instrument. Orders inserted earlier in the batch stay inserted.
	ErrMissingInstrument = errors.New("no instrument attached to order")
	// ErrDuplicateOrder aborts an intake batch when the target book side
	// already holds an order with the same ID. Same partial-batch semantics
	// as ErrMissingInstrument.
	ErrDuplicateOrder = errors.New("order is possibly duplicated")
)

// Exchange owns the per-instrument book sides and the transaction log for a
// processing run. It is not safe for concurrent use: intake and matching
// run to completion on the calling goroutine, and Reset isolates
// independent runs.
type Exchange struct {
	buys  map[string]*OrderSet // instrument -> buy side
	sells map[string]*OrderSet // instrument -> sell side

	entryBook *EntryBook

	orderRepo OrderRepository
	entryRepo EntryRepository

	entryCallback EntryCallbackFunc
}

func NewExchange(orderRepo OrderRepository, entryRepo EntryRepository) *Exchange {
	return &Exchange{
		buys:      make(map[string]*OrderSet),
		sells:     make(map[string]*OrderSet),
		entryBook: NewEntryBook(),
		orderRepo: orderRepo,
		entryRepo: entryRepo,
	}
}

// SetEntryCallback registers a callback invoked once per execution, in
// match-discovery order.
func (e *Exchange) SetEntryCallback(cb EntryCallbackFunc) {
	e.entryCallback = cb
}

// bookSide returns the order set for (instrument, side), creating both
// empty sides on the first encounter of an instrument.
func (e *Exchange) bookSide(instrument string, side OrderSide) *OrderSet {
	if _, ok := e.buys[instrument]; !ok {
		e.buys[instrument] = NewBuyOrderSet()
		e.sells[instrument] = NewSellOrderSet()
	}
	if side == SideBuy {
		return e.buys[instrument]
	}
	return e.sells[instrument]
}

// AddOrders inserts a batch of orders into their book sides. Nil entries in
// the batch are skipped. An order without an instrument fails the batch
// with ErrMissingInstrument, a reinserted ID fails it with
// ErrDuplicateOrder; in both cases orders inserted before the offending one
// remain in their books. An empty batch is a no-op.
func (e *Exchange) AddOrders(orders []*Order) error {
	for _, order := range orders {
		if order == nil {
			continue
		}
		if order.Instrument == "" {
			return fmt.Errorf("%w: %s", ErrMissingInstrument, order.ID)
		}
		side := e.bookSide(order.Instrument, order.Side)
		if side.Contains(order) {
			return fmt.Errorf("%w: %s", ErrDuplicateOrder, order.ID)
		}
		side.Add(order)
		if err := e.orderRepo.Save(order); err != nil {
			log.Printf("cannot save order %s to the repo - repository data might be inconsistent", order.ID)
		}
	}
	return nil
}

// return a minimum of two int64s
func min(q1, q2 int64) int64 {
	if q1 <= q2 {
		return q1
	}
	return q2
}

// MatchOrders greedily executes all possible matches, instrument by
// instrument, and returns the full accumulated transaction log (prior
// entries included). For every buy order in time priority it scans the sell
// side in price-time priority and fills whenever the buyer's limit covers
// the seller's ask, at the seller's ask. Matching never fails: empty or
// absent books just produce nothing.
//
// MatchOrders is meant to run once per intake batch. Calling it again
// without new orders re-scans the books and is not guaranteed to be a no-op
// while remaining quantities are still positive.
func (e *Exchange) MatchOrders() []Entry {
	if len(e.buys) == 0 || len(e.sells) == 0 {
		return e.entryBook.Entries()
	}

	instruments := make([]string, 0, len(e.buys))
	for instrument := range e.buys {
		instruments = append(instruments, instrument)
	}
	sort.Strings(instruments) // map order is random, keep runs deterministic

	for _, instrument := range instruments {
		buySide := e.buys[instrument]
		if buySide.Len() == 0 {
			continue
		}
		sellSide, ok := e.sells[instrument]
		if !ok {
			continue
		}
		e.matchInstrument(sellSide, buySide)
	}
	return e.entryBook.Entries()
}

// matchInstrument drains eligible quantity between one instrument's two
// book sides.
func (e *Exchange) matchInstrument(sellSide, buySide *OrderSet) {
	for iter := buySide.Iterator(); iter.Valid(); iter.Next() {
		buy := iter.Key()
		if buy.IsFilled() {
			continue
		}
		for sellIter := sellSide.Iterator(); sellIter.Valid() && !buy.IsFilled(); sellIter.Next() {
			sell := sellIter.Key()
			if sell.IsFilled() {
				continue
			}
			if buy.Price.Cmp(&sell.Price) < 0 {
				continue // buyer won't cover this ask
			}

			qty := min(buy.Qty, sell.Qty)
			buy.Qty -= qty
			sell.Qty -= qty

			entry := Entry{
				ID:           uuid.New(),
				Party:        sell,
				CounterParty: buy,
				Qty:          qty,
				Price:        sell.Price,
			}
			e.entryBook.Append(entry)
			if err := e.entryRepo.Store(entry); err != nil {
				log.Printf("cannot store entry %s to the repo - repository data might be inconsistent", entry.ID)
			}
			if err := e.orderRepo.Save(buy); err != nil {
				log.Printf("cannot save order %s to the repo - repository data might be inconsistent", buy.ID)
			}
			if err := e.orderRepo.Save(sell); err != nil {
				log.Printf("cannot save order %s to the repo - repository data might be inconsistent", sell.ID)
			}
			if e.entryCallback != nil {
				e.entryCallback(entry)
			}
		}
	}
}

// Reset clears every book side and the transaction log, isolating
// independent processing runs.
func (e *Exchange) Reset() {
	e.buys = make(map[string]*OrderSet)
	e.sells = make(map[string]*OrderSet)
	e.entryBook.reset()
}

// Bids returns the instrument's buy side in matching priority.
func (e *Exchange) Bids(instrument string) []*Order {
	if side, ok := e.buys[instrument]; ok {
		return side.Orders()
	}
	return nil
}

// Asks returns the instrument's sell side in matching priority.
func (e *Exchange) Asks(instrument string) []*Order {
	if side, ok := e.sells[instrument]; ok {
		return side.Orders()
	}
	return nil
}

// Instruments lists every known instrument, sorted by symbol.
func (e *Exchange) Instruments() []string {
	instruments := make([]string, 0, len(e.buys))
	for instrument := range e.buys {
		instruments = append(instruments, instrument)
	}
	sort.Strings(instruments)
	return instruments
}

// Entries returns a copy of the accumulated transaction log.
func (e *Exchange) Entries() []Entry {
	return e.entryBook.Entries()
}
