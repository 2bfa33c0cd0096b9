package bourse

import (
	"github.com/igrmk/treemap/v2"
)

// OrderSet holds all orders of one side of one instrument's book, sorted by
// the side's comparator. It does no validation of its own - duplicate
// prevention is entirely the caller's responsibility, because equal-ID
// orders compare as equal and a blind Add would silently swallow the
// duplicate.
type OrderSet struct {
	tree *treemap.TreeMap[*Order, struct{}]
}

func NewOrderSet(less LessFunc) *OrderSet {
	return &OrderSet{tree: treemap.NewWithKeyCompare[*Order, struct{}](less)}
}

// Create an empty buy side - earliest placed order first.
func NewBuyOrderSet() *OrderSet {
	return NewOrderSet(buyLess)
}

// Create an empty sell side - cheapest ask first.
func NewSellOrderSet() *OrderSet {
	return NewOrderSet(sellLess)
}

func (o *OrderSet) Add(order *Order) {
	o.tree.Set(order, struct{}{})
}

// Contains reports whether an order equal to the candidate under the side's
// comparator (i.e. with the same ID) is already present.
func (o *OrderSet) Contains(order *Order) bool {
	return o.tree.Contains(order)
}

func (o *OrderSet) Len() int {
	return o.tree.Len()
}

// Iterator walks orders in the side's matching priority.
func (o *OrderSet) Iterator() treemap.ForwardIterator[*Order, struct{}] {
	return o.tree.Iterator()
}

// Orders returns a snapshot slice in matching priority.
func (o *OrderSet) Orders() []*Order {
	orders := make([]*Order, 0, o.tree.Len())
	for iter := o.tree.Iterator(); iter.Valid(); iter.Next() {
		orders = append(orders, iter.Key())
	}
	return orders
}
