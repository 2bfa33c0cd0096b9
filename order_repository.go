package bourse

// OrderRepository persists order state as it changes. The matching core
// never depends on reads from it.
type OrderRepository interface {
	Save(order *Order) error
	GetByID(id string) (*Order, error)
}

var NOPOrderRepository = &nopOrderRepository{}

type nopOrderRepository struct {
}

func (n *nopOrderRepository) Save(order *Order) error {
	return nil
}

func (n *nopOrderRepository) GetByID(id string) (*Order, error) {
	return nil, nil
}
