package bourse

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/apd"
)

var ErrBadOrderLine = errors.New("malformed order line")

// ParseOrder parses a single order line in the format
//
//	<order-id> <HH:mm> <instrument> <buy/sell> <qty> <price>
//
// Fields are whitespace delimited; surrounding and internal whitespace is
// tolerated and the side token is case-insensitive.
func ParseOrder(line string) (*Order, error) {
	fields := strings.Fields(line)
	if len(fields) != 6 {
		return nil, fmt.Errorf("%w: expected 6 fields, got %d", ErrBadOrderLine, len(fields))
	}

	placed, err := time.Parse(TimeLayout, fields[1])
	if err != nil {
		return nil, fmt.Errorf("%w: bad time %q: %v", ErrBadOrderLine, fields[1], err)
	}
	side, err := ParseOrderSide(fields[3])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadOrderLine, err)
	}
	qty, err := strconv.ParseInt(fields[4], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: bad quantity %q: %v", ErrBadOrderLine, fields[4], err)
	}
	if qty < MinQty {
		return nil, fmt.Errorf("%w: %v", ErrBadOrderLine, ErrInvalidQty)
	}
	price, _, err := apd.NewFromString(fields[5])
	if err != nil {
		return nil, fmt.Errorf("%w: bad price %q: %v", ErrBadOrderLine, fields[5], err)
	}

	return &Order{
		ID:         fields[0],
		Instrument: fields[2],
		Side:       side,
		Time:       placed,
		Qty:        qty,
		Price:      *price,
	}, nil
}
