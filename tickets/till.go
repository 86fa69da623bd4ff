package tickets

import (
	"github.com/pkg/errors"
)

// Price is the price of a ticket.
const Price = 25

var (
	// ErrInvalidBill is reported for bills other than 25, 50 and 100.
	ErrInvalidBill = errors.New("invalid bill")
	// ErrNoChange is reported if the till cannot give change for a bill.
	ErrNoChange = errors.New("cannot give change")
)

// Till holds the bills available for change. The zero value is an empty
// till.
type Till struct {
	twentyFives int
	fifties     int
}

// Accept sells a ticket to a customer paying with bill. Change is given
// greedily, preferring a 50 over two 25s. If an error is returned, the till
// is unchanged.
func (t *Till) Accept(bill int) error {
	switch bill {
	case 25:
		t.twentyFives++
	case 50:
		if t.twentyFives < 1 {
			return errors.Wrapf(ErrNoChange, "for bill %d", bill)
		}
		t.twentyFives--
		t.fifties++
	case 100:
		switch {
		case t.fifties >= 1 && t.twentyFives >= 1:
			t.fifties--
			t.twentyFives--
		case t.twentyFives >= 3:
			t.twentyFives -= 3
		default:
			return errors.Wrapf(ErrNoChange, "for bill %d", bill)
		}
	default:
		return errors.Wrapf(ErrInvalidBill, "%d", bill)
	}
	return nil
}

// Bills returns the number of 25 and 50 bills in the till.
func (t *Till) Bills() (twentyFives, fifties int) {
	return t.twentyFives, t.fifties
}

// Sell serves the queue in order. It returns the number of customers served.
// If a customer cannot be served, the error tells why, and served is the
// index of that customer within the queue.
func Sell(queue []int) (served int, err error) {
	var till Till
	for i, bill := range queue {
		if err := till.Accept(bill); err != nil {
			tracer().Debugf("customer #%d paying %d: %v", i, bill, err)
			return i, err
		}
	}
	return len(queue), nil
}

// SellTickets returns true if every customer in queue can be sold a ticket.
//
//	SellTickets([]int{25, 25, 50}) => true
//	SellTickets([]int{25, 100})    => false
func SellTickets(queue []int) bool {
	_, err := Sell(queue)
	return err == nil
}
