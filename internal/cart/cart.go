// Package cart keeps the make-sale cart of one visitor: the ordered sale
// lines and the quantity selector shown on every item card.
package cart

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidQuantity = errors.New("invalid quantity")
	ErrItemNotInCart   = errors.New("item not in cart")
)

// TaxRate is applied to the subtotal for display.
var TaxRate = decimal.NewFromFloat(0.12)

type Line struct {
	ID       string
	Name     string
	Price    decimal.Decimal
	Quantity int
}

func (l Line) Subtotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

type Totals struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// Cart is not safe for concurrent use; Store serialises access per session.
type Cart struct {
	lines   []Line
	pending map[string]int
}

func New() *Cart {
	return &Cart{pending: make(map[string]int)}
}

// Add merges line into the entry with the same id or appends it.
func (c *Cart) Add(line Line) error {
	if line.Quantity <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidQuantity, line.Quantity)
	}
	if i := c.index(line.ID); i >= 0 {
		c.lines[i].Quantity += line.Quantity
		return nil
	}
	c.lines = append(c.lines, line)
	return nil
}

// SetQuantity replaces the quantity of an existing line. Zero removes it.
func (c *Cart) SetQuantity(id string, quantity int) error {
	if quantity < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidQuantity, quantity)
	}
	i := c.index(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrItemNotInCart, id)
	}
	if quantity == 0 {
		c.removeAt(i)
		return nil
	}
	c.lines[i].Quantity = quantity
	return nil
}

// Remove drops the line for id and reports whether it was present.
func (c *Cart) Remove(id string) bool {
	i := c.index(id)
	if i < 0 {
		return false
	}
	c.removeAt(i)
	return true
}

func (c *Cart) Clear() {
	c.lines = nil
}

// Lines returns a copy of the cart lines in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

func (c *Cart) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, l := range c.lines {
		sum = sum.Add(l.Subtotal())
	}
	return sum
}

func (c *Cart) Totals() Totals {
	subtotal := c.Subtotal()
	tax := subtotal.Mul(TaxRate)
	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax),
	}
}

// Increase bumps the pending selector for id and returns the new value.
func (c *Cart) Increase(id string) int {
	c.pending[id]++
	return c.pending[id]
}

// Decrease lowers the pending selector for id, never below zero.
func (c *Cart) Decrease(id string) int {
	if c.pending[id] > 0 {
		c.pending[id]--
	}
	if c.pending[id] == 0 {
		delete(c.pending, id)
		return 0
	}
	return c.pending[id]
}

func (c *Cart) Pending(id string) int {
	return c.pending[id]
}

func (c *Cart) ResetPending(id string) {
	delete(c.pending, id)
}

func (c *Cart) index(id string) int {
	for i, l := range c.lines {
		if l.ID == id {
			return i
		}
	}
	return -1
}

func (c *Cart) removeAt(i int) {
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
}
