package domain

import "errors"

var ErrInvalidQuantity = errors.New("quantity must be positive")

// CartLine is one product-and-quantity pair within the cart. Price is
// captured from the product at the moment it is added.
type CartLine struct {
	ProductID int
	Name      string
	Price     float64
	Quantity  int
}

// CartView is a read snapshot of the cart with its derived figures.
type CartView struct {
	Lines     []CartLine
	Total     float64
	ItemCount int
}

// Cart holds at most one line per product id. Total and item count are
// derived on read, never stored, so they cannot drift from the lines.
type Cart struct {
	lines []CartLine
}

// NewCart builds a cart from restored lines, dropping non-positive
// quantities and merging duplicate product ids.
func NewCart(lines []CartLine) Cart {
	var c Cart
	for _, l := range lines {
		if l.Quantity <= 0 {
			continue
		}
		if i := c.index(l.ProductID); i >= 0 {
			c.lines[i].Quantity += l.Quantity
			continue
		}
		c.lines = append(c.lines, l)
	}
	return c
}

func (c Cart) index(productID int) int {
	for i, l := range c.lines {
		if l.ProductID == productID {
			return i
		}
	}
	return -1
}

// Add inserts a new line or increments an existing one.
func (c *Cart) Add(p Product, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	if i := c.index(p.ID); i >= 0 {
		c.lines[i].Quantity += quantity
		return nil
	}
	c.lines = append(c.lines, CartLine{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Quantity:  quantity,
	})
	return nil
}

// Remove deletes the line for productID. Removing an absent line is a no-op.
func (c *Cart) Remove(productID int) bool {
	i := c.index(productID)
	if i < 0 {
		return false
	}
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
	return true
}

// SetQuantity replaces the line quantity. A quantity of zero or less drops
// the line entirely.
func (c *Cart) SetQuantity(productID, quantity int) {
	if quantity <= 0 {
		c.Remove(productID)
		return
	}
	if i := c.index(productID); i >= 0 {
		c.lines[i].Quantity = quantity
	}
}

func (c *Cart) Clear() {
	c.lines = nil
}

func (c Cart) Lines() []CartLine {
	lines := make([]CartLine, len(c.lines))
	copy(lines, c.lines)
	return lines
}

func (c Cart) Len() int {
	return len(c.lines)
}

func (c Cart) Contains(productID int) bool {
	return c.index(productID) >= 0
}

// Total is the fold of price times quantity over current lines.
func (c Cart) Total() float64 {
	var total float64
	for _, l := range c.lines {
		total += l.Price * float64(l.Quantity)
	}
	return total
}

// View snapshots the cart together with its derived figures.
func (c Cart) View() CartView {
	return CartView{Lines: c.Lines(), Total: c.Total(), ItemCount: c.ItemCount()}
}

// ItemCount is the fold of quantity over current lines.
func (c Cart) ItemCount() int {
	var n int
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}
