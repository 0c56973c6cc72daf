package model

import (
	"fmt"
	"strings"
	"time"
)

const orderDateLayout = "January 2, 2006"

// OrderLine is a pending request to restock Quantity units of Item.
// Supplier is nil until the shop links the line with the item's supplier.
type OrderLine struct {
	Item     *Item
	Quantity int
	Supplier *Supplier
}

func (l *OrderLine) String() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Item description: %s\n", l.Item.Name))
	b.WriteString(fmt.Sprintf("Amount ordered: %d\n", l.Quantity))
	if l.Supplier != nil {
		b.WriteString(fmt.Sprintf("Supplier: %s", l.Supplier.Name))
	} else {
		b.WriteString("Supplier: <unknown>")
	}
	return b.String()
}

// Order groups the order lines generated for the shop on a given date.
type Order struct {
	ID    string
	Date  time.Time
	Lines []*OrderLine
}

// NewOrder creates an empty order.
func NewOrder(id string, date time.Time) *Order {
	return &Order{ID: id, Date: date}
}

// AddLine appends a line to the order.
func (o *Order) AddLine(line *OrderLine) {
	o.Lines = append(o.Lines, line)
}

// LineFor returns the order line for the item with the given ID, if any.
func (o *Order) LineFor(itemID int) (*OrderLine, bool) {
	for _, line := range o.Lines {
		if line.Item.ID == itemID {
			return line, true
		}
	}
	return nil, false
}

func (o *Order) String() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Order ID: %s\n", o.ID))
	b.WriteString(fmt.Sprintf("Date Ordered: %s\n", o.Date.Format(orderDateLayout)))
	for _, line := range o.Lines {
		b.WriteString("\n")
		b.WriteString(line.String())
		b.WriteString("\n")
	}
	return b.String()
}
