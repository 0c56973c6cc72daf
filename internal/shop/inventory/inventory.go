// Package inventory holds the shop's items and the order generated when stock runs low.
package inventory

import (
	"strings"
	"time"

	"github.com/abgdnv/toolshop/internal/shop/model"
	"github.com/google/uuid"
)

const (
	DefaultRestockThreshold = 40
	DefaultRestockTarget    = 50
)

// RestockPolicy decides when an order line is generated for an item.
// An item whose quantity drops below Threshold is ordered back up to Target.
// A zero Threshold disables restocking.
type RestockPolicy struct {
	Threshold int
	Target    int
}

// Option configures an Inventory.
type Option func(*Inventory)

// WithRestockPolicy overrides the default restock policy.
func WithRestockPolicy(p RestockPolicy) Option {
	return func(inv *Inventory) {
		inv.policy = p
	}
}

// WithClock sets the function used to date new orders.
func WithClock(now func() time.Time) Option {
	return func(inv *Inventory) {
		inv.now = now
	}
}

// WithOrderIDs sets the generator used for new order IDs.
func WithOrderIDs(next func() string) Option {
	return func(inv *Inventory) {
		inv.nextOrderID = next
	}
}

// Inventory is the collection of items for sale plus at most one in-flight order.
type Inventory struct {
	items       []*model.Item
	order       *model.Order
	policy      RestockPolicy
	now         func() time.Time
	nextOrderID func() string
}

// New creates an inventory holding items.
func New(items []*model.Item, opts ...Option) *Inventory {
	inv := &Inventory{
		items:       items,
		policy:      RestockPolicy{Threshold: DefaultRestockThreshold, Target: DefaultRestockTarget},
		now:         time.Now,
		nextOrderID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(inv)
	}
	return inv
}

// SearchItemByName returns the first item with the given name (case-sensitive).
func (inv *Inventory) SearchItemByName(name string) (*model.Item, bool) {
	for _, item := range inv.items {
		if item.Name == name {
			return item, true
		}
	}
	return nil, false
}

// SearchItemByID returns the first item with the given ID.
func (inv *Inventory) SearchItemByID(id int) (*model.Item, bool) {
	for _, item := range inv.items {
		if item.ID == id {
			return item, true
		}
	}
	return nil, false
}

// ManageItem removes quantity units of item from stock.
// When the remaining stock falls below the restock threshold, an order line is generated
// (or the existing line for the item is raised) and returned.
func (inv *Inventory) ManageItem(item *model.Item, quantity int) (*model.OrderLine, error) {
	if _, err := item.DecreaseQuantity(quantity); err != nil {
		return nil, err
	}
	return inv.restock(item), nil
}

// Order returns the current order, if one was generated.
func (inv *Inventory) Order() (*model.Order, bool) {
	return inv.order, inv.order != nil
}

func (inv *Inventory) restock(item *model.Item) *model.OrderLine {
	if inv.policy.Threshold <= 0 || item.Quantity >= inv.policy.Threshold {
		return nil
	}
	toOrder := inv.policy.Target - item.Quantity
	if toOrder <= 0 {
		return nil
	}

	if inv.order == nil {
		inv.order = model.NewOrder(inv.nextOrderID(), inv.now())
	}
	if line, ok := inv.order.LineFor(item.ID); ok {
		line.Quantity = toOrder
		return line
	}
	line := item.GenerateOrderLine(toOrder)
	inv.order.AddLine(line)
	return line
}

func (inv *Inventory) String() string {
	if len(inv.items) == 0 {
		return "No items in inventory."
	}
	lines := make([]string, 0, len(inv.items))
	for _, item := range inv.items {
		lines = append(lines, item.String())
	}
	return strings.Join(lines, "\n")
}
