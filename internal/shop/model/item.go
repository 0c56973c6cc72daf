// Package model holds the shop's records: items, orders, suppliers and customers.
package model

import (
	"fmt"
	"log/slog"

	shoperrors "github.com/abgdnv/toolshop/internal/shop/errors"
	"github.com/shopspring/decimal"
)

// Item is a type of tool sold by the shop.
// Quantity never goes below zero; it is only lowered through DecreaseQuantity.
type Item struct {
	ID         int
	Name       string
	Quantity   int
	Price      decimal.Decimal
	Type       string
	SupplierID int
}

// DecreaseQuantity removes n units from stock and returns the updated quantity.
// Returns ErrInvalidQuantity for a negative n and ErrInsufficientQuantity when n exceeds the stock.
func (i *Item) DecreaseQuantity(n int) (int, error) {
	if n < 0 {
		return i.Quantity, fmt.Errorf("cannot decrease %q by %d: %w", i.Name, n, shoperrors.ErrInvalidQuantity)
	}
	if i.Quantity-n < 0 {
		return i.Quantity, fmt.Errorf("cannot decrease %q by %d (current quantity %d): %w",
			i.Name, n, i.Quantity, shoperrors.ErrInsufficientQuantity)
	}
	i.Quantity -= n
	return i.Quantity, nil
}

// GenerateOrderLine creates a new order line requesting n units of the item.
func (i *Item) GenerateOrderLine(n int) *OrderLine {
	slog.Info("New order line was made", "item_id", i.ID, "item_name", i.Name, "quantity", n)
	return &OrderLine{Item: i, Quantity: n}
}

func (i *Item) String() string {
	return fmt.Sprintf("Item - ID: %d, Name: %s, Quantity: %d, Price: %s, Type: %s",
		i.ID, i.Name, i.Quantity, i.Price.StringFixed(2), i.Type)
}
