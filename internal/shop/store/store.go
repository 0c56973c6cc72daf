// Package store provides the catalog sources the shop is constructed from.
package store

import (
	"context"
	"fmt"

	shoperrors "github.com/abgdnv/toolshop/internal/shop/errors"
	"github.com/abgdnv/toolshop/internal/shop/model"
)

// Catalog is the initial set of records the shop starts with.
type Catalog struct {
	Items     []*model.Item
	Suppliers []*model.Supplier
	Customers []*model.Customer
}

// CatalogStore is an interface for catalog storage.
// It abstracts the underlying source, allowing for different implementations (e.g., seed file, database).
type CatalogStore interface {
	// Load reads the whole catalog.
	// Returns ErrInvalidCatalog if the records break the catalog invariants.
	Load(ctx context.Context) (*Catalog, error)
}

// Check verifies the invariants every catalog must hold: unique IDs per record kind,
// non-negative quantities and prices, and item suppliers that exist.
func (c *Catalog) Check() error {
	supplierIDs := make(map[int]struct{}, len(c.Suppliers))
	for _, s := range c.Suppliers {
		if _, dup := supplierIDs[s.ID]; dup {
			return fmt.Errorf("duplicate supplier id %d: %w", s.ID, shoperrors.ErrInvalidCatalog)
		}
		supplierIDs[s.ID] = struct{}{}
	}

	itemIDs := make(map[int]struct{}, len(c.Items))
	for _, item := range c.Items {
		if _, dup := itemIDs[item.ID]; dup {
			return fmt.Errorf("duplicate item id %d: %w", item.ID, shoperrors.ErrInvalidCatalog)
		}
		itemIDs[item.ID] = struct{}{}
		if item.Quantity < 0 {
			return fmt.Errorf("item %d has negative quantity %d: %w", item.ID, item.Quantity, shoperrors.ErrInvalidCatalog)
		}
		if item.Price.IsNegative() {
			return fmt.Errorf("item %d has negative price %s: %w", item.ID, item.Price, shoperrors.ErrInvalidCatalog)
		}
		if item.SupplierID == 0 {
			continue
		}
		if _, ok := supplierIDs[item.SupplierID]; !ok {
			return fmt.Errorf("item %d references unknown supplier %d: %w", item.ID, item.SupplierID, shoperrors.ErrInvalidCatalog)
		}
	}

	customerIDs := make(map[int]struct{}, len(c.Customers))
	for _, cu := range c.Customers {
		if _, dup := customerIDs[cu.ID]; dup {
			return fmt.Errorf("duplicate customer id %d: %w", cu.ID, shoperrors.ErrInvalidCatalog)
		}
		customerIDs[cu.ID] = struct{}{}
	}
	return nil
}
