package store

import (
	"context"
	"fmt"

	"github.com/abgdnv/toolshop/internal/shop/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const (
	findSuppliersQuery = `SELECT id, name, type, address, contact_name FROM suppliers ORDER BY id`
	findItemsQuery     = `SELECT id, name, quantity, price::text, type, supplier_id FROM items ORDER BY id`
	findCustomersQuery = `SELECT id, first_name, last_name, address, postal_code, phone_number, type FROM customers ORDER BY id`
)

// PgStore implements CatalogStore using PostgreSQL as the data store.
type PgStore struct {
	db *pgxpool.Pool
}

// NewPgStore creates a new instance of CatalogStore using a PostgreSQL connection pool.
func NewPgStore(dbp *pgxpool.Pool) *PgStore {
	return &PgStore{db: dbp}
}

// Load reads suppliers, items and customers ordered by ID.
func (p *PgStore) Load(ctx context.Context) (*Catalog, error) {
	suppliers, err := p.findSuppliers(ctx)
	if err != nil {
		return nil, err
	}
	items, err := p.findItems(ctx)
	if err != nil {
		return nil, err
	}
	customers, err := p.findCustomers(ctx)
	if err != nil {
		return nil, err
	}

	catalog := &Catalog{Items: items, Suppliers: suppliers, Customers: customers}
	if err := catalog.Check(); err != nil {
		return nil, err
	}
	return catalog, nil
}

func (p *PgStore) findSuppliers(ctx context.Context) ([]*model.Supplier, error) {
	rows, err := p.db.Query(ctx, findSuppliersQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to find suppliers: %w", err)
	}
	suppliers, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByPos[model.Supplier])
	if err != nil {
		return nil, fmt.Errorf("failed to scan suppliers: %w", err)
	}
	return suppliers, nil
}

func (p *PgStore) findItems(ctx context.Context) ([]*model.Item, error) {
	rows, err := p.db.Query(ctx, findItemsQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to find items: %w", err)
	}
	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*model.Item, error) {
		var item model.Item
		var price string
		var supplierID *int
		if err := row.Scan(&item.ID, &item.Name, &item.Quantity, &price, &item.Type, &supplierID); err != nil {
			return nil, err
		}
		if supplierID != nil {
			item.SupplierID = *supplierID
		}
		parsed, err := decimal.NewFromString(price)
		if err != nil {
			return nil, fmt.Errorf("item %d has invalid price %q: %w", item.ID, price, err)
		}
		item.Price = parsed
		return &item, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan items: %w", err)
	}
	return items, nil
}

func (p *PgStore) findCustomers(ctx context.Context) ([]*model.Customer, error) {
	rows, err := p.db.Query(ctx, findCustomersQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to find customers: %w", err)
	}
	customers, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByPos[model.Customer])
	if err != nil {
		return nil, fmt.Errorf("failed to scan customers: %w", err)
	}
	return customers, nil
}
