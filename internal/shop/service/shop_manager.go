// Package service provides the shop manager, a facade reporting on inventory, suppliers and customers.
package service

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	shoperrors "github.com/abgdnv/toolshop/internal/shop/errors"
	"github.com/abgdnv/toolshop/internal/shop/inventory"
	"github.com/abgdnv/toolshop/internal/shop/model"
)

var _ ShopService = (*ShopManager)(nil)

// ShopService defines the operations exposed by the shop.
// Every result is a human-readable report; not-found and invalid quantity
// conditions are described in the report instead of returned as errors.
type ShopService interface {
	// ListAllItems describes every item in the inventory.
	ListAllItems() string

	// SearchItemByName describes the item with the given name (case-sensitive).
	SearchItemByName(name string) string

	// SearchItemByID describes the item with the given ID.
	SearchItemByID(id int) string

	// GetItemQuantity reports the current quantity of the named item.
	GetItemQuantity(name string) string

	// DecreaseItemQuantity removes quantity units of the named item from stock.
	// The quantity is never allowed to exceed the current stock.
	DecreaseItemQuantity(name string, quantity int) string

	// GetOrder describes the current order.
	GetOrder() string

	// ListAllSuppliers describes every supplier.
	ListAllSuppliers() string

	// SearchSupplierByName describes the supplier with the given name (case-sensitive).
	SearchSupplierByName(name string) string

	// ListAllCustomers describes every customer.
	ListAllCustomers() string

	// SearchCustomerByName describes the customers matching a last or full name.
	SearchCustomerByName(name string) string

	// SearchCustomerByID describes the customer with the given ID.
	SearchCustomerByID(id int) string
}

// ShopManager implements ShopService over an inventory, a supplier list and a customer list.
// Operations are serialized so a single manager can back concurrent transports.
type ShopManager struct {
	mu        sync.Mutex
	inventory *inventory.Inventory
	suppliers *model.SupplierList
	customers *model.CustomerList
}

// NewShopManager creates a new instance of ShopManager.
func NewShopManager(inv *inventory.Inventory, suppliers *model.SupplierList, customers *model.CustomerList) *ShopManager {
	return &ShopManager{
		inventory: inv,
		suppliers: suppliers,
		customers: customers,
	}
}

func (s *ShopManager) ListAllItems() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.inventory.String()
}

func (s *ShopManager) SearchItemByName(name string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.inventory.SearchItemByName(name)
	if !ok {
		return itemNameNotFound(name)
	}
	return item.String()
}

func (s *ShopManager) SearchItemByID(id int) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.inventory.SearchItemByID(id)
	if !ok {
		return fmt.Sprintf("No item found with id '%d'.", id)
	}
	return item.String()
}

func (s *ShopManager) GetItemQuantity(name string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.inventory.SearchItemByName(name)
	if !ok {
		return itemNameNotFound(name)
	}
	return fmt.Sprintf("Item '%s' - Current Quantity: %d", name, item.Quantity)
}

func (s *ShopManager) DecreaseItemQuantity(name string, quantity int) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.inventory.SearchItemByName(name)
	if !ok {
		return itemNameNotFound(name)
	}
	if quantity < 0 {
		return fmt.Sprintf("Item '%s' - Cannot decrease quantity by %d (quantity must not be negative)", name, quantity)
	}
	if quantity > item.Quantity {
		return cannotDecrease(name, quantity, item.Quantity)
	}

	line, err := s.inventory.ManageItem(item, quantity)
	if err != nil {
		if errors.Is(err, shoperrors.ErrInsufficientQuantity) {
			return cannotDecrease(name, quantity, item.Quantity)
		}
		return fmt.Sprintf("Item '%s' - Cannot decrease quantity by %d (%v)", name, quantity, err)
	}
	if line != nil && line.Supplier == nil {
		if supplier, found := s.suppliers.SearchByID(item.SupplierID); found {
			line.Supplier = supplier
		}
	}
	return fmt.Sprintf("Item '%s' - Updated Quantity: %d", name, item.Quantity)
}

func (s *ShopManager) GetOrder() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.inventory.Order()
	if !ok {
		return "No order exists"
	}
	return order.String()
}

func (s *ShopManager) ListAllSuppliers() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.suppliers.String()
}

func (s *ShopManager) SearchSupplierByName(name string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	supplier, ok := s.suppliers.SearchByName(name)
	if !ok {
		return fmt.Sprintf("No supplier found with name '%s'.", name)
	}
	return supplier.String()
}

func (s *ShopManager) ListAllCustomers() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.customers.String()
}

func (s *ShopManager) SearchCustomerByName(name string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := s.customers.SearchByName(name)
	if len(found) == 0 {
		return fmt.Sprintf("No customer found with name '%s'.", name)
	}
	lines := make([]string, 0, len(found))
	for _, c := range found {
		lines = append(lines, c.String())
	}
	return strings.Join(lines, "\n")
}

func (s *ShopManager) SearchCustomerByID(id int) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	customer, ok := s.customers.SearchByID(id)
	if !ok {
		return fmt.Sprintf("No customer found with id '%d'.", id)
	}
	return customer.String()
}

func itemNameNotFound(name string) string {
	return fmt.Sprintf("No item found with name '%s'.", name)
}

func cannotDecrease(name string, quantity, current int) string {
	return fmt.Sprintf("Item '%s' - Cannot decrease quantity by %d (Current Quantity: %d)", name, quantity, current)
}
