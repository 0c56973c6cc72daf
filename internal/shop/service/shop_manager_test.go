package service

import (
	"sync"
	"testing"
	"time"

	"github.com/abgdnv/toolshop/internal/shop/inventory"
	"github.com/abgdnv/toolshop/internal/shop/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager() *ShopManager {
	items := []*model.Item{
		{ID: 1, Name: "Hammer", Quantity: 10, Price: decimal.RequireFromString("12.50"), Type: "non-electrical", SupplierID: 8001},
		{ID: 2, Name: "Drill", Quantity: 100, Price: decimal.RequireFromString("89.99"), Type: "electrical", SupplierID: 8002},
	}
	inv := inventory.New(items,
		inventory.WithClock(func() time.Time { return time.Date(2020, time.October, 10, 0, 0, 0, 0, time.UTC) }),
		inventory.WithOrderIDs(func() string { return "order-1" }),
	)
	suppliers := model.NewSupplierList(
		&model.Supplier{ID: 8001, Name: "Grommet Builders", Type: "local"},
		&model.Supplier{ID: 8002, Name: "Pong Works", Type: "international"},
	)
	customers := model.NewCustomerList(
		&model.Customer{ID: 1, FirstName: "Jane", LastName: "Doe", Type: "R"},
	)
	return NewShopManager(inv, suppliers, customers)
}

func Test_ShopManager_ListAllItems(t *testing.T) {
	manager := newTestManager()

	expected := "Item - ID: 1, Name: Hammer, Quantity: 10, Price: 12.50, Type: non-electrical\n" +
		"Item - ID: 2, Name: Drill, Quantity: 100, Price: 89.99, Type: electrical"
	assert.Equal(t, expected, manager.ListAllItems())
}

func Test_ShopManager_SearchItemByName(t *testing.T) {
	testCases := []struct {
		name     string
		query    string
		expected string
	}{
		{
			name:     "Success - item found",
			query:    "Drill",
			expected: "Item - ID: 2, Name: Drill, Quantity: 100, Price: 89.99, Type: electrical",
		},
		{
			name:     "Not found - unknown name",
			query:    "Saw",
			expected: "No item found with name 'Saw'.",
		},
		{
			name:     "Not found - case mismatch",
			query:    "drill",
			expected: "No item found with name 'drill'.",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			manager := newTestManager()
			// when
			result := manager.SearchItemByName(tc.query)
			// then
			assert.Equal(t, tc.expected, result)
		})
	}
}

func Test_ShopManager_SearchItemByID(t *testing.T) {
	manager := newTestManager()

	assert.Equal(t, "Item - ID: 1, Name: Hammer, Quantity: 10, Price: 12.50, Type: non-electrical", manager.SearchItemByID(1))
	assert.Equal(t, "No item found with id '42'.", manager.SearchItemByID(42))
}

func Test_ShopManager_GetItemQuantity(t *testing.T) {
	manager := newTestManager()

	assert.Equal(t, "Item 'Hammer' - Current Quantity: 10", manager.GetItemQuantity("Hammer"))
	assert.Equal(t, "No item found with name 'Saw'.", manager.GetItemQuantity("Saw"))
}

func Test_ShopManager_DecreaseItemQuantity(t *testing.T) {
	testCases := []struct {
		name             string
		item             string
		quantity         int
		expected         string
		expectedQuantity string
	}{
		{
			name:             "Success - quantity updated",
			item:             "Drill",
			quantity:         5,
			expected:         "Item 'Drill' - Updated Quantity: 95",
			expectedQuantity: "Item 'Drill' - Current Quantity: 95",
		},
		{
			name:             "Success - decrease to zero",
			item:             "Hammer",
			quantity:         10,
			expected:         "Item 'Hammer' - Updated Quantity: 0",
			expectedQuantity: "Item 'Hammer' - Current Quantity: 0",
		},
		{
			name:             "Rejected - more than in stock",
			item:             "Hammer",
			quantity:         12,
			expected:         "Item 'Hammer' - Cannot decrease quantity by 12 (Current Quantity: 10)",
			expectedQuantity: "Item 'Hammer' - Current Quantity: 10",
		},
		{
			name:             "Rejected - negative quantity",
			item:             "Hammer",
			quantity:         -3,
			expected:         "Item 'Hammer' - Cannot decrease quantity by -3 (quantity must not be negative)",
			expectedQuantity: "Item 'Hammer' - Current Quantity: 10",
		},
		{
			name:             "Not found - unknown item",
			item:             "Saw",
			quantity:         1,
			expected:         "No item found with name 'Saw'.",
			expectedQuantity: "No item found with name 'Saw'.",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			manager := newTestManager()
			// when
			result := manager.DecreaseItemQuantity(tc.item, tc.quantity)
			// then
			assert.Equal(t, tc.expected, result)
			assert.Equal(t, tc.expectedQuantity, manager.GetItemQuantity(tc.item))
		})
	}
}

func Test_ShopManager_GetOrder(t *testing.T) {
	// given
	manager := newTestManager()
	require.Equal(t, "No order exists", manager.GetOrder())

	// when
	manager.DecreaseItemQuantity("Drill", 70)
	manager.DecreaseItemQuantity("Hammer", 4)

	// then
	expected := "Order ID: order-1\n" +
		"Date Ordered: October 10, 2020\n" +
		"\nItem description: Drill\nAmount ordered: 20\nSupplier: Pong Works\n" +
		"\nItem description: Hammer\nAmount ordered: 44\nSupplier: Grommet Builders\n"
	assert.Equal(t, expected, manager.GetOrder())
}

func Test_ShopManager_Suppliers_Customers(t *testing.T) {
	manager := newTestManager()

	assert.Contains(t, manager.ListAllSuppliers(), "Name: Grommet Builders")
	assert.Contains(t, manager.ListAllSuppliers(), "Name: Pong Works")
	assert.Equal(t, "Customer - ID: 1, Name: Jane Doe, Address: , Postal Code: , Phone: , Type: R", manager.ListAllCustomers())
	assert.Equal(t, manager.ListAllCustomers(), manager.SearchCustomerByName("Doe"))
	assert.Equal(t, "No customer found with name 'Smith'.", manager.SearchCustomerByName("Smith"))
}

func Test_ShopManager_SearchSupplierByName(t *testing.T) {
	testCases := []struct {
		name     string
		query    string
		expected string
	}{
		{
			name:     "Success - supplier found",
			query:    "Pong Works",
			expected: "Supplier - ID: 8002, Name: Pong Works, Type: international, Address: , Contact: ",
		},
		{
			name:     "Not found - case mismatch",
			query:    "pong works",
			expected: "No supplier found with name 'pong works'.",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			manager := newTestManager()
			assert.Equal(t, tc.expected, manager.SearchSupplierByName(tc.query))
		})
	}
}

func Test_ShopManager_SearchCustomerByID(t *testing.T) {
	testCases := []struct {
		name     string
		id       int
		expected string
	}{
		{
			name:     "Success - customer found",
			id:       1,
			expected: "Customer - ID: 1, Name: Jane Doe, Address: , Postal Code: , Phone: , Type: R",
		},
		{
			name:     "Not found - unknown id",
			id:       7,
			expected: "No customer found with id '7'.",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			manager := newTestManager()
			assert.Equal(t, tc.expected, manager.SearchCustomerByID(tc.id))
		})
	}
}

func Test_ShopManager_ConcurrentDecrease(t *testing.T) {
	// given
	manager := newTestManager()
	var wg sync.WaitGroup

	// when
	for i := 0; i < 150; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			manager.DecreaseItemQuantity("Drill", 1)
		}()
	}
	wg.Wait()

	// then
	assert.Equal(t, "Item 'Drill' - Current Quantity: 0", manager.GetItemQuantity("Drill"))
}
