package model

import (
	"fmt"
	"strings"
)

// Customer buys from the shop.
type Customer struct {
	ID          int
	FirstName   string
	LastName    string
	Address     string
	PostalCode  string
	PhoneNumber string
	Type        string
}

// FullName joins the customer's first and last name.
func (c *Customer) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

func (c *Customer) String() string {
	return fmt.Sprintf("Customer - ID: %d, Name: %s, Address: %s, Postal Code: %s, Phone: %s, Type: %s",
		c.ID, c.FullName(), c.Address, c.PostalCode, c.PhoneNumber, c.Type)
}

// CustomerList is the ordered list of the shop's customers.
type CustomerList struct {
	customers []*Customer
}

// NewCustomerList creates a list holding the given customers.
func NewCustomerList(customers ...*Customer) *CustomerList {
	return &CustomerList{customers: customers}
}

// SearchByID returns the first customer with the given ID.
func (l *CustomerList) SearchByID(id int) (*Customer, bool) {
	for _, c := range l.customers {
		if c.ID == id {
			return c, true
		}
	}
	return nil, false
}

// SearchByName returns every customer whose last name or full name matches name (case-sensitive).
func (l *CustomerList) SearchByName(name string) []*Customer {
	var found []*Customer
	for _, c := range l.customers {
		if c.LastName == name || c.FullName() == name {
			found = append(found, c)
		}
	}
	return found
}

func (l *CustomerList) String() string {
	if len(l.customers) == 0 {
		return "No customers registered."
	}
	lines := make([]string, 0, len(l.customers))
	for _, c := range l.customers {
		lines = append(lines, c.String())
	}
	return strings.Join(lines, "\n")
}
