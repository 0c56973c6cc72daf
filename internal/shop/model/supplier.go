package model

import (
	"fmt"
	"strings"
)

// Supplier provides items to the shop.
type Supplier struct {
	ID          int
	Name        string
	Type        string
	Address     string
	ContactName string
}

func (s *Supplier) String() string {
	return fmt.Sprintf("Supplier - ID: %d, Name: %s, Type: %s, Address: %s, Contact: %s",
		s.ID, s.Name, s.Type, s.Address, s.ContactName)
}

// SupplierList is the ordered list of the shop's suppliers.
type SupplierList struct {
	suppliers []*Supplier
}

// NewSupplierList creates a list holding the given suppliers.
func NewSupplierList(suppliers ...*Supplier) *SupplierList {
	return &SupplierList{suppliers: suppliers}
}

// SearchByID returns the first supplier with the given ID.
func (l *SupplierList) SearchByID(id int) (*Supplier, bool) {
	for _, s := range l.suppliers {
		if s.ID == id {
			return s, true
		}
	}
	return nil, false
}

// SearchByName returns the first supplier with the given name (case-sensitive).
func (l *SupplierList) SearchByName(name string) (*Supplier, bool) {
	for _, s := range l.suppliers {
		if s.Name == name {
			return s, true
		}
	}
	return nil, false
}

func (l *SupplierList) String() string {
	if len(l.suppliers) == 0 {
		return "No suppliers registered."
	}
	lines := make([]string, 0, len(l.suppliers))
	for _, s := range l.suppliers {
		lines = append(lines, s.String())
	}
	return strings.Join(lines, "\n")
}
