package store

import (
	"context"
	"errors"
	"fmt"

	shoperrors "github.com/abgdnv/toolshop/internal/shop/errors"
	"github.com/abgdnv/toolshop/internal/shop/model"
	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/shopspring/decimal"
)

type seedSupplier struct {
	ID          int    `koanf:"id"           validate:"required,gt=0"`
	Name        string `koanf:"name"         validate:"required,max=100"`
	Type        string `koanf:"type"         validate:"max=50"`
	Address     string `koanf:"address"`
	ContactName string `koanf:"contact_name" validate:"max=100"`
}

type seedItem struct {
	ID         int    `koanf:"id"          validate:"required,gt=0"`
	Name       string `koanf:"name"        validate:"required,max=100"`
	Quantity   int    `koanf:"quantity"    validate:"min=0"`
	Price      string `koanf:"price"       validate:"required,numeric"`
	Type       string `koanf:"type"        validate:"max=50"`
	SupplierID int    `koanf:"supplier_id" validate:"min=0"`
}

type seedCustomer struct {
	ID          int    `koanf:"id"           validate:"required,gt=0"`
	FirstName   string `koanf:"first_name"   validate:"required,max=100"`
	LastName    string `koanf:"last_name"    validate:"required,max=100"`
	Address     string `koanf:"address"`
	PostalCode  string `koanf:"postal_code"  validate:"max=20"`
	PhoneNumber string `koanf:"phone_number" validate:"max=30"`
	Type        string `koanf:"type"         validate:"max=50"`
}

type seedFile struct {
	Suppliers []seedSupplier `koanf:"suppliers" validate:"dive"`
	Items     []seedItem     `koanf:"items"     validate:"dive"`
	Customers []seedCustomer `koanf:"customers" validate:"dive"`
}

// FileStore implements CatalogStore on top of a YAML seed file.
type FileStore struct {
	path     string
	validate *validator.Validate
}

// NewFileStore creates a new instance of CatalogStore reading the YAML file at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{
		path:     path,
		validate: validator.New(),
	}
}

// Load reads and validates the seed file.
func (f *FileStore) Load(_ context.Context) (*Catalog, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(f.path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", f.path, err)
	}

	var seed seedFile
	if err := k.Unmarshal("", &seed); err != nil {
		return nil, fmt.Errorf("failed to decode catalog file %s: %w", f.path, err)
	}

	if err := f.validate.Struct(seed); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
			fieldErr := validationErrors[0]
			return nil, fmt.Errorf("%s failed on rule %s: %w", fieldErr.Namespace(), fieldErr.Tag(), shoperrors.ErrInvalidCatalog)
		}
		return nil, fmt.Errorf("failed to validate catalog file %s: %w", f.path, err)
	}

	catalog, err := seed.toCatalog()
	if err != nil {
		return nil, err
	}
	if err := catalog.Check(); err != nil {
		return nil, err
	}
	return catalog, nil
}

func (s seedFile) toCatalog() (*Catalog, error) {
	catalog := &Catalog{
		Suppliers: make([]*model.Supplier, 0, len(s.Suppliers)),
		Items:     make([]*model.Item, 0, len(s.Items)),
		Customers: make([]*model.Customer, 0, len(s.Customers)),
	}
	for _, sup := range s.Suppliers {
		catalog.Suppliers = append(catalog.Suppliers, &model.Supplier{
			ID:          sup.ID,
			Name:        sup.Name,
			Type:        sup.Type,
			Address:     sup.Address,
			ContactName: sup.ContactName,
		})
	}
	for _, it := range s.Items {
		price, err := decimal.NewFromString(it.Price)
		if err != nil {
			return nil, fmt.Errorf("item %d has invalid price %q: %w", it.ID, it.Price, shoperrors.ErrInvalidCatalog)
		}
		catalog.Items = append(catalog.Items, &model.Item{
			ID:         it.ID,
			Name:       it.Name,
			Quantity:   it.Quantity,
			Price:      price,
			Type:       it.Type,
			SupplierID: it.SupplierID,
		})
	}
	for _, cu := range s.Customers {
		catalog.Customers = append(catalog.Customers, &model.Customer{
			ID:          cu.ID,
			FirstName:   cu.FirstName,
			LastName:    cu.LastName,
			Address:     cu.Address,
			PostalCode:  cu.PostalCode,
			PhoneNumber: cu.PhoneNumber,
			Type:        cu.Type,
		})
	}
	return catalog, nil
}
