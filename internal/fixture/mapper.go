package fixture

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/volatiletech/null/v8"

	"recdict/dict"
	"recdict/orm"
	"recdict/store"
)

var (
	ErrDuplicateID   = errors.New("duplicate id")
	ErrDanglingRef   = errors.New("reference to unknown record")
	ErrInvalidValue  = errors.New("invalid value")
	ErrUnknownRecord = errors.New("unknown record")
)

// Set is a linked graph of sample records keyed by model and id.
type Set struct {
	Customers map[int64]*store.Customer
	Products  map[int64]*store.Product
	Orders    map[int64]*store.Order
	Items     map[int64]*store.OrderItem
}

// Models lists the model names accepted by Lookup.
func Models() []string {
	return []string{"customer", "order", "orderitem", "product"}
}

// Lookup returns the record of the given model name and id.
func (s *Set) Lookup(model string, id int64) (any, error) {
	var (
		rec any
		ok  bool
	)

	switch strings.ToLower(model) {
	case "customer":
		rec, ok = lookup(s.Customers, id)
	case "product":
		rec, ok = lookup(s.Products, id)
	case "order":
		rec, ok = lookup(s.Orders, id)
	case "orderitem", "order_item", "item":
		rec, ok = lookup(s.Items, id)
	default:
		return nil, fmt.Errorf("%w: model %q (known: %s)", ErrUnknownRecord, model, strings.Join(Models(), ", "))
	}

	if !ok {
		return nil, fmt.Errorf("%w: %s %d", ErrUnknownRecord, model, id)
	}

	return rec, nil
}

func lookup[T any](m map[int64]*T, id int64) (any, bool) {
	rec, ok := m[id]
	return rec, ok
}

// Map converts decoded YAML into linked store records.
func Map(dto YAMLFixture, storage orm.Storage) (*Set, error) {
	set := &Set{
		Customers: make(map[int64]*store.Customer, len(dto.Customers)),
		Products:  make(map[int64]*store.Product, len(dto.Products)),
		Orders:    make(map[int64]*store.Order, len(dto.Orders)),
		Items:     make(map[int64]*store.OrderItem),
	}

	for i, yc := range dto.Customers {
		field := fmt.Sprintf("customers[%d]", i)

		c, err := mapCustomer(field, yc, storage)
		if err != nil {
			return nil, err
		}

		if _, dup := set.Customers[c.ID]; dup {
			return nil, fmt.Errorf("%s: %w %d", field, ErrDuplicateID, c.ID)
		}

		set.Customers[c.ID] = c
	}

	for i, yp := range dto.Products {
		field := fmt.Sprintf("products[%d]", i)

		p, err := mapProduct(field, yp, storage)
		if err != nil {
			return nil, err
		}

		if _, dup := set.Products[p.ID]; dup {
			return nil, fmt.Errorf("%s: %w %d", field, ErrDuplicateID, p.ID)
		}

		set.Products[p.ID] = p
	}

	for i, yo := range dto.Orders {
		field := fmt.Sprintf("orders[%d]", i)

		o, err := set.mapOrder(field, yo, storage)
		if err != nil {
			return nil, err
		}

		if _, dup := set.Orders[o.ID]; dup {
			return nil, fmt.Errorf("%s: %w %d", field, ErrDuplicateID, o.ID)
		}

		set.Orders[o.ID] = o

		if o.Customer != nil {
			o.Customer.Orders = append(o.Customer.Orders, o)
		}
	}

	return set, nil
}

func mapCustomer(field string, yc YAMLCustomer, storage orm.Storage) (*store.Customer, error) {
	if yc.ID <= 0 {
		return nil, invalidField(field, "id", "must be positive")
	}

	birthday, err := parseNullTime(yc.Birthday, dict.DateLayout)
	if err != nil {
		return nil, invalidField(field, "birthday", err.Error())
	}

	joined, err := parseTime(yc.JoinedAt)
	if err != nil {
		return nil, invalidField(field, "joined_at", err.Error())
	}

	return &store.Customer{
		ID:       yc.ID,
		Email:    yc.Email,
		FullName: yc.FullName,
		Address:  null.StringFromPtr(yc.Address),
		IsActive: yc.IsActive,
		Birthday: birthday,
		JoinedAt: joined,
		Avatar:   orm.Image{File: file(yc.Avatar, storage)},
	}, nil
}

func mapProduct(field string, yp YAMLProduct, storage orm.Storage) (*store.Product, error) {
	if yp.ID <= 0 {
		return nil, invalidField(field, "id", "must be positive")
	}

	created, err := parseTime(yp.CreatedAt)
	if err != nil {
		return nil, invalidField(field, "created_at", err.Error())
	}

	return &store.Product{
		ID:          yp.ID,
		SKU:         yp.SKU,
		Name:        yp.Name,
		Description: yp.Description,
		PriceCents:  yp.PriceCents,
		Inventory:   yp.Inventory,
		CreatedAt:   created,
		Photo:       orm.Image{File: file(yp.Photo, storage)},
	}, nil
}

func (s *Set) mapOrder(field string, yo YAMLOrder, storage orm.Storage) (*store.Order, error) {
	if yo.ID <= 0 {
		return nil, invalidField(field, "id", "must be positive")
	}

	o := &store.Order{
		ID:      yo.ID,
		Status:  store.OrderStatus(strings.ToUpper(yo.Status)),
		Invoice: file(yo.Invoice, storage),
	}

	if o.Status == "" {
		o.Status = store.StatusPending
	}

	if !slices.Contains([]store.OrderStatus{store.StatusPending, store.StatusPaid, store.StatusShipped, store.StatusCancelled}, o.Status) {
		return nil, invalidField(field, "status", fmt.Sprintf("unknown status %q", yo.Status))
	}

	if yo.Customer != 0 {
		c, ok := s.Customers[yo.Customer]
		if !ok {
			return nil, fmt.Errorf("%s.customer: %w: customer %d", field, ErrDanglingRef, yo.Customer)
		}

		o.Customer = c
	}

	for _, pid := range yo.Products {
		p, ok := s.Products[pid]
		if !ok {
			return nil, fmt.Errorf("%s.products: %w: product %d", field, ErrDanglingRef, pid)
		}

		o.Products = append(o.Products, p)
	}

	var err error

	if o.OrderedAt, err = parseTime(yo.OrderedAt); err != nil {
		return nil, invalidField(field, "ordered_at", err.Error())
	}

	if o.ShipDate, err = parseNullTime(yo.ShipDate, dict.DateLayout); err != nil {
		return nil, invalidField(field, "ship_date", err.Error())
	}

	if yo.DeliveryWindow != "" {
		if o.DeliveryWindow, err = time.ParseDuration(yo.DeliveryWindow); err != nil {
			return nil, invalidField(field, "delivery_window", err.Error())
		}
	}

	for i, yi := range yo.Items {
		itemField := fmt.Sprintf("%s.items[%d]", field, i)

		if yi.ID <= 0 {
			return nil, invalidField(itemField, "id", "must be positive")
		}

		if _, dup := s.Items[yi.ID]; dup {
			return nil, fmt.Errorf("%s: %w %d", itemField, ErrDuplicateID, yi.ID)
		}

		item := &store.OrderItem{
			ID:        yi.ID,
			Order:     o,
			Name:      yi.Name,
			Quantity:  yi.Quantity,
			UnitPrice: yi.UnitPrice,
		}

		if yi.Product != 0 {
			p, ok := s.Products[yi.Product]
			if !ok {
				return nil, fmt.Errorf("%s.product: %w: product %d", itemField, ErrDanglingRef, yi.Product)
			}

			item.Product = p
			if item.Name == "" {
				item.Name = p.Name
			}

			if item.UnitPrice == 0 {
				item.UnitPrice = p.PriceCents
			}
		}

		s.Items[item.ID] = item
		o.Items = append(o.Items, item)
	}

	return o, nil
}

func file(name string, storage orm.Storage) orm.File {
	if name == "" {
		return orm.File{}
	}

	return orm.File{Name: name, Storage: storage}
}

// parseTime accepts RFC 3339 or the datetime layout; empty means unset.
func parseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}

	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}

	return time.Parse(dict.DateTimeLayout, s)
}

func parseNullTime(s, layout string) (null.Time, error) {
	if s == "" {
		return null.Time{}, nil
	}

	t, err := time.Parse(layout, s)
	if err != nil {
		return null.Time{}, err
	}

	return null.TimeFrom(t), nil
}

func invalidField(field, name, msg string) error {
	return fmt.Errorf("%s.%s: %w: %s", field, name, ErrInvalidValue, msg)
}
