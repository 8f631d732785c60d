package store

import (
	"time"

	"github.com/volatiletech/null/v8"

	"recdict/dict"
	"recdict/orm"
)

// Product represents an individual item available for sale.
// We use int64 for Price to represent cents (lowest currency unit) to avoid floating-point errors.
type Product struct {
	ID          int64     `json:"id"`
	SKU         string    `json:"sku"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	PriceCents  int64     `json:"price_cents"`
	Inventory   int       `json:"inventory_count"`
	CreatedAt   time.Time `json:"created_at"`
	Photo       orm.Image `json:"photo"`
}

// DictFields lists what a product shows when nested in another record.
func (p Product) DictFields() []string {
	return []string{"id", "sku", "name", "price_cents", "photo"}
}

// Customer represents the user placing orders.
type Customer struct {
	ID       int64       `json:"id"`
	Email    string      `json:"email"`
	FullName string      `json:"full_name"`
	Address  null.String `json:"address"`
	IsActive bool        `json:"is_active"`
	Birthday null.Time   `json:"birthday" orm:"date"`
	JoinedAt time.Time   `json:"joined_at"`
	Avatar   orm.Image   `json:"avatar"`

	// Orders is the reverse side of Order.Customer.
	Orders orm.Set[*Order] `json:"orders" orm:"rel"`
}

// Dict serializes the customer when it is reached through a relation.
func (c *Customer) Dict(visited dict.Visited) (map[string]any, error) {
	return dict.Serialize(c, "", visited, "id", "full_name", "email", "avatar", "orders")
}

// Order represents a transaction made by a customer.
type Order struct {
	ID             int64             `json:"id"`
	Customer       *Customer         `json:"customer"`
	Status         OrderStatus       `json:"status"`
	TotalCents     int64             `json:"total_cents"`
	Products       orm.Set[*Product] `json:"products" orm:"m2m"`
	Items          []*OrderItem      `json:"items" orm:"rel"`
	OrderedAt      time.Time         `json:"ordered_at"`
	ShipDate       null.Time         `json:"ship_date" orm:"date"`
	DeliveryWindow time.Duration     `json:"delivery_window" orm:"time"`
	Invoice        orm.File          `json:"invoice"`
	Note           string            `json:"-" orm:"-"`
}

// Dict serializes the order when it is reached through a relation.
func (o *Order) Dict(visited dict.Visited) map[string]any {
	d, err := dict.Serialize(o, "", visited, "id", "status", "ordered_at", "customer")
	if err != nil {
		return map[string]any{"id": o.ID}
	}

	return d
}

// OrderItem represents a specific product line within an order.
// It snapshots the price at the time of purchase.
type OrderItem struct {
	ID        int64    `json:"id"`
	Order     *Order   `json:"order"`
	Product   *Product `json:"product"`
	Name      string   `json:"name"` // Redundant but useful for history if product name changes
	Quantity  int      `json:"quantity"`
	UnitPrice int64    `json:"unit_price"`
}

// OrderStatus is a custom type for type-safe status handling.
type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusPaid      OrderStatus = "PAID"
	StatusShipped   OrderStatus = "SHIPPED"
	StatusCancelled OrderStatus = "CANCELLED"
)
