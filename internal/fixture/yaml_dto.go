package fixture

type YAMLFixture struct {
	Customers []YAMLCustomer `yaml:"customers"`
	Products  []YAMLProduct  `yaml:"products"`
	Orders    []YAMLOrder    `yaml:"orders"`
}

type YAMLCustomer struct {
	ID       int64   `yaml:"id"`
	Email    string  `yaml:"email"`
	FullName string  `yaml:"full_name"`
	Address  *string `yaml:"address"`
	IsActive bool    `yaml:"is_active"`
	Birthday string  `yaml:"birthday"`
	JoinedAt string  `yaml:"joined_at"`
	Avatar   string  `yaml:"avatar"`
}

type YAMLProduct struct {
	ID          int64  `yaml:"id"`
	SKU         string `yaml:"sku"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	PriceCents  int64  `yaml:"price_cents"`
	Inventory   int    `yaml:"inventory"`
	CreatedAt   string `yaml:"created_at"`
	Photo       string `yaml:"photo"`
}

type YAMLOrder struct {
	ID             int64           `yaml:"id"`
	Customer       int64           `yaml:"customer"`
	Status         string          `yaml:"status"`
	Products       []int64         `yaml:"products"`
	Items          []YAMLOrderItem `yaml:"items"`
	OrderedAt      string          `yaml:"ordered_at"`
	ShipDate       string          `yaml:"ship_date"`
	DeliveryWindow string          `yaml:"delivery_window"`
	Invoice        string          `yaml:"invoice"`
}

type YAMLOrderItem struct {
	ID        int64  `yaml:"id"`
	Product   int64  `yaml:"product"`
	Quantity  int    `yaml:"quantity"`
	UnitPrice int64  `yaml:"unit_price"`
	Name      string `yaml:"name"`
}
