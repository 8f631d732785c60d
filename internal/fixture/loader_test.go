package fixture

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recdict/dict"
	"recdict/orm"
	"recdict/store"
)

func TestLoadFile(t *testing.T) {
	t.Parallel()

	set, err := LoadFile("testdata/shop.yaml", orm.FileSystemStorage{BaseURL: "/media"})
	require.NoError(t, err)

	assert.Len(t, set.Customers, 2)
	assert.Len(t, set.Products, 2)
	assert.Len(t, set.Orders, 2)
	assert.Len(t, set.Items, 2)

	ada := set.Customers[1]
	require.NotNil(t, ada)
	assert.Equal(t, "12 St James's Square, London", ada.Address.String)
	assert.True(t, ada.Birthday.Valid)
	assert.Len(t, ada.Orders, 2)
	assert.Equal(t, "/media/avatars/ada.png", ada.Avatar.URL())

	charles := set.Customers[2]
	assert.False(t, charles.Address.Valid)
	assert.False(t, charles.Birthday.Valid)
	assert.Equal(t, 8, charles.JoinedAt.Hour())

	o := set.Orders[100]
	require.NotNil(t, o)
	assert.Same(t, ada, o.Customer)
	assert.Equal(t, store.StatusPaid, o.Status)
	assert.Len(t, o.Products, 2)
	require.Len(t, o.Items, 2)
	assert.Equal(t, "Desk lamp", o.Items[0].Name)
	assert.Equal(t, int64(1999), o.Items[0].UnitPrice)
	assert.Equal(t, int64(450), o.Items[1].UnitPrice)
	assert.Same(t, o, o.Items[1].Order)

	assert.Equal(t, store.StatusPending, set.Orders[101].Status)
}

func TestLoadFile_Missing(t *testing.T) {
	t.Parallel()

	_, err := LoadFile("testdata/nope.yaml", nil)
	require.Error(t, err)
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		yaml string
		err  error
	}{
		{
			name: "dangling customer",
			yaml: "orders:\n  - id: 1\n    customer: 9\n",
			err:  ErrDanglingRef,
		},
		{
			name: "dangling product",
			yaml: "orders:\n  - id: 1\n    products: [3]\n",
			err:  ErrDanglingRef,
		},
		{
			name: "duplicate customer",
			yaml: "customers:\n  - id: 1\n  - id: 1\n",
			err:  ErrDuplicateID,
		},
		{
			name: "bad date",
			yaml: "customers:\n  - id: 1\n    birthday: tomorrow\n",
			err:  ErrInvalidValue,
		},
		{
			name: "bad status",
			yaml: "orders:\n  - id: 1\n    status: lost\n",
			err:  ErrInvalidValue,
		},
		{
			name: "bad window",
			yaml: "orders:\n  - id: 1\n    delivery_window: soon\n",
			err:  ErrInvalidValue,
		},
		{
			name: "missing id",
			yaml: "products:\n  - sku: X\n",
			err:  ErrInvalidValue,
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse([]byte(tt.yaml), nil)
			require.ErrorIs(t, err, tt.err)
		})
	}

	_, err := Parse([]byte("customers: {"), nil)
	require.Error(t, err)
}

func TestSet_Lookup(t *testing.T) {
	t.Parallel()

	set, err := LoadFile("testdata/shop.yaml", nil)
	require.NoError(t, err)

	rec, err := set.Lookup("Order", 100)
	require.NoError(t, err)
	assert.IsType(t, &store.Order{}, rec)

	rec, err = set.Lookup("order_item", 1001)
	require.NoError(t, err)
	assert.IsType(t, &store.OrderItem{}, rec)

	_, err = set.Lookup("order", 999)
	require.ErrorIs(t, err, ErrUnknownRecord)

	_, err = set.Lookup("invoice", 1)
	require.ErrorIs(t, err, ErrUnknownRecord)
}

func TestFixture_SerializesToJSON(t *testing.T) {
	t.Parallel()

	set, err := LoadFile("testdata/shop.yaml", orm.FileSystemStorage{BaseURL: "https://cdn.example.com/media"})
	require.NoError(t, err)

	d, err := dict.Serialize(set.Orders[100], "", nil,
		"id", "customer", "products", "items", "ordered_at", "ship_date", "delivery_window", "invoice")
	require.NoError(t, err)

	out, err := json.Marshal(d)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"id": "100",
		"customer": {
			"id": "1",
			"full_name": "Ada Lovelace",
			"email": "ada@example.com",
			"avatar": {"url": "https://cdn.example.com/media/avatars/ada.png"},
			"orders": [{}, {}]
		},
		"products": [
			{"id": "10", "sku": "LAMP-01", "name": "Desk lamp", "price_cents": "1999",
			 "photo": {"url": "https://cdn.example.com/media/products/lamp.jpg"}},
			{"id": "11", "sku": "BULB-02", "name": "Spare bulb", "price_cents": "499", "photo": {}}
		],
		"items": [{"id": 1000}, {"id": 1001}],
		"ordered_at": "2024-02-01 12:30:45",
		"ship_date": "2024-02-03",
		"delivery_window": "09:30:00",
		"invoice": {"url": "https://cdn.example.com/media/invoices/100.pdf"}
	}`, string(out))
}
