// Package store holds plain struct item classes: the shapes the adapter
// tests and examples read, write and derive schemas from.
package store

import (
	"time"

	"itemadapter/schema"
)

// Audit carries bookkeeping shared by stored items.
type Audit struct {
	// CreatedAt is when the item was first stored.
	CreatedAt time.Time `item:"created_at"`
	UpdatedBy string    `item:"updated_by,default=system"` // UpdatedBy names the last writer.
}

// Product is an item available for sale.
type Product struct {
	// Name is the display name.
	Name  string   `item:"name,min_length=1"`
	// Price is the unit price.
	Price float64  `item:"price,ge=0"`
	SKU   string   `item:"sku,pattern=^[A-Z]{3}-[0-9]+$"`
	Tags  []string `item:"tags,factory"`
	Stock *int     `item:"stock"`
	Audit
}

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusPaid      OrderStatus = "PAID"
	StatusShipped   OrderStatus = "SHIPPED"
	StatusCancelled OrderStatus = "CANCELLED"
)

func (OrderStatus) EnumValues() []any {
	return []any{string(StatusPending), string(StatusPaid), string(StatusShipped), string(StatusCancelled)}
}

// OrderLine snapshots a product at the time of purchase.
type OrderLine struct {
	Product  Product `item:"product"`
	Quantity int     `item:"quantity,ge=1,default=1"`
}

// Order is a purchase made by a customer.
type Order struct {
	ID     string         `json:"id"`
	Status OrderStatus    `json:"status" item:",default=PENDING"`
	Lines  []OrderLine    `json:"lines"`
	Notes  string         `json:"-"`
	// Meta is free-form.
	Meta   map[string]any `item:"meta,factory" jsonschema:"{\"title\": \"Metadata\"}"`
}

// JSONSchemaExtra gives orders a title.
func (Order) JSONSchemaExtra() *schema.Schema {
	return schema.Of("title", "Order")
}

// Category groups products and may nest.
type Category struct {
	Name     string     `item:"name"`
	Parent   *Category  `item:"parent"`
	Children []Category `item:"children,factory"`
}

// Shelf and Bin refer to each other.
type Shelf struct {
	Label string `item:"label"`
	Bins  []Bin  `item:"bins"`
}

type Bin struct {
	Code  string `item:"code"`
	Shelf *Shelf `item:"shelf"`
}
