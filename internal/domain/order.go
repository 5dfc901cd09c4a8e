package domain

import "github.com/shopspring/decimal"

// Order statuses accepted by the status update endpoint.
const (
	OrderPending    = "pending"
	OrderConfirmed  = "confirmed"
	OrderProcessing = "processing"
	OrderShipped    = "shipped"
	OrderDelivered  = "delivered"
	OrderCancelled  = "cancelled"
)

// CustomerInfo identifies the buyer on an order.
type CustomerInfo struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Company         string `json:"company,omitempty"`
	ShippingAddress string `json:"shippingAddress,omitempty"`
}

// OrderItem is a single line on an order. Pack references the selected
// pack option's unit.
type OrderItem struct {
	SKU      string `json:"sku"`
	Quantity int    `json:"quantity"`
	Pack     string `json:"pack,omitempty"`
}

// Order is created by the storefront; the admin console only reads it,
// edits status and notes, and deletes it.
type Order struct {
	ID           string          `json:"_id"`
	OrderID      string          `json:"orderId"`
	CustomerInfo CustomerInfo    `json:"customerInfo"`
	Items        []OrderItem     `json:"items"`
	OrderTotal   decimal.Decimal `json:"orderTotal"`
	Status       string          `json:"status"`
	Notes        string          `json:"notes,omitempty"`
}
