package domain

import "time"

// OrderStatusPending is the status every order is created with. Further
// transitions happen outside this system.
const OrderStatusPending = "pending"

// Order is a checkout result header. TotalAmount is derived server-side from
// the order items, never taken from the client.
type Order struct {
	ID          int64     `json:"id"`
	UserName    string    `json:"userName"`
	UserEmail   string    `json:"userEmail"`
	UserPhone   string    `json:"userPhone"`
	UserMessage string    `json:"userMessage,omitempty"`
	TotalAmount int64     `json:"totalAmount"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// OrderItem snapshots one cart line. PriceAtTime is decoupled from future
// catalog price changes.
type OrderItem struct {
	ID          int64 `json:"id"`
	OrderID     int64 `json:"orderId"`
	ProductID   int64 `json:"productId"`
	Quantity    int   `json:"quantity"`
	PriceAtTime int64 `json:"priceAtTime"`
}
