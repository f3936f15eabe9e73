package domain

import "time"

// OrderStatus is the logistics stage of an order. Stages advance strictly
// forward, one at a time.
type OrderStatus string

const (
	StatusPending                OrderStatus = "PENDING"
	StatusManufacturerDispatched OrderStatus = "MANUFACTURER_DISPATCHED"
	StatusHubReceived            OrderStatus = "HUB_RECEIVED"
	StatusHubQualityCheck        OrderStatus = "HUB_QUALITY_CHECK"
	// StatusHubProcessing is reserved. It is part of the status vocabulary
	// but no transition produces it.
	StatusHubProcessing  OrderStatus = "HUB_PROCESSING"
	StatusOutForDelivery OrderStatus = "OUT_FOR_DELIVERY"
	StatusDelivered      OrderStatus = "DELIVERED"
)

// PaymentMethod identifies how the retailer paid. Payment is recorded,
// never processed.
type PaymentMethod string

const (
	PaymentGPay       PaymentMethod = "GPAY"
	PaymentPhonePe    PaymentMethod = "PHONEPE"
	PaymentPaytm      PaymentMethod = "PAYTM"
	PaymentCreditCard PaymentMethod = "CREDIT_CARD"
	PaymentCOD        PaymentMethod = "COD"
)

// LogType classifies an audit log entry.
type LogType string

const (
	LogInfo    LogType = "INFO"
	LogSuccess LogType = "SUCCESS"
	LogWarning LogType = "WARNING"
	LogError   LogType = "ERROR"
)

// AuditLog is an immutable event record. Logs are append-only and kept
// newest first.
type AuditLog struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Action    string    `json:"action"`
	Details   string    `json:"details"`
	Type      LogType   `json:"type"`
}

// CartItem is a prospective order line. Price is the resolved unit price
// after any bulk tier; OriginalPrice is the list unit price.
type CartItem struct {
	ProductID     string  `json:"product_id"`
	ProductName   string  `json:"product_name"`
	Quantity      int     `json:"quantity"`
	Price         float64 `json:"price"`
	OriginalPrice float64 `json:"original_price"`
	Image         string  `json:"image"`
}

// Address is the retailer-supplied delivery destination.
type Address struct {
	ShopName string `json:"shop_name"`
	Street   string `json:"street"`
	City     string `json:"city"`
	Pincode  string `json:"pincode"`
	Phone    string `json:"phone"`
}

// Order is a procurement record. Items and TotalAmount are frozen at
// placement; only Status and Logs mutate afterwards, and Logs only by
// prepending.
type Order struct {
	ID            string        `json:"id"`
	RetailerName  string        `json:"retailer_name"`
	Items         []CartItem    `json:"items"`
	TotalAmount   float64       `json:"total_amount"`
	Status        OrderStatus   `json:"status"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	Address       Address       `json:"address"`
	CreatedAt     time.Time     `json:"created_at"`
	Logs          []AuditLog    `json:"logs"`
}
