package types

// CreateOrderRequest configures order and payment-UI creation. Settings
// and CustomParameters are passed through to the payment provider opaquely.
type CreateOrderRequest struct {
	Currency         string         `json:"currency,omitempty"`
	Locale           string         `json:"locale,omitempty"`
	Sandbox          bool           `json:"sandbox,omitempty"`
	Quantity         int            `json:"quantity,omitempty"`
	PromoCode        string         `json:"promo_code,omitempty"`
	Settings         map[string]any `json:"settings,omitempty"`
	CustomParameters map[string]any `json:"custom_parameters,omitempty"`
}

// CreateOrderResponse carries the new order id and the one-time token
// that opens the payment UI.
type CreateOrderResponse struct {
	OrderId int    `json:"order_id"`
	Token   string `json:"token"`
}

// CreateVirtualOrderRequest pays for a single item with virtual currency.
type CreateVirtualOrderRequest struct {
	// VirtualCurrencySku names the currency to charge.
	VirtualCurrencySku string `json:"virtual_currency_sku"`
	Platform           string `json:"platform,omitempty"`
}

type Order struct {
	OrderId int           `json:"order_id"`
	Status  string        `json:"status"`
	Content *OrderContent `json:"content,omitempty"`
}

// Order status values as reported by the store.
const (
	OrderStatusNew      = "new"
	OrderStatusPaid     = "paid"
	OrderStatusDone     = "done"
	OrderStatusCanceled = "canceled"
)

type OrderContent struct {
	Price  *Price      `json:"price,omitempty"`
	IsFree bool        `json:"is_free"`
	Items  []OrderItem `json:"items,omitempty"`
}

type OrderItem struct {
	Sku      string `json:"sku"`
	Quantity int    `json:"quantity"`
	IsFree   bool   `json:"is_free"`
	Price    *Price `json:"price,omitempty"`
}
