package types

// Cart is the user's cart, returned by every cart endpoint.
type Cart struct {
	CartId   string     `json:"cart_id"`
	Price    *Price     `json:"price,omitempty"`
	IsFree   bool       `json:"is_free"`
	Items    []CartItem `json:"items"`
	Warnings []string   `json:"warnings,omitempty"`
}

type CartItem struct {
	Sku           string         `json:"sku"`
	Name          string         `json:"name,omitempty"`
	Description   string         `json:"description,omitempty"`
	ImageUrl      string         `json:"image_url,omitempty"`
	Quantity      int            `json:"quantity"`
	IsFree        bool           `json:"is_free"`
	IsBonus       bool           `json:"is_bonus,omitempty"`
	Price         *Price         `json:"price,omitempty"`
	VirtualPrices []VirtualPrice `json:"virtual_prices,omitempty"`
}

// FillCartRequest replaces the cart content in one call.
type FillCartRequest struct {
	Items []FillCartItem `json:"items"`
}

type FillCartItem struct {
	Sku      string `json:"sku"`
	Quantity int    `json:"quantity"`
}

// UpdateCartItemRequest sets the quantity of one item in the cart.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}
