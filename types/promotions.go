package types

// RedeemCouponRequest redeems a coupon code for its reward items.
// SelectedUnitItems picks concrete items when the coupon's reward
// lets the user choose (keyed by unit item sku).
type RedeemCouponRequest struct {
	CouponCode        string            `json:"coupon_code"`
	SelectedUnitItems map[string]string `json:"selected_unit_items,omitempty"`
}

type RedeemCouponResponse struct {
	Items []CouponItem `json:"items"`
}

type CouponItem struct {
	Sku      string `json:"sku"`
	Name     string `json:"name,omitempty"`
	Type     string `json:"type,omitempty"`
	ImageUrl string `json:"image_url,omitempty"`
	Quantity int    `json:"quantity"`
}

// Rewards describes what a coupon or promocode grants before redeeming.
type Rewards struct {
	Bonus        []Reward  `json:"bonus,omitempty"`
	Discount     *Discount `json:"discount,omitempty"`
	IsSelectable bool      `json:"is_selectable"`
}

type Reward struct {
	Item     CouponItem `json:"item"`
	Quantity int        `json:"quantity"`
}

type Discount struct {
	Percent string `json:"percent"`
}

// ApplyPromocodeRequest attaches a promocode to a cart.
type ApplyPromocodeRequest struct {
	CouponCode string  `json:"coupon_code"`
	Cart       CartRef `json:"cart"`
}

// RemovePromocodeRequest detaches the promocode from a cart.
type RemovePromocodeRequest struct {
	Cart CartRef `json:"cart"`
}

// CartRef identifies a cart; id "current" targets the user's
// current cart.
type CartRef struct {
	Id string `json:"id"`
}
