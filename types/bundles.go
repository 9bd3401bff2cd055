package types

// Bundle groups several catalog items under a single price.
type Bundle struct {
	Sku               string          `json:"sku"`
	Name              string          `json:"name"`
	Description       string          `json:"description,omitempty"`
	ImageUrl          string          `json:"image_url,omitempty"`
	Groups            []ItemGroupRef  `json:"groups,omitempty"`
	Attributes        []Attribute     `json:"attributes,omitempty"`
	IsFree            bool            `json:"is_free"`
	Price             *Price          `json:"price,omitempty"`
	VirtualPrices     []VirtualPrice  `json:"virtual_prices,omitempty"`
	TotalContentPrice *Price          `json:"total_content_price,omitempty"`
	Content           []BundleContent `json:"content,omitempty"`
}

type BundleContent struct {
	Sku      string `json:"sku"`
	Name     string `json:"name,omitempty"`
	Type     string `json:"type,omitempty"`
	Quantity int    `json:"quantity"`
	Price    *Price `json:"price,omitempty"`
}

type Bundles struct {
	Items   []Bundle `json:"items"`
	HasMore bool     `json:"has_more"`
}
