package types

// Item is a single virtual item as listed by the catalog endpoints.
type Item struct {
	Sku             string         `json:"sku"`
	Name            string         `json:"name"`
	Description     string         `json:"description,omitempty"`
	Type            string         `json:"type,omitempty"`
	VirtualItemType string         `json:"virtual_item_type,omitempty"`
	ImageUrl        string         `json:"image_url,omitempty"`
	Groups          []ItemGroupRef `json:"groups,omitempty"`
	Attributes      []Attribute    `json:"attributes,omitempty"`
	IsFree          bool           `json:"is_free"`
	Price           *Price         `json:"price,omitempty"`
	VirtualPrices   []VirtualPrice `json:"virtual_prices,omitempty"`
}

type ItemGroupRef struct {
	ExternalId string `json:"external_id"`
	Name       string `json:"name"`
}

type ItemGroup struct {
	ExternalId  string      `json:"external_id"`
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	ImageUrl    string      `json:"image_url,omitempty"`
	Order       int         `json:"order,omitempty"`
	Level       int         `json:"level,omitempty"`
	Children    []ItemGroup `json:"children,omitempty"`
}

// Items is a page of the virtual items catalog.
type Items struct {
	Items   []Item `json:"items"`
	HasMore bool   `json:"has_more"`
}

type ItemGroups struct {
	Groups []ItemGroup `json:"groups"`
}
