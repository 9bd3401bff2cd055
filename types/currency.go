package types

// Currency is a virtual currency as listed by the catalog.
type Currency struct {
	Sku           string         `json:"sku"`
	Name          string         `json:"name"`
	Description   string         `json:"description,omitempty"`
	Type          string         `json:"type,omitempty"`
	ImageUrl      string         `json:"image_url,omitempty"`
	IsFree        bool           `json:"is_free"`
	Price         *Price         `json:"price,omitempty"`
	VirtualPrices []VirtualPrice `json:"virtual_prices,omitempty"`
}

type Currencies struct {
	Items   []Currency `json:"items"`
	HasMore bool       `json:"has_more"`
}

// CurrencyPackage sells a fixed quantity of a virtual currency.
type CurrencyPackage struct {
	Sku         string           `json:"sku"`
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	ImageUrl    string           `json:"image_url,omitempty"`
	IsFree      bool             `json:"is_free"`
	Price       *Price           `json:"price,omitempty"`
	Content     []PackageContent `json:"content,omitempty"`
}

type PackageContent struct {
	Sku      string `json:"sku"`
	Name     string `json:"name,omitempty"`
	Quantity int    `json:"quantity"`
}

type CurrencyPackages struct {
	Items   []CurrencyPackage `json:"items"`
	HasMore bool              `json:"has_more"`
}
