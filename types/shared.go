package types

// ErrorEnvelope is the error body returned by the store API
// for every non-2xx response.
type ErrorEnvelope struct {
	ErrorMessage string `json:"errorMessage"`
	ErrorCode    int    `json:"errorCode"`
}

// Price is a real-currency price. Amounts are decimal strings,
// exactly as the store returns them; the client never computes with them.
type Price struct {
	Amount                string `json:"amount"`
	AmountWithoutDiscount string `json:"amount_without_discount,omitempty"`
	Currency              string `json:"currency"`
}

// VirtualPrice is an in-game currency price of an item.
type VirtualPrice struct {
	Sku                   string `json:"sku"`
	Name                  string `json:"name,omitempty"`
	Amount                int    `json:"amount"`
	AmountWithoutDiscount int    `json:"amount_without_discount,omitempty"`
	ImageUrl              string `json:"image_url,omitempty"`
}

type Attribute struct {
	ExternalId string           `json:"external_id"`
	Name       string           `json:"name"`
	Values     []AttributeValue `json:"values,omitempty"`
}

type AttributeValue struct {
	ExternalId string `json:"external_id"`
	Value      string `json:"value"`
}
