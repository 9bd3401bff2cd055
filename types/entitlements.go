package types

// Entitlement is a game or DLC the user owns.
type Entitlement struct {
	Id         int    `json:"id"`
	Sku        string `json:"sku,omitempty"`
	Name       string `json:"name,omitempty"`
	Type       string `json:"type,omitempty"`
	ImageUrl   string `json:"image_url,omitempty"`
	IsRedeemed bool   `json:"is_redeemed"`
}

type Entitlements struct {
	Items []Entitlement `json:"items"`
}

// RedeemCodeRequest redeems a game code into an entitlement.
type RedeemCodeRequest struct {
	Code    string `json:"code"`
	Sandbox bool   `json:"sandbox,omitempty"`
}

// Game is an entry of the game-keys catalog.
type Game struct {
	Sku         string         `json:"sku"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Type        string         `json:"type,omitempty"`
	ImageUrl    string         `json:"image_url,omitempty"`
	Attributes  []Attribute    `json:"attributes,omitempty"`
	Groups      []ItemGroupRef `json:"groups,omitempty"`
	UnitItems   []GameUnit     `json:"unit_items,omitempty"`
}

// GameUnit is one purchasable key of a game, usually per DRM platform.
type GameUnit struct {
	Sku        string `json:"sku"`
	Type       string `json:"type,omitempty"`
	IsFree     bool   `json:"is_free"`
	Price      *Price `json:"price,omitempty"`
	DrmName    string `json:"drm_name,omitempty"`
	DrmSku     string `json:"drm_sku,omitempty"`
	HasKeys    bool   `json:"has_keys,omitempty"`
	IsPreOrder bool   `json:"is_pre_order,omitempty"`
}

type Games struct {
	Items   []Game `json:"items"`
	HasMore bool   `json:"has_more"`
}
