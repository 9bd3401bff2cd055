package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/xsolla/store-go/dispatch"
	"github.com/xsolla/store-go/logger"
	"github.com/xsolla/store-go/types"
)

var (
	PathVirtualItems       = "v2/project/{project_id}/items/virtual_items"
	PathVirtualItemsGroup  = "v2/project/{project_id}/items/virtual_items/group/{external_id}"
	PathVirtualItemSku     = "v2/project/{project_id}/items/virtual_items/sku/{item_sku}"
	PathItemGroups         = "v2/project/{project_id}/items/groups"
	PathVirtualCurrency    = "v2/project/{project_id}/items/virtual_currency"
	PathVirtualCurrencySku = "v2/project/{project_id}/items/virtual_currency/sku/{currency_sku}"
	PathCurrencyPackages   = "v2/project/{project_id}/items/virtual_currency/package"
	PathBundles            = "v2/project/{project_id}/items/bundle"
	PathBundleSku          = "v2/project/{project_id}/items/bundle/sku/{bundle_sku}"
)

// Catalog implements the read-only storefront endpoints: virtual items,
// item groups, virtual currencies, currency packages and bundles.
// Catalog endpoints accept anonymous access.
type Catalog struct {
	api *apiClient
}

func NewCatalogApi(
	projectId string,
	dispatcher *dispatch.Dispatcher,
	logger logger.Logger,
) *Catalog {
	return &Catalog{
		api: newApiClient(projectId, dispatcher, logger),
	}
}

// CatalogQuery narrows and localizes catalog listings. The zero value
// requests the store's defaults.
type CatalogQuery struct {
	Limit     int
	Offset    int
	Locale    string
	Country   string
	Currency  string
	PromoCode string

	// AdditionalFields requests optional item fields, e.g. "media_list".
	AdditionalFields []string
}

func (q CatalogQuery) values() url.Values {
	values := url.Values{}
	if q.Limit > 0 {
		values.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Offset > 0 {
		values.Set("offset", strconv.Itoa(q.Offset))
	}
	if q.Locale != "" {
		values.Set("locale", q.Locale)
	}
	if q.Country != "" {
		values.Set("country", q.Country)
	}
	if q.Currency != "" {
		values.Set("currency", q.Currency)
	}
	if q.PromoCode != "" {
		values.Set("promo_code", q.PromoCode)
	}
	for _, f := range q.AdditionalFields {
		values.Add("additional_fields[]", f)
	}
	return values
}

func (c *Catalog) VirtualItems(
	ctx context.Context, query CatalogQuery, opts ...CallOption,
) (*types.Items, error) {
	var response types.Items
	path := c.api.path(PathVirtualItems)
	return toNilErr(&response, c.api.getJson(ctx, path, query.values(), &response, opts))
}

func (c *Catalog) VirtualItemsAsync(
	query CatalogQuery, onComplete func(*types.Items, error), opts ...CallOption,
) {
	path := c.api.path(PathVirtualItems)
	sendAsync(c.api, http.MethodGet, path, query.values(), nil, onComplete, opts)
}

func (c *Catalog) ItemsByGroup(
	ctx context.Context, externalId string, query CatalogQuery, opts ...CallOption,
) (*types.Items, error) {
	var response types.Items
	path := c.api.path(PathVirtualItemsGroup, "external_id", externalId)
	return toNilErr(&response, c.api.getJson(ctx, path, query.values(), &response, opts))
}

func (c *Catalog) ItemsByGroupAsync(
	externalId string, query CatalogQuery, onComplete func(*types.Items, error), opts ...CallOption,
) {
	path := c.api.path(PathVirtualItemsGroup, "external_id", externalId)
	sendAsync(c.api, http.MethodGet, path, query.values(), nil, onComplete, opts)
}

func (c *Catalog) ItemBySku(
	ctx context.Context, itemSku string, query CatalogQuery, opts ...CallOption,
) (*types.Item, error) {
	var response types.Item
	path := c.api.path(PathVirtualItemSku, "item_sku", itemSku)
	return toNilErr(&response, c.api.getJson(ctx, path, query.values(), &response, opts))
}

func (c *Catalog) ItemBySkuAsync(
	itemSku string, query CatalogQuery, onComplete func(*types.Item, error), opts ...CallOption,
) {
	path := c.api.path(PathVirtualItemSku, "item_sku", itemSku)
	sendAsync(c.api, http.MethodGet, path, query.values(), nil, onComplete, opts)
}

func (c *Catalog) Groups(
	ctx context.Context, query CatalogQuery, opts ...CallOption,
) (*types.ItemGroups, error) {
	var response types.ItemGroups
	path := c.api.path(PathItemGroups)
	return toNilErr(&response, c.api.getJson(ctx, path, query.values(), &response, opts))
}

func (c *Catalog) GroupsAsync(
	query CatalogQuery, onComplete func(*types.ItemGroups, error), opts ...CallOption,
) {
	path := c.api.path(PathItemGroups)
	sendAsync(c.api, http.MethodGet, path, query.values(), nil, onComplete, opts)
}

func (c *Catalog) VirtualCurrencies(
	ctx context.Context, query CatalogQuery, opts ...CallOption,
) (*types.Currencies, error) {
	var response types.Currencies
	path := c.api.path(PathVirtualCurrency)
	return toNilErr(&response, c.api.getJson(ctx, path, query.values(), &response, opts))
}

func (c *Catalog) VirtualCurrenciesAsync(
	query CatalogQuery, onComplete func(*types.Currencies, error), opts ...CallOption,
) {
	path := c.api.path(PathVirtualCurrency)
	sendAsync(c.api, http.MethodGet, path, query.values(), nil, onComplete, opts)
}

func (c *Catalog) VirtualCurrencyBySku(
	ctx context.Context, currencySku string, query CatalogQuery, opts ...CallOption,
) (*types.Currency, error) {
	var response types.Currency
	path := c.api.path(PathVirtualCurrencySku, "currency_sku", currencySku)
	return toNilErr(&response, c.api.getJson(ctx, path, query.values(), &response, opts))
}

func (c *Catalog) VirtualCurrencyBySkuAsync(
	currencySku string, query CatalogQuery, onComplete func(*types.Currency, error), opts ...CallOption,
) {
	path := c.api.path(PathVirtualCurrencySku, "currency_sku", currencySku)
	sendAsync(c.api, http.MethodGet, path, query.values(), nil, onComplete, opts)
}

func (c *Catalog) CurrencyPackages(
	ctx context.Context, query CatalogQuery, opts ...CallOption,
) (*types.CurrencyPackages, error) {
	var response types.CurrencyPackages
	path := c.api.path(PathCurrencyPackages)
	return toNilErr(&response, c.api.getJson(ctx, path, query.values(), &response, opts))
}

func (c *Catalog) CurrencyPackagesAsync(
	query CatalogQuery, onComplete func(*types.CurrencyPackages, error), opts ...CallOption,
) {
	path := c.api.path(PathCurrencyPackages)
	sendAsync(c.api, http.MethodGet, path, query.values(), nil, onComplete, opts)
}

func (c *Catalog) Bundles(
	ctx context.Context, query CatalogQuery, opts ...CallOption,
) (*types.Bundles, error) {
	var response types.Bundles
	path := c.api.path(PathBundles)
	return toNilErr(&response, c.api.getJson(ctx, path, query.values(), &response, opts))
}

func (c *Catalog) BundlesAsync(
	query CatalogQuery, onComplete func(*types.Bundles, error), opts ...CallOption,
) {
	path := c.api.path(PathBundles)
	sendAsync(c.api, http.MethodGet, path, query.values(), nil, onComplete, opts)
}

func (c *Catalog) BundleBySku(
	ctx context.Context, bundleSku string, query CatalogQuery, opts ...CallOption,
) (*types.Bundle, error) {
	var response types.Bundle
	path := c.api.path(PathBundleSku, "bundle_sku", bundleSku)
	return toNilErr(&response, c.api.getJson(ctx, path, query.values(), &response, opts))
}

func (c *Catalog) BundleBySkuAsync(
	bundleSku string, query CatalogQuery, onComplete func(*types.Bundle, error), opts ...CallOption,
) {
	path := c.api.path(PathBundleSku, "bundle_sku", bundleSku)
	sendAsync(c.api, http.MethodGet, path, query.values(), nil, onComplete, opts)
}
