package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/xsolla/store-go/dispatch"
	"github.com/xsolla/store-go/logger"
	"github.com/xsolla/store-go/types"
)

var (
	PathOrder              = "v2/project/{project_id}/order/{order_id}"
	PathPaymentCart        = "v2/project/{project_id}/payment/cart"
	PathPaymentCartById    = "v2/project/{project_id}/payment/cart/{cart_id}"
	PathPaymentItem        = "v2/project/{project_id}/payment/item/{item_sku}"
	PathPaymentItemVirtual = "v2/project/{project_id}/payment/item/{item_sku}/virtual/{currency_sku}"
)

// Orders implements order creation and status polling. Creation returns
// a one-time payment token; what the payment UI does with it is entirely
// the provider's business and never this client's.
type Orders struct {
	api *apiClient
}

func NewOrdersApi(
	projectId string,
	dispatcher *dispatch.Dispatcher,
	logger logger.Logger,
) *Orders {
	return &Orders{
		api: newApiClient(projectId, dispatcher, logger),
	}
}

func (c *Orders) Get(ctx context.Context, orderId int, opts ...CallOption) (*types.Order, error) {
	var response types.Order
	path := c.api.path(PathOrder, "order_id", strconv.Itoa(orderId))
	return toNilErr(&response, c.api.getJson(ctx, path, nil, &response, opts))
}

func (c *Orders) GetAsync(orderId int, onComplete func(*types.Order, error), opts ...CallOption) {
	path := c.api.path(PathOrder, "order_id", strconv.Itoa(orderId))
	sendAsync[types.Order](c.api, http.MethodGet, path, nil, nil, onComplete, opts)
}

// CreateFromCart creates an order from the user's current cart.
func (c *Orders) CreateFromCart(
	ctx context.Context, request types.CreateOrderRequest, opts ...CallOption,
) (*types.CreateOrderResponse, error) {
	var response types.CreateOrderResponse
	path := c.api.path(PathPaymentCart)
	return toNilErr(&response, c.api.postJson(ctx, path, nil, request, &response, opts))
}

func (c *Orders) CreateFromCartAsync(
	request types.CreateOrderRequest, onComplete func(*types.CreateOrderResponse, error), opts ...CallOption,
) {
	path := c.api.path(PathPaymentCart)
	sendAsync[types.CreateOrderResponse](c.api, http.MethodPost, path, nil, request, onComplete, opts)
}

func (c *Orders) CreateFromCartById(
	ctx context.Context, cartId string, request types.CreateOrderRequest, opts ...CallOption,
) (*types.CreateOrderResponse, error) {
	var response types.CreateOrderResponse
	path := c.api.path(PathPaymentCartById, "cart_id", cartId)
	return toNilErr(&response, c.api.postJson(ctx, path, nil, request, &response, opts))
}

func (c *Orders) CreateFromCartByIdAsync(
	cartId string, request types.CreateOrderRequest, onComplete func(*types.CreateOrderResponse, error), opts ...CallOption,
) {
	path := c.api.path(PathPaymentCartById, "cart_id", cartId)
	sendAsync[types.CreateOrderResponse](c.api, http.MethodPost, path, nil, request, onComplete, opts)
}

// BuyItem creates a single-item order without touching the cart.
func (c *Orders) BuyItem(
	ctx context.Context, itemSku string, request types.CreateOrderRequest, opts ...CallOption,
) (*types.CreateOrderResponse, error) {
	var response types.CreateOrderResponse
	path := c.api.path(PathPaymentItem, "item_sku", itemSku)
	return toNilErr(&response, c.api.postJson(ctx, path, nil, request, &response, opts))
}

func (c *Orders) BuyItemAsync(
	itemSku string, request types.CreateOrderRequest, onComplete func(*types.CreateOrderResponse, error), opts ...CallOption,
) {
	path := c.api.path(PathPaymentItem, "item_sku", itemSku)
	sendAsync[types.CreateOrderResponse](c.api, http.MethodPost, path, nil, request, onComplete, opts)
}

// BuyItemWithVirtualCurrency pays for one item with an in-game currency;
// no payment UI is involved, the order settles server-side.
func (c *Orders) BuyItemWithVirtualCurrency(
	ctx context.Context, itemSku, currencySku string, opts ...CallOption,
) (*types.CreateOrderResponse, error) {
	var response types.CreateOrderResponse
	path := c.api.path(PathPaymentItemVirtual, "item_sku", itemSku, "currency_sku", currencySku)
	return toNilErr(&response, c.api.postJson(ctx, path, nil, nil, &response, opts))
}

func (c *Orders) BuyItemWithVirtualCurrencyAsync(
	itemSku, currencySku string, onComplete func(*types.CreateOrderResponse, error), opts ...CallOption,
) {
	path := c.api.path(PathPaymentItemVirtual, "item_sku", itemSku, "currency_sku", currencySku)
	sendAsync[types.CreateOrderResponse](c.api, http.MethodPost, path, nil, nil, onComplete, opts)
}
