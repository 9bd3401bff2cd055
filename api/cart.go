package api

import (
	"context"
	"net/http"

	"github.com/xsolla/store-go/dispatch"
	"github.com/xsolla/store-go/logger"
	"github.com/xsolla/store-go/types"
)

var (
	PathCart          = "v2/project/{project_id}/cart"
	PathCartById      = "v2/project/{project_id}/cart/{cart_id}"
	PathCartClear     = "v2/project/{project_id}/cart/clear"
	PathCartByIdClear = "v2/project/{project_id}/cart/{cart_id}/clear"
	PathCartFill      = "v2/project/{project_id}/cart/fill"
	PathCartByIdFill  = "v2/project/{project_id}/cart/{cart_id}/fill"
	PathCartItem      = "v2/project/{project_id}/cart/item/{item_sku}"
	PathCartByIdItem  = "v2/project/{project_id}/cart/{cart_id}/item/{item_sku}"
)

// Cart implements the user cart endpoints. The "current" variants target
// the cart the store keeps per user; the ById variants target a named
// cart. All of them require BearerAuth and return the updated cart.
type Cart struct {
	api *apiClient
}

func NewCartApi(
	projectId string,
	dispatcher *dispatch.Dispatcher,
	logger logger.Logger,
) *Cart {
	return &Cart{
		api: newApiClient(projectId, dispatcher, logger),
	}
}

func (c *Cart) Current(ctx context.Context, opts ...CallOption) (*types.Cart, error) {
	var response types.Cart
	path := c.api.path(PathCart)
	return toNilErr(&response, c.api.getJson(ctx, path, nil, &response, opts))
}

func (c *Cart) CurrentAsync(onComplete func(*types.Cart, error), opts ...CallOption) {
	path := c.api.path(PathCart)
	sendAsync[types.Cart](c.api, http.MethodGet, path, nil, nil, onComplete, opts)
}

func (c *Cart) ById(ctx context.Context, cartId string, opts ...CallOption) (*types.Cart, error) {
	var response types.Cart
	path := c.api.path(PathCartById, "cart_id", cartId)
	return toNilErr(&response, c.api.getJson(ctx, path, nil, &response, opts))
}

func (c *Cart) ByIdAsync(cartId string, onComplete func(*types.Cart, error), opts ...CallOption) {
	path := c.api.path(PathCartById, "cart_id", cartId)
	sendAsync[types.Cart](c.api, http.MethodGet, path, nil, nil, onComplete, opts)
}

func (c *Cart) Clear(ctx context.Context, opts ...CallOption) (*types.Cart, error) {
	var response types.Cart
	path := c.api.path(PathCartClear)
	return toNilErr(&response, c.api.putJson(ctx, path, nil, nil, &response, opts))
}

func (c *Cart) ClearAsync(onComplete func(*types.Cart, error), opts ...CallOption) {
	path := c.api.path(PathCartClear)
	sendAsync[types.Cart](c.api, http.MethodPut, path, nil, nil, onComplete, opts)
}

func (c *Cart) ClearById(ctx context.Context, cartId string, opts ...CallOption) (*types.Cart, error) {
	var response types.Cart
	path := c.api.path(PathCartByIdClear, "cart_id", cartId)
	return toNilErr(&response, c.api.putJson(ctx, path, nil, nil, &response, opts))
}

func (c *Cart) ClearByIdAsync(cartId string, onComplete func(*types.Cart, error), opts ...CallOption) {
	path := c.api.path(PathCartByIdClear, "cart_id", cartId)
	sendAsync[types.Cart](c.api, http.MethodPut, path, nil, nil, onComplete, opts)
}

// Fill replaces the whole content of the current cart in one call.
func (c *Cart) Fill(
	ctx context.Context, request types.FillCartRequest, opts ...CallOption,
) (*types.Cart, error) {
	var response types.Cart
	path := c.api.path(PathCartFill)
	return toNilErr(&response, c.api.putJson(ctx, path, nil, request, &response, opts))
}

func (c *Cart) FillAsync(
	request types.FillCartRequest, onComplete func(*types.Cart, error), opts ...CallOption,
) {
	path := c.api.path(PathCartFill)
	sendAsync[types.Cart](c.api, http.MethodPut, path, nil, request, onComplete, opts)
}

func (c *Cart) FillById(
	ctx context.Context, cartId string, request types.FillCartRequest, opts ...CallOption,
) (*types.Cart, error) {
	var response types.Cart
	path := c.api.path(PathCartByIdFill, "cart_id", cartId)
	return toNilErr(&response, c.api.putJson(ctx, path, nil, request, &response, opts))
}

func (c *Cart) FillByIdAsync(
	cartId string, request types.FillCartRequest, onComplete func(*types.Cart, error), opts ...CallOption,
) {
	path := c.api.path(PathCartByIdFill, "cart_id", cartId)
	sendAsync[types.Cart](c.api, http.MethodPut, path, nil, request, onComplete, opts)
}

// UpdateItem sets the quantity of one item; quantity 0 is rejected by
// the store, use DeleteItem instead.
func (c *Cart) UpdateItem(
	ctx context.Context, itemSku string, quantity int, opts ...CallOption,
) (*types.Cart, error) {
	var response types.Cart
	path := c.api.path(PathCartItem, "item_sku", itemSku)
	request := types.UpdateCartItemRequest{Quantity: quantity}
	return toNilErr(&response, c.api.putJson(ctx, path, nil, request, &response, opts))
}

func (c *Cart) UpdateItemAsync(
	itemSku string, quantity int, onComplete func(*types.Cart, error), opts ...CallOption,
) {
	path := c.api.path(PathCartItem, "item_sku", itemSku)
	request := types.UpdateCartItemRequest{Quantity: quantity}
	sendAsync[types.Cart](c.api, http.MethodPut, path, nil, request, onComplete, opts)
}

func (c *Cart) UpdateItemById(
	ctx context.Context, cartId, itemSku string, quantity int, opts ...CallOption,
) (*types.Cart, error) {
	var response types.Cart
	path := c.api.path(PathCartByIdItem, "cart_id", cartId, "item_sku", itemSku)
	request := types.UpdateCartItemRequest{Quantity: quantity}
	return toNilErr(&response, c.api.putJson(ctx, path, nil, request, &response, opts))
}

func (c *Cart) UpdateItemByIdAsync(
	cartId, itemSku string, quantity int, onComplete func(*types.Cart, error), opts ...CallOption,
) {
	path := c.api.path(PathCartByIdItem, "cart_id", cartId, "item_sku", itemSku)
	request := types.UpdateCartItemRequest{Quantity: quantity}
	sendAsync[types.Cart](c.api, http.MethodPut, path, nil, request, onComplete, opts)
}

func (c *Cart) DeleteItem(ctx context.Context, itemSku string, opts ...CallOption) (*types.Cart, error) {
	var response types.Cart
	path := c.api.path(PathCartItem, "item_sku", itemSku)
	return toNilErr(&response, c.api.deleteJson(ctx, path, nil, &response, opts))
}

func (c *Cart) DeleteItemAsync(itemSku string, onComplete func(*types.Cart, error), opts ...CallOption) {
	path := c.api.path(PathCartItem, "item_sku", itemSku)
	sendAsync[types.Cart](c.api, http.MethodDelete, path, nil, nil, onComplete, opts)
}

func (c *Cart) DeleteItemById(
	ctx context.Context, cartId, itemSku string, opts ...CallOption,
) (*types.Cart, error) {
	var response types.Cart
	path := c.api.path(PathCartByIdItem, "cart_id", cartId, "item_sku", itemSku)
	return toNilErr(&response, c.api.deleteJson(ctx, path, nil, &response, opts))
}

func (c *Cart) DeleteItemByIdAsync(
	cartId, itemSku string, onComplete func(*types.Cart, error), opts ...CallOption,
) {
	path := c.api.path(PathCartByIdItem, "cart_id", cartId, "item_sku", itemSku)
	sendAsync[types.Cart](c.api, http.MethodDelete, path, nil, nil, onComplete, opts)
}
