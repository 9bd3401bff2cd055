package api

import (
	"context"
	"net/http"

	"github.com/xsolla/store-go/dispatch"
	"github.com/xsolla/store-go/logger"
	"github.com/xsolla/store-go/types"
)

var (
	PathCouponRedeem     = "v2/project/{project_id}/coupon/redeem"
	PathCouponRewards    = "v2/project/{project_id}/coupon/code/{coupon_code}/rewards"
	PathPromocodeApply   = "v2/project/{project_id}/promocode/apply"
	PathPromocodeRemove  = "v2/project/{project_id}/promocode/remove"
	PathPromocodeRewards = "v2/project/{project_id}/promocode/code/{promocode}/rewards"
)

// Coupons implements coupon redemption and cart promocodes. Coupons
// grant items directly; promocodes discount a cart until removed.
type Coupons struct {
	api *apiClient
}

func NewCouponsApi(
	projectId string,
	dispatcher *dispatch.Dispatcher,
	logger logger.Logger,
) *Coupons {
	return &Coupons{
		api: newApiClient(projectId, dispatcher, logger),
	}
}

func (c *Coupons) Redeem(
	ctx context.Context, request types.RedeemCouponRequest, opts ...CallOption,
) (*types.RedeemCouponResponse, error) {
	var response types.RedeemCouponResponse
	path := c.api.path(PathCouponRedeem)
	return toNilErr(&response, c.api.postJson(ctx, path, nil, request, &response, opts))
}

func (c *Coupons) RedeemAsync(
	request types.RedeemCouponRequest, onComplete func(*types.RedeemCouponResponse, error), opts ...CallOption,
) {
	path := c.api.path(PathCouponRedeem)
	sendAsync[types.RedeemCouponResponse](c.api, http.MethodPost, path, nil, request, onComplete, opts)
}

func (c *Coupons) Rewards(
	ctx context.Context, couponCode string, opts ...CallOption,
) (*types.Rewards, error) {
	var response types.Rewards
	path := c.api.path(PathCouponRewards, "coupon_code", couponCode)
	return toNilErr(&response, c.api.getJson(ctx, path, nil, &response, opts))
}

func (c *Coupons) RewardsAsync(
	couponCode string, onComplete func(*types.Rewards, error), opts ...CallOption,
) {
	path := c.api.path(PathCouponRewards, "coupon_code", couponCode)
	sendAsync[types.Rewards](c.api, http.MethodGet, path, nil, nil, onComplete, opts)
}

func (c *Coupons) ApplyPromocode(
	ctx context.Context, request types.ApplyPromocodeRequest, opts ...CallOption,
) (*types.Cart, error) {
	var response types.Cart
	path := c.api.path(PathPromocodeApply)
	return toNilErr(&response, c.api.postJson(ctx, path, nil, request, &response, opts))
}

func (c *Coupons) ApplyPromocodeAsync(
	request types.ApplyPromocodeRequest, onComplete func(*types.Cart, error), opts ...CallOption,
) {
	path := c.api.path(PathPromocodeApply)
	sendAsync[types.Cart](c.api, http.MethodPost, path, nil, request, onComplete, opts)
}

func (c *Coupons) RemovePromocode(
	ctx context.Context, request types.RemovePromocodeRequest, opts ...CallOption,
) (*types.Cart, error) {
	var response types.Cart
	path := c.api.path(PathPromocodeRemove)
	return toNilErr(&response, c.api.postJson(ctx, path, nil, request, &response, opts))
}

func (c *Coupons) RemovePromocodeAsync(
	request types.RemovePromocodeRequest, onComplete func(*types.Cart, error), opts ...CallOption,
) {
	path := c.api.path(PathPromocodeRemove)
	sendAsync[types.Cart](c.api, http.MethodPost, path, nil, request, onComplete, opts)
}

func (c *Coupons) PromocodeRewards(
	ctx context.Context, promocode string, opts ...CallOption,
) (*types.Rewards, error) {
	var response types.Rewards
	path := c.api.path(PathPromocodeRewards, "promocode", promocode)
	return toNilErr(&response, c.api.getJson(ctx, path, nil, &response, opts))
}

func (c *Coupons) PromocodeRewardsAsync(
	promocode string, onComplete func(*types.Rewards, error), opts ...CallOption,
) {
	path := c.api.path(PathPromocodeRewards, "promocode", promocode)
	sendAsync[types.Rewards](c.api, http.MethodGet, path, nil, nil, onComplete, opts)
}
