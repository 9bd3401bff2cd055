package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xsolla/store-go/logger"
	"github.com/xsolla/store-go/types"
)

func newTestCoupons(c *http.Client) *Coupons {
	return NewCouponsApi(testProjectId, testDispatcher(c, BearerAuth("user-jwt")), &logger.Noop{})
}

func Test_Coupons_Redeem(t *testing.T) {
	c := httpClient(
		[]byte(`{"items": [{"sku": "sword_100", "quantity": 1}]}`),
		200, nil,
	)
	coupons := newTestCoupons(c)

	request := types.RedeemCouponRequest{CouponCode: "WINTER2026"}
	res, err := coupons.Redeem(context.Background(), request)
	require.NoError(t, err)
	require.Equal(t, 1, len(res.Items))
	assert.Equal(t, "sword_100", res.Items[0].Sku)

	tr, _ := c.Transport.(*testTransport)
	assert.Equal(t, testBaseUrl+"/v2/project/44056/coupon/redeem", tr.Url())
	assert.Equal(t, http.MethodPost, tr.Method())

	var sent types.RedeemCouponRequest
	require.NoError(t, json.NewDecoder(tr.req.Body).Decode(&sent))
	assert.Equal(t, "WINTER2026", sent.CouponCode)
}

func Test_Coupons_Rewards(t *testing.T) {
	c := httpClient(
		[]byte(`{"bonus": [{"item": {"sku": "sword_100"}, "quantity": 1}], "is_selectable": false}`),
		200, nil,
	)
	coupons := newTestCoupons(c)

	res, err := coupons.Rewards(context.Background(), "WINTER2026")
	require.NoError(t, err)
	require.Equal(t, 1, len(res.Bonus))
	assert.False(t, res.IsSelectable)

	tr, _ := c.Transport.(*testTransport)
	assert.Equal(t, testBaseUrl+"/v2/project/44056/coupon/code/WINTER2026/rewards", tr.Url())
	assert.Equal(t, http.MethodGet, tr.Method())
}

func Test_Coupons_ApplyPromocode(t *testing.T) {
	c := httpClient(testCartBody, 200, nil)
	coupons := newTestCoupons(c)

	request := types.ApplyPromocodeRequest{
		CouponCode: "SAVE10",
		Cart:       types.CartRef{Id: "current"},
	}
	res, err := coupons.ApplyPromocode(context.Background(), request)
	require.NoError(t, err)
	assert.Equal(t, "cart-1", res.CartId)

	tr, _ := c.Transport.(*testTransport)
	assert.Equal(t, testBaseUrl+"/v2/project/44056/promocode/apply", tr.Url())

	var sent types.ApplyPromocodeRequest
	require.NoError(t, json.NewDecoder(tr.req.Body).Decode(&sent))
	assert.Equal(t, request, sent)
}

func Test_Coupons_RemovePromocode(t *testing.T) {
	c := httpClient(testCartBody, 200, nil)
	coupons := newTestCoupons(c)

	_, err := coupons.RemovePromocode(
		context.Background(),
		types.RemovePromocodeRequest{Cart: types.CartRef{Id: "cart-1"}},
	)
	require.NoError(t, err)

	tr, _ := c.Transport.(*testTransport)
	assert.Equal(t, testBaseUrl+"/v2/project/44056/promocode/remove", tr.Url())
	assert.Equal(t, http.MethodPost, tr.Method())
}

func Test_Coupons_PromocodeRewards(t *testing.T) {
	c := httpClient(
		[]byte(`{"discount": {"percent": "10"}, "is_selectable": false}`),
		200, nil,
	)
	coupons := newTestCoupons(c)

	res, err := coupons.PromocodeRewards(context.Background(), "SAVE10")
	require.NoError(t, err)
	require.NotNil(t, res.Discount)
	assert.Equal(t, "10", res.Discount.Percent)

	tr, _ := c.Transport.(*testTransport)
	assert.Equal(t, testBaseUrl+"/v2/project/44056/promocode/code/SAVE10/rewards", tr.Url())
}
