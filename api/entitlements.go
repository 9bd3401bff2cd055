package api

import (
	"context"
	"net/http"

	"github.com/xsolla/store-go/dispatch"
	"github.com/xsolla/store-go/logger"
	"github.com/xsolla/store-go/types"
)

var (
	PathEntitlements      = "v2/project/{project_id}/entitlement"
	PathEntitlementRedeem = "v2/project/{project_id}/entitlement/redeem"
	PathGames             = "v2/project/{project_id}/items/game"
	PathGameSku           = "v2/project/{project_id}/items/game/sku/{game_sku}"
)

// Entitlements implements the game-keys surface: what the user owns,
// code redemption and the games catalog.
type Entitlements struct {
	api *apiClient
}

func NewEntitlementsApi(
	projectId string,
	dispatcher *dispatch.Dispatcher,
	logger logger.Logger,
) *Entitlements {
	return &Entitlements{
		api: newApiClient(projectId, dispatcher, logger),
	}
}

func (c *Entitlements) List(ctx context.Context, opts ...CallOption) (*types.Entitlements, error) {
	var response types.Entitlements
	path := c.api.path(PathEntitlements)
	return toNilErr(&response, c.api.getJson(ctx, path, nil, &response, opts))
}

func (c *Entitlements) ListAsync(onComplete func(*types.Entitlements, error), opts ...CallOption) {
	path := c.api.path(PathEntitlements)
	sendAsync[types.Entitlements](c.api, http.MethodGet, path, nil, nil, onComplete, opts)
}

func (c *Entitlements) RedeemCode(
	ctx context.Context, request types.RedeemCodeRequest, opts ...CallOption,
) (*types.Entitlement, error) {
	var response types.Entitlement
	path := c.api.path(PathEntitlementRedeem)
	return toNilErr(&response, c.api.postJson(ctx, path, nil, request, &response, opts))
}

func (c *Entitlements) RedeemCodeAsync(
	request types.RedeemCodeRequest, onComplete func(*types.Entitlement, error), opts ...CallOption,
) {
	path := c.api.path(PathEntitlementRedeem)
	sendAsync[types.Entitlement](c.api, http.MethodPost, path, nil, request, onComplete, opts)
}

func (c *Entitlements) Games(
	ctx context.Context, query CatalogQuery, opts ...CallOption,
) (*types.Games, error) {
	var response types.Games
	path := c.api.path(PathGames)
	return toNilErr(&response, c.api.getJson(ctx, path, query.values(), &response, opts))
}

func (c *Entitlements) GamesAsync(
	query CatalogQuery, onComplete func(*types.Games, error), opts ...CallOption,
) {
	path := c.api.path(PathGames)
	sendAsync[types.Games](c.api, http.MethodGet, path, query.values(), nil, onComplete, opts)
}

func (c *Entitlements) GameBySku(
	ctx context.Context, gameSku string, query CatalogQuery, opts ...CallOption,
) (*types.Game, error) {
	var response types.Game
	path := c.api.path(PathGameSku, "game_sku", gameSku)
	return toNilErr(&response, c.api.getJson(ctx, path, query.values(), &response, opts))
}

func (c *Entitlements) GameBySkuAsync(
	gameSku string, query CatalogQuery, onComplete func(*types.Game, error), opts ...CallOption,
) {
	path := c.api.path(PathGameSku, "game_sku", gameSku)
	sendAsync[types.Game](c.api, http.MethodGet, path, query.values(), nil, onComplete, opts)
}
