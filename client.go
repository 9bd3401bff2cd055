package store_go

import (
	"context"
	"net/http"

	"github.com/xsolla/store-go/api"
	"github.com/xsolla/store-go/dispatch"
)

// Client is the entry point of the store SDK. It owns one request
// dispatcher shared by all endpoint groups, so a client-wide retry
// policy, rate limiter and in-flight bound apply across the board.
type Client struct {
	httpClient *http.Client
	dispatcher *dispatch.Dispatcher

	catalog      *api.Catalog
	cart         *api.Cart
	orders       *api.Orders
	coupons      *api.Coupons
	entitlements *api.Entitlements
}

func NewClient(projectId string, opts ...ConfigOption) *Client {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	httpClient := &http.Client{}
	httpClient.Transport = cfg.transport
	httpClient.Timeout = cfg.timeout

	transport := api.NewTransport(
		cfg.baseUrl, cfg.auth, httpClient, cfg.limiter, cfg.logger,
	)
	dispatcher := dispatch.NewDispatcher(
		transport,
		dispatch.WithPolicy(cfg.policy),
		dispatch.WithLogger(cfg.logger),
		dispatch.WithMaxInFlight(cfg.maxInFlight),
	)

	return &Client{
		httpClient:   httpClient,
		dispatcher:   dispatcher,
		catalog:      api.NewCatalogApi(projectId, dispatcher, cfg.logger),
		cart:         api.NewCartApi(projectId, dispatcher, cfg.logger),
		orders:       api.NewOrdersApi(projectId, dispatcher, cfg.logger),
		coupons:      api.NewCouponsApi(projectId, dispatcher, cfg.logger),
		entitlements: api.NewEntitlementsApi(projectId, dispatcher, cfg.logger),
	}
}

func (c *Client) Catalog() *api.Catalog {
	return c.catalog
}

func (c *Client) Cart() *api.Cart {
	return c.cart
}

func (c *Client) Orders() *api.Orders {
	return c.orders
}

func (c *Client) Coupons() *api.Coupons {
	return c.coupons
}

func (c *Client) Entitlements() *api.Entitlements {
	return c.entitlements
}

// NewToken returns a fresh cancellation token.
func NewToken() *dispatch.Token {
	return dispatch.NewToken()
}

// Run executes fn as one cancellable unit of work: sequential calls made
// with the supplied ctx are guarded by token, and cancelling it stops
// the whole chain. Failures inside fn are logged and reported as false,
// never propagated.
func (c *Client) Run(token *dispatch.Token, fn func(ctx context.Context) error) bool {
	return c.dispatcher.Run(token, fn)
}

// Wait drains all callback-mode calls dispatched so far. Useful on
// shutdown.
func (c *Client) Wait() {
	c.dispatcher.Wait()
}
