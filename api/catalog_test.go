package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xsolla/store-go/errors"
	"github.com/xsolla/store-go/logger"
	"github.com/xsolla/store-go/types"
)

func newTestCatalog(c *http.Client) *Catalog {
	return NewCatalogApi(testProjectId, testDispatcher(c, NoAuth()), &logger.Noop{})
}

func Test_Catalog_VirtualItems(t *testing.T) {
	testCases := []struct {
		name        string
		query       CatalogQuery
		resBody     []byte
		resCode     int
		expectUrl   string
		expectItems int
		expectErr   bool
	}{
		{
			name:        "default query",
			resBody:     []byte(`{"items": [{"sku": "sword_100", "name": "Epic Sword"}], "has_more": false}`),
			resCode:     200,
			expectUrl:   testBaseUrl + "/v2/project/44056/items/virtual_items",
			expectItems: 1,
		},
		{
			name: "paged and localized",
			query: CatalogQuery{
				Limit:  5,
				Offset: 10,
				Locale: "en",
			},
			resBody:   []byte(`{"items": [], "has_more": true}`),
			resCode:   200,
			expectUrl: testBaseUrl + "/v2/project/44056/items/virtual_items?limit=5&locale=en&offset=10",
		},
		{
			name: "promo code and additional fields",
			query: CatalogQuery{
				PromoCode:        "WINTER",
				AdditionalFields: []string{"media_list"},
			},
			resBody:   []byte(`{"items": [], "has_more": false}`),
			resCode:   200,
			expectUrl: testBaseUrl + "/v2/project/44056/items/virtual_items?additional_fields%5B%5D=media_list&promo_code=WINTER",
		},
		{
			name:      "project not found",
			resBody:   []byte(`{"errorMessage": "Project not found", "errorCode": 404}`),
			resCode:   404,
			expectUrl: testBaseUrl + "/v2/project/44056/items/virtual_items",
			expectErr: true,
		},
	}

	for _, tt := range testCases {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := httpClient(tt.resBody, tt.resCode, nil)
			catalog := newTestCatalog(c)

			res, err := catalog.VirtualItems(context.Background(), tt.query)

			tr, _ := c.Transport.(*testTransport)
			assert.Equal(t, tt.expectUrl, tr.Url())
			assert.Equal(t, http.MethodGet, tr.Method())

			if tt.expectErr {
				require.Error(t, err)
				apiErr := err.(*errors.ApiError)
				assert.Equal(t, tt.resCode, apiErr.HttpStatusCode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectItems, len(res.Items))
		})
	}
}

func Test_Catalog_ItemBySku(t *testing.T) {
	c := httpClient(
		[]byte(`{"sku": "sword_100", "name": "Epic Sword", "price": {"amount": "4.99", "currency": "USD"}}`),
		200, nil,
	)
	catalog := newTestCatalog(c)

	item, err := catalog.ItemBySku(context.Background(), "sword_100", CatalogQuery{Currency: "USD"})
	require.NoError(t, err)
	assert.Equal(t, "Epic Sword", item.Name)
	assert.Equal(t, "4.99", item.Price.Amount)

	tr, _ := c.Transport.(*testTransport)
	assert.Equal(
		t,
		testBaseUrl+"/v2/project/44056/items/virtual_items/sku/sword_100?currency=USD",
		tr.Url(),
	)
}

func Test_Catalog_ItemsByGroup_EscapesExternalId(t *testing.T) {
	c := httpClient([]byte(`{"items": [], "has_more": false}`), 200, nil)
	catalog := newTestCatalog(c)

	_, err := catalog.ItemsByGroup(context.Background(), "starter pack", CatalogQuery{})
	require.NoError(t, err)

	tr, _ := c.Transport.(*testTransport)
	assert.Equal(
		t,
		testBaseUrl+"/v2/project/44056/items/virtual_items/group/starter%20pack",
		tr.Url(),
	)
}

func Test_Catalog_VirtualCurrencies(t *testing.T) {
	c := httpClient(
		[]byte(`{"items": [{"sku": "gold", "name": "Gold"}], "has_more": false}`),
		200, nil,
	)
	catalog := newTestCatalog(c)

	res, err := catalog.VirtualCurrencies(context.Background(), CatalogQuery{})
	require.NoError(t, err)
	require.Equal(t, 1, len(res.Items))
	assert.Equal(t, "gold", res.Items[0].Sku)
}

func Test_Catalog_Bundles(t *testing.T) {
	c := httpClient(
		[]byte(`{"items": [{"sku": "starter", "content": [{"sku": "sword_100", "quantity": 1}]}], "has_more": false}`),
		200, nil,
	)
	catalog := newTestCatalog(c)

	res, err := catalog.Bundles(context.Background(), CatalogQuery{})
	require.NoError(t, err)
	require.Equal(t, 1, len(res.Items))
	assert.Equal(t, "sword_100", res.Items[0].Content[0].Sku)

	tr, _ := c.Transport.(*testTransport)
	assert.Equal(t, testBaseUrl+"/v2/project/44056/items/bundle", tr.Url())
}

func Test_Catalog_VirtualItemsAsync(t *testing.T) {
	c := httpClient(
		[]byte(`{"items": [{"sku": "sword_100"}], "has_more": false}`),
		200, nil,
	)
	dispatcher := testDispatcher(c, NoAuth())
	catalog := NewCatalogApi(testProjectId, dispatcher, &logger.Noop{})

	var got int
	var gotErr error
	catalog.VirtualItemsAsync(CatalogQuery{}, func(items *types.Items, err error) {
		if items != nil {
			got = len(items.Items)
		}
		gotErr = err
	})
	dispatcher.Wait()

	require.NoError(t, gotErr)
	assert.Equal(t, 1, got)
}
