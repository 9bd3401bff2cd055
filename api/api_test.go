package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xsolla/store-go/dispatch"
	"github.com/xsolla/store-go/errors"
	"github.com/xsolla/store-go/logger"
	"github.com/xsolla/store-go/types"
)

const (
	testProjectId = "44056"
	testBaseUrl   = "https://store.xsolla.com/api"
)

func testDispatcher(c *http.Client, auth Authorization) *dispatch.Dispatcher {
	transport := NewTransport(testBaseUrl, auth, c, nil, nil)
	return dispatch.NewDispatcher(transport)
}

func Test_Transport_Do(t *testing.T) {
	testCases := []struct {
		name         string
		resBody      []byte
		resCode      int
		resErr       error
		expectErr    bool
		expectType   string
		expectMsg    string
		expectCode   int
		expectStatus int
	}{
		{
			name:    "200 OK",
			resBody: []byte(`{"order_id": 1, "status": "new"}`),
			resCode: 200,
		},
		{
			name:    "201 is a success too",
			resBody: []byte(`{"order_id": 2, "status": "new"}`),
			resCode: 201,
		},
		{
			name:         "malformed json on a 2xx",
			resBody:      []byte(`{"order_id":`),
			resCode:      200,
			expectErr:    true,
			expectType:   errors.TYPE_JSON_PARSE,
			expectMsg:    errors.MSG_DECODE,
			expectStatus: 200,
		},
		{
			name:         "404 with an error envelope",
			resBody:      []byte(`{"errorMessage": "not found", "errorCode": 404}`),
			resCode:      404,
			expectErr:    true,
			expectType:   errors.TYPE_HTTP_STATUS,
			expectMsg:    "not found",
			expectCode:   404,
			expectStatus: 404,
		},
		{
			name:         "500 without a decodable envelope",
			resBody:      []byte(`upstream exploded`),
			resCode:      500,
			expectErr:    true,
			expectType:   errors.TYPE_JSON_PARSE,
			expectMsg:    errors.MSG_DECODE,
			expectStatus: 500,
		},
		{
			name:       "network error",
			resErr:     fmt.Errorf("connection reset"),
			expectErr:  true,
			expectType: errors.TYPE_IO,
		},
	}

	for _, tt := range testCases {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := httpClient(tt.resBody, tt.resCode, tt.resErr)
			transport := NewTransport(testBaseUrl, NoAuth(), c, nil, &logger.Noop{})

			var order types.Order
			err := transport.Do(&dispatch.Request{
				Method: http.MethodGet,
				Path:   "v2/project/44056/order/1",
				Into:   &order,
			})

			tr, _ := c.Transport.(*testTransport)
			assert.Equal(t, testBaseUrl+"/v2/project/44056/order/1", tr.Url())
			assert.Equal(t, http.MethodGet, tr.Method())
			assert.NotEmpty(t, tr.req.Header.Get("X-Request-Id"))
			assert.Equal(t, "application/json", tr.req.Header.Get("Content-Type"))

			if !tt.expectErr {
				assert.Nil(t, err)
				assert.NotZero(t, order.OrderId)
				return
			}
			assert.NotNil(t, err)
			assert.Equal(t, tt.expectType, err.Type)
			assert.Equal(t, tt.expectMsg, err.ErrorMessage)
			assert.Equal(t, tt.expectCode, err.ErrorCode)
			assert.Equal(t, tt.expectStatus, err.HttpStatusCode)
		})
	}
}

func Test_Transport_QueryAndBody(t *testing.T) {
	c := httpClient([]byte(`{}`), 200, nil)
	transport := NewTransport(testBaseUrl, NoAuth(), c, nil, nil)

	body := types.UpdateCartItemRequest{Quantity: 3}
	var into map[string]any
	err := transport.Do(&dispatch.Request{
		Method: http.MethodPut,
		Path:   "v2/project/44056/cart/item/sword%2F100",
		Query:  map[string][]string{"locale": {"en"}, "limit": {"5"}},
		Body:   body,
		Into:   &into,
	})
	assert.Nil(t, err)

	tr, _ := c.Transport.(*testTransport)
	assert.Equal(
		t,
		testBaseUrl+"/v2/project/44056/cart/item/sword%2F100?limit=5&locale=en",
		tr.Url(),
	)

	var sent types.UpdateCartItemRequest
	assert.NoError(t, json.NewDecoder(tr.req.Body).Decode(&sent))
	assert.Equal(t, body, sent)
}

func Test_Transport_Auth(t *testing.T) {
	testCases := []struct {
		name   string
		auth   Authorization
		expect string
	}{
		{
			name: "anonymous",
			auth: NoAuth(),
		},
		{
			name:   "user token",
			auth:   BearerAuth("user-jwt"),
			expect: "Bearer user-jwt",
		},
		{
			name: "server credentials",
			auth: BasicAuth("merchant-1", "key-1"),
			// base64("merchant-1:key-1")
			expect: "Basic bWVyY2hhbnQtMTprZXktMQ==",
		},
	}

	for _, tt := range testCases {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := httpClient([]byte(`{}`), 200, nil)
			transport := NewTransport(testBaseUrl, tt.auth, c, nil, nil)

			var into map[string]any
			err := transport.Do(&dispatch.Request{
				Method: http.MethodGet,
				Path:   "v2/project/44056/items/groups",
				Into:   &into,
			})
			assert.Nil(t, err)

			tr, _ := c.Transport.(*testTransport)
			assert.Equal(t, tt.expect, tr.AuthHeader())
		})
	}
}

func Test_Transport_ClosesBody(t *testing.T) {
	c := httpClient([]byte(`{}`), 200, nil)
	transport := NewTransport(testBaseUrl, NoAuth(), c, nil, nil)

	var into map[string]any
	err := transport.Do(&dispatch.Request{
		Method: http.MethodGet,
		Path:   "v2/project/44056/items/groups",
		Into:   &into,
	})
	assert.Nil(t, err)

	tr, _ := c.Transport.(*testTransport)
	cl, _ := tr.res.Body.(*testReader)
	assert.Equal(t, cl.isRead, cl.isClosed)
}

func Test_apiClient_path(t *testing.T) {
	api := newApiClient(testProjectId, nil, &logger.Noop{})

	assert.Equal(
		t,
		"v2/project/44056/items/virtual_items",
		api.path(PathVirtualItems),
	)
	assert.Equal(
		t,
		"v2/project/44056/cart/cart-1/item/sword%2F100",
		api.path(PathCartByIdItem, "cart_id", "cart-1", "item_sku", "sword/100"),
	)
}

func Test_toNilErr(t *testing.T) {
	var err *errors.ApiError
	var err2 error = err
	if err2 == nil {
		assert.Fail(t, "An interface value is nil only if the V and T are both unset.")
	}

	var err3 error
	_, err3 = toNilErr("ignore", err)
	if err3 != nil {
		assert.Fail(t, "Must be nil")
	}
}

func Test_getJson_ThroughDispatcher(t *testing.T) {
	c := httpClient([]byte(`{"groups": []}`), 200, nil)
	api := newApiClient(testProjectId, testDispatcher(c, NoAuth()), &logger.Noop{})

	var groups types.ItemGroups
	err := api.getJson(context.Background(), api.path(PathItemGroups), nil, &groups, nil)
	assert.Nil(t, err)

	tr, _ := c.Transport.(*testTransport)
	assert.Equal(t, testBaseUrl+"/v2/project/44056/items/groups", tr.Url())
}

func httpClient(body []byte, code int, err error) *http.Client {
	res := &http.Response{
		StatusCode: code,
		Body:       &testReader{Reader: bytes.NewBuffer(body)},
	}
	return &http.Client{
		Transport: &testTransport{res: res, err: err},
	}
}

type testTransport struct {
	req *http.Request
	res *http.Response
	err error
}

func (t *testTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	t.req = req
	return t.res, t.err
}

func (t *testTransport) Method() string {
	return t.req.Method
}

func (t *testTransport) Url() string {
	return t.req.URL.String()
}

func (t *testTransport) AuthHeader() string {
	return t.req.Header.Get("Authorization")
}

type testReader struct {
	isClosed bool
	isRead   bool
	io.Reader
}

func (c *testReader) Close() error {
	c.isClosed = true
	return nil
}

func (c *testReader) Read(p []byte) (n int, err error) {
	c.isRead = true
	return c.Reader.Read(p)
}
