package api

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/xsolla/store-go/dispatch"
	"github.com/xsolla/store-go/errors"
	"github.com/xsolla/store-go/logger"
	"github.com/xsolla/store-go/retry"
)

const (
	DefaultBaseUrl = "https://store.xsolla.com/api"
)

// apiClient is shared by all endpoint groups. It substitutes path
// parameters and forwards requests to the dispatcher, sequentially
// (the *Json helpers) or in callback mode (sendAsync).
type apiClient struct {
	projectId  string
	dispatcher *dispatch.Dispatcher
	logger     logger.Logger
}

func newApiClient(
	projectId string,
	dispatcher *dispatch.Dispatcher,
	logger logger.Logger,
) *apiClient {
	return &apiClient{
		projectId:  projectId,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// CallOption adjusts one request: a per-call retry policy or an explicit
// cancellation token.
type CallOption func(req *dispatch.Request)

// WithPolicy overrides the client's default retry policy for this call.
func WithPolicy(policy retry.Policy) CallOption {
	return func(req *dispatch.Request) {
		req.Policy = policy
	}
}

// WithToken guards this call with an explicit cancellation token instead
// of the one registered for the calling unit of work.
func WithToken(token *dispatch.Token) CallOption {
	return func(req *dispatch.Request) {
		req.Token = token
	}
}

// path substitutes {project_id} and the given name/value pairs into a
// path template, percent-encoding every value.
func (c *apiClient) path(template string, params ...string) string {
	p := strings.Replace(template, "{project_id}", url.PathEscape(c.projectId), 1)
	for i := 0; i+1 < len(params); i += 2 {
		p = strings.Replace(p, "{"+params[i]+"}", url.PathEscape(params[i+1]), 1)
	}
	return p
}

func (c *apiClient) getJson(
	ctx context.Context, path string, query url.Values, resData any, opts []CallOption,
) *errors.ApiError {
	return c.sendJson(ctx, http.MethodGet, path, query, nil, resData, opts)
}

func (c *apiClient) postJson(
	ctx context.Context, path string, query url.Values, reqData, resData any, opts []CallOption,
) *errors.ApiError {
	return c.sendJson(ctx, http.MethodPost, path, query, reqData, resData, opts)
}

func (c *apiClient) putJson(
	ctx context.Context, path string, query url.Values, reqData, resData any, opts []CallOption,
) *errors.ApiError {
	return c.sendJson(ctx, http.MethodPut, path, query, reqData, resData, opts)
}

func (c *apiClient) deleteJson(
	ctx context.Context, path string, query url.Values, resData any, opts []CallOption,
) *errors.ApiError {
	return c.sendJson(ctx, http.MethodDelete, path, query, nil, resData, opts)
}

func (c *apiClient) sendJson(
	ctx context.Context,
	httpMethod string,
	path string,
	query url.Values,
	reqData any,
	resData any,
	opts []CallOption,
) *errors.ApiError {
	req := &dispatch.Request{
		Method: httpMethod,
		Path:   path,
		Query:  query,
		Body:   reqData,
		Into:   resData,
	}
	for _, opt := range opts {
		opt(req)
	}
	return c.dispatcher.Await(ctx, req).Err
}

// sendAsync is the callback-mode twin of sendJson. onComplete receives
// the decoded response or the terminal error; it is never invoked when
// the call's token is cancelled before delivery.
func sendAsync[T any](
	c *apiClient,
	httpMethod string,
	path string,
	query url.Values,
	reqData any,
	onComplete func(*T, error),
	opts []CallOption,
) {
	into := new(T)
	req := &dispatch.Request{
		Method: httpMethod,
		Path:   path,
		Query:  query,
		Body:   reqData,
		Into:   into,
	}
	for _, opt := range opts {
		opt(req)
	}
	c.dispatcher.ExecuteAsync(req, func(res dispatch.Result) {
		if onComplete == nil {
			return
		}
		if res.Err != nil {
			onComplete(nil, res.Err)
			return
		}
		onComplete(into, nil)
	})
}

// toNilErr converts a *errors.ApiError type to be a true nil interface.
// Internally, a Go interface has a Type and Value.
// An interface value is nil only if the V and T are both unset.
// See: https://go.dev/doc/faq#nil_error
func toNilErr[T any](r T, e *errors.ApiError) (T, error) {
	if e != nil {
		return r, e
	}
	return r, nil
}
