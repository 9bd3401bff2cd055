package dispatch

import (
	"net/http"
	"net/url"

	"github.com/xsolla/store-go/errors"
	"github.com/xsolla/store-go/retry"
)

// Request describes one logical API call. It is created per call and
// discarded after completion; the dispatcher never retains it.
type Request struct {
	// Method is the HTTP method.
	Method string

	// Path is the URL path relative to the transport's base URL,
	// with path parameters already substituted and escaped.
	Path string

	// Query holds the query parameters; values are percent-encoded
	// by the transport.
	Query url.Values

	// Header holds extra headers for this call, merged over the
	// transport's defaults.
	Header http.Header

	// Body is JSON-encoded and sent when non-nil.
	Body any

	// Into receives the decoded response body. Must be a pointer.
	Into any

	// Policy overrides the dispatcher's default retry policy when non-nil.
	Policy retry.Policy

	// Token guards the call. Nil means no explicit token; in sequential
	// mode the dispatcher then falls back to the calling task's token.
	Token *Token
}

// Result is the delivered outcome of a call: exactly one of Value or Err
// is populated. Cancellation produces no Result at all in callback mode.
type Result struct {
	// Value is the request's Into destination, populated on success.
	Value any
	Err   *errors.ApiError
}

func (r Result) Ok() bool {
	return r.Err == nil
}
