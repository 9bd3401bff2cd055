package dispatch

import (
	"github.com/xsolla/store-go/errors"
)

// Transport performs exactly one network exchange for a Request: no
// retries, no cancellation checks. It is the unit the dispatcher retries.
//
// A nil return means the response had a 2xx status and the body decoded
// into req.Into. Outcomes are classified as:
//   - network or timeout failure: TYPE_IO
//   - 2xx status but undecodable body: TYPE_JSON_PARSE,
//     ErrorMessage "unable to decode response"
//   - non-2xx status: TYPE_HTTP_STATUS carrying the store's
//     {errorMessage, errorCode} envelope when it decodes, falling back
//     to the decode failure when it does not
type Transport interface {
	Do(req *Request) *errors.ApiError
}
