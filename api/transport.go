package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/xsolla/store-go/dispatch"
	"github.com/xsolla/store-go/errors"
	"github.com/xsolla/store-go/logger"
	"github.com/xsolla/store-go/rate"
	"github.com/xsolla/store-go/types"
)

// httpTransport performs one HTTP exchange per Do call. Retries and
// cancellation belong to the dispatcher; the per-attempt timeout is the
// http.Client's Timeout, so a timed-out attempt surfaces as a TYPE_IO
// error and retries like any other failure.
type httpTransport struct {
	baseUrl    string
	auth       Authorization
	httpClient *http.Client
	limiter    rate.Limiter
	logger     logger.Logger
}

var _ dispatch.Transport = &httpTransport{}

func NewTransport(
	baseUrl string,
	auth Authorization,
	httpClient *http.Client,
	limiter rate.Limiter,
	log logger.Logger,
) dispatch.Transport {
	if limiter == nil {
		limiter = &rate.NoopLimiter{}
	}
	if log == nil {
		log = &logger.Noop{}
	}
	return &httpTransport{
		baseUrl:    baseUrl,
		auth:       auth,
		httpClient: httpClient,
		limiter:    limiter,
		logger:     log,
	}
}

func (t *httpTransport) Do(req *dispatch.Request) *errors.ApiError {
	endpoint := t.baseUrl + "/" + req.Path
	if len(req.Query) > 0 {
		endpoint += "?" + req.Query.Encode()
	}

	var reqBody io.Reader
	if req.Body != nil {
		data, jsonErr := json.Marshal(req.Body)
		if jsonErr != nil {
			return &errors.ApiError{
				Stage:     errors.STAGE_BEFORE_REQUEST,
				Type:      errors.TYPE_JSON_PARSE,
				SourceErr: jsonErr,
			}
		}
		reqBody = bytes.NewBuffer(data)
	}

	httpReq, err := http.NewRequest(req.Method, endpoint, reqBody)
	if err != nil {
		return &errors.ApiError{
			Stage:     errors.STAGE_BEFORE_REQUEST,
			Type:      errors.TYPE_REQUEST_PREP,
			SourceErr: err,
		}
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("X-Request-Id", uuid.NewString())
	for key, values := range req.Header {
		for _, value := range values {
			httpReq.Header.Add(key, value)
		}
	}
	t.auth.apply(httpReq)

	t.limiter.Limit(httpReq)
	t.logger.Debugf("api: %s %s", req.Method, endpoint)

	res, err := t.httpClient.Do(httpReq)
	if err != nil {
		return &errors.ApiError{
			Stage:     errors.STAGE_REQUEST,
			Type:      errors.TYPE_IO,
			SourceErr: err,
		}
	}

	var body []byte
	if res.Body != nil {
		body, err = io.ReadAll(res.Body)
		defer func() { _ = res.Body.Close() }()
		if err != nil {
			return &errors.ApiError{
				Stage:          errors.STAGE_AFTER_REQUEST,
				Type:           errors.TYPE_IO,
				Body:           body,
				HttpStatusCode: res.StatusCode,
				SourceErr:      err,
			}
		}
	}

	if res.StatusCode < http.StatusOK || res.StatusCode > 299 {
		apiErr := &errors.ApiError{
			Stage:          errors.STAGE_AFTER_REQUEST,
			Type:           errors.TYPE_HTTP_STATUS,
			Body:           body,
			HttpStatusCode: res.StatusCode,
		}
		envelope := types.ErrorEnvelope{}
		if json.Unmarshal(body, &envelope) == nil && envelope.ErrorMessage != "" {
			apiErr.ErrorMessage = envelope.ErrorMessage
			apiErr.ErrorCode = envelope.ErrorCode
		} else {
			// the envelope itself did not decode
			apiErr.Type = errors.TYPE_JSON_PARSE
			apiErr.ErrorMessage = errors.MSG_DECODE
		}
		t.logger.Debugf(
			"api: %s %s -> %d: %s",
			req.Method, endpoint, res.StatusCode, apiErr.ErrorMessage,
		)
		return apiErr
	}

	if req.Into == nil {
		return nil
	}
	if jsonErr := json.Unmarshal(body, req.Into); jsonErr != nil {
		return &errors.ApiError{
			Stage:          errors.STAGE_AFTER_REQUEST,
			Type:           errors.TYPE_JSON_PARSE,
			SourceErr:      jsonErr,
			Body:           body,
			HttpStatusCode: res.StatusCode,
			ErrorMessage:   errors.MSG_DECODE,
		}
	}
	return nil
}
