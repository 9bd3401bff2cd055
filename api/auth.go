package api

import (
	"encoding/base64"
	"net/http"
)

// Authorization selects the Authorization header variant sent with every
// request. The zero value is anonymous access, which the store allows for
// catalog endpoints only.
type Authorization struct {
	header string
}

// NoAuth returns anonymous access.
func NoAuth() Authorization {
	return Authorization{}
}

// BearerAuth authorizes requests with a user JWT. Required by cart,
// order, promotion and entitlement endpoints.
func BearerAuth(userToken string) Authorization {
	return Authorization{header: "Bearer " + userToken}
}

// BasicAuth authorizes server-to-server requests with the merchant id
// and API key pair.
func BasicAuth(merchantId, apiKey string) Authorization {
	creds := base64.StdEncoding.EncodeToString([]byte(merchantId + ":" + apiKey))
	return Authorization{header: "Basic " + creds}
}

func (a Authorization) apply(req *http.Request) {
	if a.header != "" {
		req.Header.Set("Authorization", a.header)
	}
}
