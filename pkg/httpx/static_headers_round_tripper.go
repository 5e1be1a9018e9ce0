package httpx

import (
	"fmt"
	"net/http"
)

// StaticHeadersRoundTripper attaches a fixed set of headers to every outgoing
// request. Headers already present on the request are left untouched.
type StaticHeadersRoundTripper struct {
	next    http.RoundTripper
	headers http.Header
}

func NewStaticHeadersRoundTripper(
	next http.RoundTripper,
	headers http.Header,
) StaticHeadersRoundTripper {
	return StaticHeadersRoundTripper{
		next:    next,
		headers: headers.Clone(),
	}
}

func (rt StaticHeadersRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())

	for name, values := range rt.headers {
		if req.Header.Get(name) != "" {
			continue
		}

		req.Header[name] = values
	}

	resp, err := rt.next.RoundTrip(req)
	if err != nil {
		return nil, fmt.Errorf("next.RoundTrip: %w", err)
	}

	return resp, nil
}
