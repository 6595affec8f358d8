package engine

import (
	"context"
	"crypto/tls"
	"io"
	"net/http"
	"net/url"
	"strings"

	"bytemomo/remora/internal/domain"
)

// maxResponseBytes bounds how much of a scoring endpoint's response is
// read; results only ever keep a short prefix of it.
const maxResponseBytes = 4096

// HTTPPoster submits flags over HTTP(S) as a form POST. All requests
// share one transport; the per-request timeout comes from the target.
type HTTPPoster struct {
	transport *http.Transport
}

var _ domain.Poster = (*HTTPPoster)(nil)

// NewHTTPPoster builds the production poster. TLS certificate
// verification follows the process-wide verify flag.
func NewHTTPPoster(verifyTLS bool) *HTTPPoster {
	return &HTTPPoster{
		transport: &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: !verifyTLS},
		},
	}
}

// Post performs one submission attempt. The flag travels as the "flag"
// form field; the target's static headers are attached verbatim.
func (p *HTTPPoster) Post(ctx context.Context, t domain.Target, flag domain.Flag) (domain.Response, error) {
	form := url.Values{"flag": {string(flag)}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.URL(), strings.NewReader(form.Encode()))
	if err != nil {
		return domain.Response{}, err
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for k, v := range t.Headers {
		req.Header.Set(k, v)
	}

	client := &http.Client{Transport: p.transport, Timeout: t.Timeout()}
	resp, err := client.Do(req)
	if err != nil {
		return domain.Response{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return domain.Response{}, err
	}

	return domain.Response{StatusCode: resp.StatusCode, Body: string(body)}, nil
}
