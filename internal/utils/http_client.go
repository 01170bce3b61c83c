// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"crypto/tls"
	"net"
	"net/http"

	"github.com/go-resty/resty/v2"
	"golang.org/x/net/http2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a client on the default HTTP/1.1 transport.
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}

// NewHTTP2Client creates a client that speaks HTTP/2 only. With plaintext
// set it uses prior-knowledge h2c over TCP, otherwise HTTP/2 over TLS 1.2+.
func NewHTTP2Client(plaintext bool) *HTTPClient {
	transport := &http2.Transport{
		TLSClientConfig: &tls.Config{MinVersion: tls.VersionTLS12},
	}
	if plaintext {
		transport.AllowHTTP = true
		transport.DialTLSContext = func(ctx context.Context, network, addr string, _ *tls.Config) (net.Conn, error) {
			var d net.Dialer
			return d.DialContext(ctx, network, addr)
		}
	}

	return &HTTPClient{Client: resty.NewWithClient(&http.Client{Transport: transport})}
}
