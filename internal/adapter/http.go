// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync/atomic"

	"github.com/MKhiriev/go-prop-sync/internal/config"
	"github.com/MKhiriev/go-prop-sync/internal/logger"
	"github.com/MKhiriev/go-prop-sync/internal/utils"
	"github.com/MKhiriev/go-prop-sync/models"
)

// TraceIDHeader carries the id of a single request through client and
// server logs.
const TraceIDHeader = "X-Trace-ID"

// Store API routes.
const (
	routeLogon       = "/api/session/logon"
	routeLoadObject  = "/api/object/load"
	routeSaveObject  = "/api/object/save"
	routeLoadProp    = "/api/object/prop"
	routeReadABProps = "/api/ab/props"
	routeUnsubscribe = "/api/notify/unsubscribe"
)

type httpTransport struct {
	client *utils.HTTPClient
	hasher *utils.Hasher

	baseURL string
	closed  atomic.Bool

	logger *logger.Logger
}

// NewHTTPTransport constructs the JSON over HTTP implementation of
// [Transport]. It normalises the base URL from adapterCfg.HTTPAddress and
// signs every request body with appCfg.HashKey.
//
// With adapterCfg.HTTP2 set the client speaks HTTP/2 only: over TLS for
// https addresses and h2c for plain http ones.
func NewHTTPTransport(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (Transport, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient()
	if adapterCfg.HTTP2 {
		client = utils.NewHTTP2Client(strings.HasPrefix(baseURL, "http://"))
	}
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpTransport{
		client:  client,
		hasher:  utils.NewHasher(appCfg.HashKey),
		baseURL: baseURL,
		logger:  logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Connected implements [Transport].
func (h *httpTransport) Connected() bool {
	return h.baseURL != "" && !h.closed.Load()
}

// Close implements [Transport].
func (h *httpTransport) Close() error {
	if h.closed.Swap(true) {
		return nil
	}
	h.client.GetClient().CloseIdleConnections()
	return nil
}

// Logon implements [Transport]. POST /api/session/logon.
func (h *httpTransport) Logon(ctx context.Context, credentials models.Credentials) (models.LogonResponse, error) {
	var resp models.LogonResponse
	if err := h.post(ctx, "", routeLogon, credentials, &resp); err != nil {
		return models.LogonResponse{}, err
	}

	if resp.Er == models.CodeSuccess {
		if exp, err := utils.SessionExpiry(resp.SessionID); err == nil {
			h.logger.Debug().Str("func", "*httpTransport.Logon").
				Str("user", credentials.Username).
				Time("expires_at", exp).
				Msg("session opened")
		}
	}
	return resp, nil
}

// LoadObject implements [Transport]. POST /api/object/load.
func (h *httpTransport) LoadObject(ctx context.Context, session string, req models.LoadObjectRequest) (models.ObjectResponse, error) {
	var resp models.ObjectResponse
	if err := h.post(ctx, session, routeLoadObject, req, &resp); err != nil {
		return models.ObjectResponse{}, err
	}
	return resp, nil
}

// SaveObject implements [Transport]. POST /api/object/save.
func (h *httpTransport) SaveObject(ctx context.Context, session string, req models.SaveObjectRequest) (models.ObjectResponse, error) {
	var resp models.ObjectResponse
	if err := h.post(ctx, session, routeSaveObject, req, &resp); err != nil {
		return models.ObjectResponse{}, err
	}
	return resp, nil
}

// LoadProp implements [Transport]. POST /api/object/prop.
func (h *httpTransport) LoadProp(ctx context.Context, session string, req models.LoadPropRequest) (models.LoadPropResponse, error) {
	var resp models.LoadPropResponse
	if err := h.post(ctx, session, routeLoadProp, req, &resp); err != nil {
		return models.LoadPropResponse{}, err
	}
	return resp, nil
}

// ReadABProps implements [Transport]. POST /api/ab/props.
func (h *httpTransport) ReadABProps(ctx context.Context, session string, req models.ReadPropsRequest) (models.ReadPropsResponse, error) {
	var resp models.ReadPropsResponse
	if err := h.post(ctx, session, routeReadABProps, req, &resp); err != nil {
		return models.ReadPropsResponse{}, err
	}
	return resp, nil
}

// NotifyUnsubscribe implements [Transport]. POST /api/notify/unsubscribe.
func (h *httpTransport) NotifyUnsubscribe(ctx context.Context, session string, req models.UnsubscribeRequest) (models.StatusResponse, error) {
	var resp models.StatusResponse
	if err := h.post(ctx, session, routeUnsubscribe, req, &resp); err != nil {
		return models.StatusResponse{}, err
	}
	return resp, nil
}

// post sends body as signed JSON and decodes the signed JSON answer into
// result. An empty session sends no Authorization header.
func (h *httpTransport) post(ctx context.Context, session, route string, body, result any) error {
	if h.closed.Load() {
		return fmt.Errorf("%w: %w", ErrTransport, ErrClosed)
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("%w: encode %s request: %w", ErrTransport, route, err)
	}

	traceID := utils.NewTraceID()
	req := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader(TraceIDHeader, traceID).
		SetHeader(utils.HashHeader, h.hasher.SumHex(payload)).
		SetBody(payload)
	if session != "" {
		req.SetAuthToken(session)
	}

	resp, err := req.Post(route)
	if err != nil {
		return fmt.Errorf("%w: %s request: %w", ErrTransport, route, err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().Str("func", "*httpTransport.post").
			Str("trace_id", traceID).
			Str("route", route).
			Int("status", resp.StatusCode()).
			Msg("request failed")
		return err
	}

	if sig := resp.Header().Get(utils.HashHeader); sig != "" && !h.hasher.Verify(resp.Body(), sig) {
		return fmt.Errorf("%w: %s: %w", ErrTransport, route, ErrBadSignature)
	}
	if err = json.Unmarshal(resp.Body(), result); err != nil {
		return fmt.Errorf("%w: decode %s response: %w", ErrTransport, route, err)
	}

	h.logger.Debug().Str("func", "*httpTransport.post").
		Str("trace_id", traceID).
		Str("route", route).
		Dur("took", resp.Time()).
		Msg("request done")
	return nil
}
