package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/roya-gateway/internal/config"
	"github.com/MKhiriev/roya-gateway/internal/logger"
	"github.com/MKhiriev/roya-gateway/internal/utils"
	"github.com/go-resty/resty/v2"
)

const (
	headerAPIKey = "apikey"
	headerPrefer = "Prefer"
	headerUpsert = "x-upsert"

	preferRepresentation = "return=representation"
	preferMinimal        = "return=minimal"
)

type restAdapter struct {
	data    *utils.HTTPClient
	storage *utils.HTTPClient

	storageURL string
	configured bool

	logger *logger.Logger
}

// NewRESTAdapter constructs the resty implementation of [RemoteAdapter].
// It normalises the data and storage base URLs from cfg and attaches the API
// key headers to both clients. StorageURL may be empty when uploads go to
// another object store.
//
// An empty cfg.APIKey is not an error: the adapter is built, reports
// Configured() == false, and refuses every call with [ErrNotConfigured].
func NewRESTAdapter(cfg config.Adapter, logger *logger.Logger) (RemoteAdapter, error) {
	dataURL, err := normalizeBaseURL(cfg.DataURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter data url: %w", err)
	}

	var storageURL string
	if strings.TrimSpace(cfg.StorageURL) != "" {
		storageURL, err = normalizeBaseURL(cfg.StorageURL)
		if err != nil {
			return nil, fmt.Errorf("invalid adapter storage url: %w", err)
		}
	}

	a := &restAdapter{
		data:       utils.NewHTTPClient(dataURL, cfg.RequestTimeout),
		storage:    utils.NewHTTPClient(storageURL, cfg.RequestTimeout),
		storageURL: storageURL,
		configured: cfg.APIKey != "",
		logger:     logger,
	}

	if a.configured {
		for _, c := range []*utils.HTTPClient{a.data, a.storage} {
			c.SetHeader(headerAPIKey, cfg.APIKey).SetAuthToken(cfg.APIKey)
		}
	}

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
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

// Configured implements [RemoteAdapter].
func (a *restAdapter) Configured() bool {
	return a.configured
}

// Select implements [DataAdapter].
func (a *restAdapter) Select(ctx context.Context, table string, q *Query, dest any) error {
	req, err := a.dataRequest(ctx, q)
	if err != nil {
		return err
	}

	resp, err := req.Get("/" + table)
	return a.finish(resp, err, http.MethodGet, table, q, dest)
}

// Insert implements [DataAdapter].
func (a *restAdapter) Insert(ctx context.Context, table string, q *Query, body any, dest any) error {
	req, err := a.dataRequest(ctx, q)
	if err != nil {
		return err
	}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetHeader(headerPrefer, prefer(dest)).
		SetBody(body).
		Post("/" + table)
	return a.finish(resp, err, http.MethodPost, table, q, dest)
}

// Update implements [DataAdapter].
func (a *restAdapter) Update(ctx context.Context, table string, q *Query, body any, dest any) error {
	req, err := a.dataRequest(ctx, q)
	if err != nil {
		return err
	}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetHeader(headerPrefer, prefer(dest)).
		SetBody(body).
		Patch("/" + table)
	return a.finish(resp, err, http.MethodPatch, table, q, dest)
}

// Delete implements [DataAdapter].
func (a *restAdapter) Delete(ctx context.Context, table string, q *Query, dest any) error {
	req, err := a.dataRequest(ctx, q)
	if err != nil {
		return err
	}

	resp, err := req.
		SetHeader(headerPrefer, prefer(dest)).
		Delete("/" + table)
	return a.finish(resp, err, http.MethodDelete, table, q, dest)
}

// PutObject implements [StorageAdapter]. The object is written with a PUT to
// /object/<bucket>/<key> and replaces any existing object under that key.
func (a *restAdapter) PutObject(ctx context.Context, bucket, key, contentType string, data []byte) error {
	if !a.configured {
		return ErrNotConfigured
	}

	resp, err := a.storage.R().
		SetContext(ctx).
		SetHeader("Content-Type", contentType).
		SetHeader(headerUpsert, "true").
		SetBody(data).
		Put(objectPath(bucket, key))
	if err != nil {
		return fmt.Errorf("%w: put object: %w", ErrUnavailable, err)
	}

	a.logger.Debug().
		Str("bucket", bucket).
		Str("key", key).
		Int("size", len(data)).
		Int("status", resp.StatusCode()).
		Msg("storage put object")

	return mapHTTPError(resp)
}

// DeleteObject implements [StorageAdapter].
func (a *restAdapter) DeleteObject(ctx context.Context, bucket, key string) error {
	if !a.configured {
		return ErrNotConfigured
	}

	resp, err := a.storage.R().
		SetContext(ctx).
		Delete(objectPath(bucket, key))
	if err != nil {
		return fmt.Errorf("%w: delete object: %w", ErrUnavailable, err)
	}

	return mapHTTPError(resp)
}

// PublicURL implements [StorageAdapter].
func (a *restAdapter) PublicURL(bucket, key string) string {
	return a.storageURL + "/object/public/" + url.PathEscape(bucket) + "/" + url.PathEscape(key)
}

func objectPath(bucket, key string) string {
	return "/object/" + url.PathEscape(bucket) + "/" + url.PathEscape(key)
}

func (a *restAdapter) dataRequest(ctx context.Context, q *Query) (*resty.Request, error) {
	if !a.configured {
		return nil, ErrNotConfigured
	}

	return a.data.R().
		SetContext(ctx).
		SetQueryParamsFromValues(q.Values()), nil
}

func (a *restAdapter) finish(resp *resty.Response, err error, method, table string, q *Query, dest any) error {
	if err != nil {
		return fmt.Errorf("%w: %s %s: %w", ErrUnavailable, method, table, err)
	}

	a.logger.Debug().
		Str("method", method).
		Str("table", table).
		Str("query", q.String()).
		Int("status", resp.StatusCode()).
		Dur("duration", resp.Time()).
		Msg("remote data call")

	if err = mapHTTPError(resp); err != nil {
		return err
	}

	return decode(resp.Body(), dest)
}

func prefer(dest any) string {
	if dest == nil {
		return preferMinimal
	}
	return preferRepresentation
}

func decode(body []byte, dest any) error {
	if dest == nil || len(body) == 0 {
		return nil
	}

	if raw, ok := dest.(*json.RawMessage); ok {
		*raw = append((*raw)[:0], body...)
		return nil
	}

	if err := json.Unmarshal(body, dest); err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}

	return nil
}
