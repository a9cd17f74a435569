package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// upstreamErrorBody is the part of a PostgREST error
// ({"code","message","details","hint"}) used for classification.
type upstreamErrorBody struct {
	Code string `json:"code"`
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	var parsed upstreamErrorBody
	if body != "" {
		_ = json.Unmarshal([]byte(body), &parsed)
	}

	return &UpstreamError{
		StatusCode: resp.StatusCode(),
		Body:       body,
		Code:       parsed.Code,
	}
}
