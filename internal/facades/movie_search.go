package facades

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sbilibin2017/gw-movie-lists/internal/logger"
)

// ErrUpstream is returned when the metadata API answers with a non-2xx status or an invalid body.
var ErrUpstream = errors.New("metadata api error")

// maxSearchBody caps how much of an upstream response is read.
const maxSearchBody = 4 << 20

// MovieSearchHTTPFacade queries the TMDB multi-search endpoint.
type MovieSearchHTTPFacade struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

// NewMovieSearchHTTPFacade creates a facade for the metadata API rooted at baseURL.
func NewMovieSearchHTTPFacade(baseURL, apiKey string, timeout time.Duration) *MovieSearchHTTPFacade {
	return &MovieSearchHTTPFacade{
		client:  &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
	}
}

// SearchMulti returns the upstream JSON payload for query unchanged.
func (f *MovieSearchHTTPFacade) SearchMulti(ctx context.Context, query string) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("api_key", f.apiKey)
	params.Set("language", "en-US")
	params.Set("query", query)
	params.Set("page", "1")
	params.Set("include_adult", "false")

	endpoint := f.baseURL + "/search/multi?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("failed to call metadata search", "query", query, "error", err)
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxSearchBody))
	if err != nil {
		logger.Log.Errorw("failed to read metadata search response", "query", query, "error", err)
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.Log.Errorw("metadata search returned error status",
			"query", query, "status", resp.StatusCode)
		return nil, fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	if !json.Valid(body) {
		logger.Log.Errorw("metadata search returned invalid json", "query", query)
		return nil, fmt.Errorf("%w: invalid json body", ErrUpstream)
	}

	return json.RawMessage(body), nil
}
