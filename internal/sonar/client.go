// Package sonar is the client façade for the server's web API: it waits
// for a submitted analysis to finish, fetches the quality-gate verdict,
// collects the new issues and resolves rule metadata.
package sonar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/msageha/gatecheck/internal/model"
)

// HTTPError is returned when the server answers with a non-OK status.
// URL carries the full request URL with its query parameters in sorted
// order so the failing call can be reproduced verbatim.
type HTTPError struct {
	URL  string
	Code int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("GET %s returned status %d", e.URL, e.Code)
}

// Client talks to one server on behalf of one analysis run. The component
// and rule caches are append-only for the client's lifetime: the project
// tree and the rule catalog do not change while a single analysis is
// being evaluated.
type Client struct {
	baseURL    string
	login      string
	password   string
	httpClient *http.Client
	logger     *zap.Logger

	queryMaxRetry int
	queryWait     time.Duration
	baseDir       string

	componentGroup singleflight.Group
	componentMu    sync.RWMutex
	componentFiles map[string]string

	ruleGroup singleflight.Group
	ruleMu    sync.RWMutex
	rules     map[string]model.Rule
}

// New builds a client from the config. Credentials are passed through to
// basic auth; a user token goes into login with an empty password.
func New(cfg model.Config, logger *zap.Logger) *Client {
	return &Client{
		baseURL:        strings.TrimRight(cfg.Server.URL, "/"),
		login:          cfg.Server.Login,
		password:       cfg.Server.Password,
		httpClient:     &http.Client{Timeout: 30 * time.Second},
		logger:         logger,
		queryMaxRetry:  cfg.Query.MaxRetry,
		queryWait:      cfg.Query.Wait(),
		baseDir:        cfg.Project.BaseDir,
		componentFiles: make(map[string]string),
		rules:          make(map[string]model.Rule),
	}
}

// getJSON performs one GET against the API and decodes the JSON response
// into out. url.Values.Encode keeps the query parameters sorted by key,
// which is also the order HTTPError reports them in.
func (c *Client) getJSON(ctx context.Context, apiPath string, params url.Values, out interface{}) error {
	u := c.baseURL + "/" + apiPath
	if query := params.Encode(); query != "" {
		u += "?" + query
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("create request for %s: %w", apiPath, err)
	}
	if c.login != "" {
		req.SetBasicAuth(c.login, c.password)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("call %s: %w", apiPath, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &HTTPError{URL: u, Code: resp.StatusCode}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", apiPath, err)
	}
	return nil
}
