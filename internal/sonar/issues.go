package sonar

import (
	"context"
	"fmt"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/msageha/gatecheck/internal/model"
)

// maxSearchIssues caps how many issues a run will page through no matter
// what total the server reports.
const maxSearchIssues = 10000

// NewIssues fetches every unresolved issue of the project across pages
// and resolves each issue's component to an absolute file path. The page
// count is computed once from the first response and trusted for the
// rest of the run; a total that moves between calls is not reconciled.
func (c *Client) NewIssues(ctx context.Context, projectKey, branch string) ([]model.Issue, error) {
	var issues []model.Issue

	page, pages := 1, 0
	for pages == 0 || page <= pages {
		resp, err := c.searchIssues(ctx, projectKey, branch, page)
		if err != nil {
			return nil, err
		}
		if pages == 0 {
			pages = pageCount(resp.Total, resp.PageSize)
			c.logger.Debug("paging issue search",
				zap.Int64("total", resp.Total),
				zap.Int("page_size", resp.PageSize),
				zap.Int("pages", pages))
		}
		batch, err := c.toIssues(ctx, resp, branch)
		if err != nil {
			return nil, err
		}
		issues = append(issues, batch...)
		page++
	}
	return issues, nil
}

// pageCount derives how many pages to fetch from the reported total,
// bounded by the maxSearchIssues safety cap. The +1 on the page size
// mirrors the server's pagination math and keeps the division safe for
// a zero page size.
func pageCount(total int64, pageSize int) int {
	maxPages := maxSearchIssues/(pageSize+1) + 1
	pages := int(total/int64(pageSize+1)) + 1
	if pages > maxPages {
		return maxPages
	}
	return pages
}

func (c *Client) searchIssues(ctx context.Context, projectKey, branch string, page int) (*issuesSearchResponse, error) {
	params := url.Values{}
	params.Set("componentKeys", projectKey)
	params.Set("p", strconv.Itoa(page))
	params.Set("resolved", "false")
	if strings.TrimSpace(branch) != "" {
		params.Set("branch", branch)
	}

	var resp issuesSearchResponse
	if err := c.getJSON(ctx, "api/issues/search", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) toIssues(ctx context.Context, resp *issuesSearchResponse, branch string) ([]model.Issue, error) {
	issues := make([]model.Issue, 0, len(resp.Issues))
	for _, wi := range resp.Issues {
		var file string
		if comp := findFileComponent(resp.Components, wi.Component); comp != nil {
			rel, err := c.componentFile(ctx, comp.Key, branch)
			if err != nil {
				return nil, fmt.Errorf("resolve file for component %s: %w", comp.Key, err)
			}
			file = filepath.Join(c.baseDir, rel)
		}
		issues = append(issues, model.Issue{
			Key:          wi.Key,
			RuleKey:      wi.Rule,
			ComponentKey: wi.Component,
			File:         file,
			Line:         wi.Line,
			Message:      wi.Message,
			Severity:     model.Severity(wi.Severity),
			// Only unresolved issues of the analysis under evaluation
			// are fetched, so every one of them is new.
			New: true,
		})
	}
	return issues, nil
}

// findFileComponent returns the component owning the issue when that
// component is file-like; project, module and directory components are
// not resolvable to a single file.
func findFileComponent(components []wireComponent, key string) *wireComponent {
	for i := range components {
		comp := &components[i]
		if comp.Key == key && model.Qualifier(comp.Qualifier).File() {
			return comp
		}
	}
	return nil
}

// componentFile resolves a component key to its repository-relative path,
// memoized for the client's lifetime. The singleflight group guarantees a
// single in-flight fetch per key; a failed fetch is not cached and will
// be retried on the next lookup.
func (c *Client) componentFile(ctx context.Context, key, branch string) (string, error) {
	c.componentMu.RLock()
	rel, ok := c.componentFiles[key]
	c.componentMu.RUnlock()
	if ok {
		return rel, nil
	}

	v, err, _ := c.componentGroup.Do(key, func() (interface{}, error) {
		rel, err := c.fetchComponentPath(ctx, key, branch)
		if err != nil {
			return nil, err
		}
		c.componentMu.Lock()
		c.componentFiles[key] = rel
		c.componentMu.Unlock()
		return rel, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// fetchComponentPath asks the server for the component's own path and
// prefixes it with the path of every module ancestor, innermost first,
// yielding module/.../path.
func (c *Client) fetchComponentPath(ctx context.Context, key, branch string) (string, error) {
	params := url.Values{}
	params.Set("component", key)
	if strings.TrimSpace(branch) != "" {
		params.Set("branch", branch)
	}

	var resp componentShowResponse
	if err := c.getJSON(ctx, "api/components/show", params, &resp); err != nil {
		return "", err
	}

	rel := resp.Component.Path
	for _, ancestor := range resp.Ancestors {
		if model.Qualifier(ancestor.Qualifier) == model.QualifierModule && ancestor.Path != "" {
			rel = filepath.Join(ancestor.Path, rel)
		}
	}
	return rel, nil
}
