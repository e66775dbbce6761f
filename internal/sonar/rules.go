package sonar

import (
	"context"
	"fmt"
	"net/url"

	"github.com/msageha/gatecheck/internal/model"
)

// Rule fetches the metadata of a rule, memoized by key for the client's
// lifetime with a single in-flight fetch per key. A response without a
// rule body yields a zero-valued Rule rather than an error; callers are
// expected to tolerate missing metadata.
func (c *Client) Rule(ctx context.Context, ruleKey string) (model.Rule, error) {
	c.ruleMu.RLock()
	rule, ok := c.rules[ruleKey]
	c.ruleMu.RUnlock()
	if ok {
		return rule, nil
	}

	v, err, _ := c.ruleGroup.Do(ruleKey, func() (interface{}, error) {
		rule, err := c.fetchRule(ctx, ruleKey)
		if err != nil {
			return nil, err
		}
		c.ruleMu.Lock()
		c.rules[ruleKey] = rule
		c.ruleMu.Unlock()
		return rule, nil
	})
	if err != nil {
		return model.Rule{}, fmt.Errorf("load rule %s: %w", ruleKey, err)
	}
	return v.(model.Rule), nil
}

func (c *Client) fetchRule(ctx context.Context, ruleKey string) (model.Rule, error) {
	params := url.Values{}
	params.Set("key", ruleKey)

	var resp ruleShowResponse
	if err := c.getJSON(ctx, "api/rules/show", params, &resp); err != nil {
		return model.Rule{}, err
	}
	if resp.Rule == nil {
		return model.Rule{}, nil
	}
	return model.Rule{
		Key:                 resp.Rule.Key,
		Repo:                resp.Rule.Repo,
		Name:                resp.Rule.Name,
		Description:         resp.Rule.MdDesc,
		Type:                model.RuleType(resp.Rule.Type),
		DebtRemFnType:       resp.Rule.DebtRemFnType,
		DebtRemFnBaseEffort: resp.Rule.RemFnBaseEffort,
	}, nil
}
