package sonar

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/cenkalti/backoff"
	"go.uber.org/zap"

	"github.com/msageha/gatecheck/internal/model"
)

// errTaskProcessing marks a poll that found the task still being worked
// on; it is the only error the retry policy is allowed to retry.
var errTaskProcessing = errors.New("analysis report is still being processed")

// WaitForAnalysis polls the background task until it succeeds and returns
// the analysis identifier. The budget is query.max_retry status fetches
// with a constant query.wait_ms pause between them; a fully pending run
// therefore sleeps max_retry-1 times. A FAILED, CANCELED or unrecognized
// status aborts immediately, as does any transport or decode failure.
// Cancelling ctx during a pause surfaces as a fatal error.
func (c *Client) WaitForAnalysis(ctx context.Context, taskID string) (string, error) {
	var analysisID string

	fetch := func() error {
		task, err := c.task(ctx, taskID)
		if err != nil {
			return backoff.Permanent(err)
		}
		switch {
		case task.Status == model.TaskSuccess:
			analysisID = task.AnalysisID
			return nil
		case task.Status.Processing():
			c.logger.Info("waiting for analysis report processing",
				zap.String("task", taskID),
				zap.String("status", string(task.Status)))
			return errTaskProcessing
		default:
			return backoff.Permanent(fmt.Errorf("analysis task %s did not succeed (%s)", taskID, task.Status))
		}
	}

	// WithMaxRetries treats 0 as unlimited, so a budget of one fetch
	// maps to a policy that never retries.
	var policy backoff.BackOff = &backoff.StopBackOff{}
	if c.queryMaxRetry > 1 {
		policy = backoff.WithMaxRetries(backoff.NewConstantBackOff(c.queryWait), uint64(c.queryMaxRetry-1))
	}

	err := backoff.Retry(fetch, backoff.WithContext(policy, ctx))
	if err == nil {
		return analysisID, nil
	}
	if ctx.Err() != nil {
		return "", fmt.Errorf("interrupted while waiting for analysis task %s: %w", taskID, ctx.Err())
	}
	if errors.Is(err, errTaskProcessing) {
		return "", fmt.Errorf("report processing is taking longer than the configured wait limit (query.max_retry=%d, query.wait_ms=%d)",
			c.queryMaxRetry, c.queryWait.Milliseconds())
	}
	return "", err
}

func (c *Client) task(ctx context.Context, taskID string) (*model.Task, error) {
	params := url.Values{}
	params.Set("id", taskID)

	var resp taskResponse
	if err := c.getJSON(ctx, "api/ce/task", params, &resp); err != nil {
		return nil, err
	}
	return &model.Task{
		ID:         resp.Task.ID,
		Status:     model.TaskStatus(resp.Task.Status),
		AnalysisID: resp.Task.AnalysisID,
	}, nil
}
