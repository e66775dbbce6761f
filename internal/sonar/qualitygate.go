package sonar

import (
	"context"
	"net/url"

	"go.uber.org/zap"

	"github.com/msageha/gatecheck/internal/metrics"
	"github.com/msageha/gatecheck/internal/model"
)

// QualityGate fetches the gate verdict for a completed analysis and
// normalizes its conditions. One call, no retries.
func (c *Client) QualityGate(ctx context.Context, analysisID string) (*model.QualityGate, error) {
	c.logger.Debug("requesting quality gate status", zap.String("analysis", analysisID))

	params := url.Values{}
	params.Set("analysisId", analysisID)

	var resp projectStatusResponse
	if err := c.getJSON(ctx, "api/qualitygates/project_status", params, &resp); err != nil {
		return nil, err
	}

	gate := &model.QualityGate{Status: model.GateStatus(resp.ProjectStatus.Status)}
	for _, cond := range resp.ProjectStatus.Conditions {
		gate.Conditions = append(gate.Conditions, model.Condition{
			Status:     model.GateStatus(cond.Status),
			MetricKey:  cond.MetricKey,
			MetricName: metrics.Name(cond.MetricKey),
			Symbol:     comparatorSymbol(cond.Comparator),
			Actual:     cond.ActualValue,
			Warning:    cond.WarningThreshold,
			Error:      cond.ErrorThreshold,
		})
	}
	c.logGate(gate)
	return gate, nil
}

// comparatorSymbol maps the wire comparator onto its display symbol.
// Informational conditions carry no comparator and map to the empty
// string; an unrecognized comparator passes through unchanged.
func comparatorSymbol(comparator string) string {
	switch comparator {
	case "":
		return ""
	case "GT":
		return ">"
	case "LT":
		return "<"
	case "EQ":
		return "="
	case "NE":
		return "!="
	default:
		return comparator
	}
}

func (c *Client) logGate(gate *model.QualityGate) {
	c.logger.Info("quality gate status", zap.String("status", string(gate.Status)))
	for _, cond := range gate.Conditions {
		switch cond.Status {
		case model.GateOK:
			c.logger.Info("condition passed",
				zap.String("metric", cond.MetricName),
				zap.String("actual", cond.Actual))
		case model.GateWarn:
			c.logger.Warn("condition in warning",
				zap.String("metric", cond.MetricName),
				zap.String("actual", cond.Actual),
				zap.String("comparator", cond.Symbol),
				zap.String("threshold", cond.Warning))
		case model.GateError:
			c.logger.Error("condition failed",
				zap.String("metric", cond.MetricName),
				zap.String("actual", cond.Actual),
				zap.String("comparator", cond.Symbol),
				zap.String("threshold", cond.Error))
		}
	}
}
