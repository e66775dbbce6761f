package sonar

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msageha/gatecheck/internal/model"
)

const projectStatusBody = `{
  "projectStatus": {
    "status": "ERROR",
    "conditions": [
      {
        "status": "ERROR",
        "metricKey": "new_coverage",
        "comparator": "LT",
        "warningThreshold": "90",
        "errorThreshold": "80",
        "actualValue": "42.0"
      },
      {
        "status": "OK",
        "metricKey": "custom.metric.x",
        "comparator": "GT",
        "errorThreshold": "10",
        "actualValue": "3"
      },
      {
        "status": "WARN",
        "metricKey": "violations",
        "actualValue": "7"
      }
    ]
  }
}`

func TestQualityGate(t *testing.T) {
	var gotAnalysisID string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/qualitygates/project_status", r.URL.Path)
		gotAnalysisID = r.URL.Query().Get("analysisId")
		w.Write([]byte(projectStatusBody))
	})
	client := newTestClient(t, handler)

	gate, err := client.QualityGate(context.Background(), "AN-1")
	require.NoError(t, err)
	assert.Equal(t, "AN-1", gotAnalysisID)
	assert.Equal(t, model.GateError, gate.Status)
	require.Len(t, gate.Conditions, 3)

	first := gate.Conditions[0]
	assert.Equal(t, model.GateError, first.Status)
	assert.Equal(t, "new_coverage", first.MetricKey)
	assert.Equal(t, "Coverage on New Code", first.MetricName)
	assert.Equal(t, "<", first.Symbol)
	assert.Equal(t, "42.0", first.Actual)
	assert.Equal(t, "90", first.Warning)
	assert.Equal(t, "80", first.Error)

	// unknown metric keys keep the raw key as display name
	second := gate.Conditions[1]
	assert.Equal(t, "custom.metric.x", second.MetricName)
	assert.Equal(t, ">", second.Symbol)

	// informational condition without a comparator
	third := gate.Conditions[2]
	assert.Equal(t, "Issues", third.MetricName)
	assert.Equal(t, "", third.Symbol)
}

func TestQualityGate_NoConditions(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"projectStatus":{"status":"NONE"}}`))
	}))

	gate, err := client.QualityGate(context.Background(), "AN-1")
	require.NoError(t, err)
	assert.Equal(t, model.GateNone, gate.Status)
	assert.Empty(t, gate.Conditions)
}

func TestQualityGate_HTTPErrorIsFatal(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	_, err := client.QualityGate(context.Background(), "AN-1")
	require.Error(t, err)
	var httpErr *HTTPError
	assert.ErrorAs(t, err, &httpErr)
}

func TestComparatorSymbol(t *testing.T) {
	tests := []struct {
		comparator string
		expected   string
	}{
		{"GT", ">"},
		{"LT", "<"},
		{"EQ", "="},
		{"NE", "!="},
		{"", ""},
		{"LTE", "LTE"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, comparatorSymbol(tt.comparator), "comparator %q", tt.comparator)
	}
}
