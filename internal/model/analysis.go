// Package model defines the data structures for gatecheck's configuration
// and for the analysis results read back from the server.
package model

// Task is the state of a background analysis task as last observed. The
// analysis identifier is only populated once the task has succeeded.
type Task struct {
	ID         string     `json:"id"`
	Status     TaskStatus `json:"status"`
	AnalysisID string     `json:"analysis_id,omitempty"`
}

// QualityGate is the verdict computed by the server for one analysis.
type QualityGate struct {
	Status     GateStatus  `json:"status"`
	Conditions []Condition `json:"conditions,omitempty"`
}

// Condition is a single evaluated metric of a quality gate.
type Condition struct {
	Status     GateStatus `json:"status"`
	MetricKey  string     `json:"metric_key"`
	MetricName string     `json:"metric_name"`
	Symbol     string     `json:"symbol,omitempty"`
	Actual     string     `json:"actual"`
	Warning    string     `json:"warning,omitempty"`
	Error      string     `json:"error,omitempty"`
}

// Issue is a single problem reported by an analysis. File is the absolute
// path of the owning source file; it is empty when the owning component is
// not file-like or carries no path. Line is nil when the issue is not
// anchored to a line.
type Issue struct {
	Key          string   `json:"key"`
	RuleKey      string   `json:"rule_key"`
	ComponentKey string   `json:"component_key"`
	File         string   `json:"file,omitempty"`
	Line         *int     `json:"line,omitempty"`
	Message      string   `json:"message"`
	Severity     Severity `json:"severity"`
	New          bool     `json:"new"`
}

// Rule is the metadata of a single rule. A Rule may be entirely
// zero-valued when the server has no body for the requested key.
type Rule struct {
	Key                 string   `json:"key"`
	Repo                string   `json:"repo"`
	Name                string   `json:"name"`
	Description         string   `json:"description,omitempty"`
	Type                RuleType `json:"type,omitempty"`
	DebtRemFnType       string   `json:"debt_rem_fn_type,omitempty"`
	DebtRemFnBaseEffort string   `json:"debt_rem_fn_base_effort,omitempty"`
}
