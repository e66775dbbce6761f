package model

// TaskStatus is the processing state of a background analysis task.
type TaskStatus string

const (
	TaskPending    TaskStatus = "PENDING"
	TaskInProgress TaskStatus = "IN_PROGRESS"
	TaskSuccess    TaskStatus = "SUCCESS"
	TaskFailed     TaskStatus = "FAILED"
	TaskCanceled   TaskStatus = "CANCELED"
)

// Processing reports whether the task is still being worked on and is
// worth polling again.
func (s TaskStatus) Processing() bool {
	return s == TaskPending || s == TaskInProgress
}

// GateStatus is the verdict of a quality gate or of a single condition.
type GateStatus string

const (
	GateOK    GateStatus = "OK"
	GateWarn  GateStatus = "WARN"
	GateError GateStatus = "ERROR"
	GateNone  GateStatus = "NONE"
)

// Severity of an issue.
type Severity string

const (
	SeverityBlocker  Severity = "BLOCKER"
	SeverityCritical Severity = "CRITICAL"
	SeverityMajor    Severity = "MAJOR"
	SeverityMinor    Severity = "MINOR"
	SeverityInfo     Severity = "INFO"
)

var severityRank = map[Severity]int{
	SeverityBlocker:  0,
	SeverityCritical: 1,
	SeverityMajor:    2,
	SeverityMinor:    3,
	SeverityInfo:     4,
}

// Rank orders severities from most severe (0) to least. Unknown
// severities sort last.
func (s Severity) Rank() int {
	if r, ok := severityRank[s]; ok {
		return r
	}
	return len(severityRank)
}

// RuleType classifies a rule.
type RuleType string

const (
	RuleCodeSmell       RuleType = "CODE_SMELL"
	RuleBug             RuleType = "BUG"
	RuleVulnerability   RuleType = "VULNERABILITY"
	RuleSecurityHotspot RuleType = "SECURITY_HOTSPOT"
)

// Qualifier classifies a component in the project tree.
type Qualifier string

const (
	QualifierProject      Qualifier = "TRK"
	QualifierModule       Qualifier = "BRC"
	QualifierDirectory    Qualifier = "DIR"
	QualifierFile         Qualifier = "FIL"
	QualifierUnitTestFile Qualifier = "UTS"
)

// File reports whether the component can be resolved to a single
// source file.
func (q Qualifier) File() bool {
	return q == QualifierFile || q == QualifierUnitTestFile
}
