// Package metrics maps core metric keys to their display names.
package metrics

// names covers the core metrics a quality gate condition can reference.
// Custom metrics are not listed; Name falls back to the raw key for them.
var names = map[string]string{
	"alert_status":               "Quality Gate Status",
	"blocker_violations":         "Blocker Issues",
	"branch_coverage":            "Condition Coverage",
	"bugs":                       "Bugs",
	"classes":                    "Classes",
	"code_smells":                "Code Smells",
	"cognitive_complexity":       "Cognitive Complexity",
	"comment_lines":              "Comment Lines",
	"comment_lines_density":      "Comments (%)",
	"complexity":                 "Cyclomatic Complexity",
	"confirmed_issues":           "Confirmed Issues",
	"coverage":                   "Coverage",
	"critical_violations":        "Critical Issues",
	"directories":                "Directories",
	"duplicated_blocks":          "Duplicated Blocks",
	"duplicated_files":           "Duplicated Files",
	"duplicated_lines":           "Duplicated Lines",
	"duplicated_lines_density":   "Duplicated Lines (%)",
	"false_positive_issues":      "False Positive Issues",
	"files":                      "Files",
	"functions":                  "Functions",
	"info_violations":            "Info Issues",
	"line_coverage":              "Line Coverage",
	"lines":                      "Lines",
	"major_violations":           "Major Issues",
	"minor_violations":           "Minor Issues",
	"ncloc":                      "Lines of Code",
	"new_branch_coverage":        "Condition Coverage on New Code",
	"new_bugs":                   "New Bugs",
	"new_code_smells":            "New Code Smells",
	"new_coverage":               "Coverage on New Code",
	"new_duplicated_lines":       "Duplicated Lines on New Code",
	"new_line_coverage":          "Line Coverage on New Code",
	"new_maintainability_rating": "Maintainability Rating on New Code",
	"new_reliability_rating":     "Reliability Rating on New Code",
	"new_security_rating":        "Security Rating on New Code",
	"new_sqale_debt_ratio":       "Technical Debt Ratio on New Code",
	"new_technical_debt":         "Added Technical Debt",
	"new_violations":             "New Issues",
	"new_vulnerabilities":        "New Vulnerabilities",
	"open_issues":                "Open Issues",
	"reliability_rating":         "Reliability Rating",
	"reopened_issues":            "Reopened Issues",
	"security_rating":            "Security Rating",
	"skipped_tests":              "Skipped Unit Tests",
	"sqale_debt_ratio":           "Technical Debt Ratio",
	"sqale_index":                "Technical Debt",
	"sqale_rating":               "Maintainability Rating",
	"statements":                 "Statements",
	"test_errors":                "Unit Test Errors",
	"test_failures":              "Unit Test Failures",
	"test_success_density":       "Unit Test Success (%)",
	"tests":                      "Unit Tests",
	"violations":                 "Issues",
	"vulnerabilities":            "Vulnerabilities",
}

// Name returns the display name of a metric key, or the key itself when
// the metric is not part of the core catalog.
func Name(key string) string {
	if name, ok := names[key]; ok {
		return name
	}
	return key
}
