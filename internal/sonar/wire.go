package sonar

// Response shapes of the web API calls the client consumes. Only the
// fields the client reads are declared.

type taskResponse struct {
	Task struct {
		ID         string `json:"id"`
		Status     string `json:"status"`
		AnalysisID string `json:"analysisId"`
	} `json:"task"`
}

type projectStatusResponse struct {
	ProjectStatus struct {
		Status     string          `json:"status"`
		Conditions []wireCondition `json:"conditions"`
	} `json:"projectStatus"`
}

type wireCondition struct {
	Status           string `json:"status"`
	MetricKey        string `json:"metricKey"`
	Comparator       string `json:"comparator"`
	WarningThreshold string `json:"warningThreshold"`
	ErrorThreshold   string `json:"errorThreshold"`
	ActualValue      string `json:"actualValue"`
}

type issuesSearchResponse struct {
	Total      int64           `json:"total"`
	Page       int             `json:"p"`
	PageSize   int             `json:"ps"`
	Issues     []wireIssue     `json:"issues"`
	Components []wireComponent `json:"components"`
}

type wireIssue struct {
	Key       string `json:"key"`
	Rule      string `json:"rule"`
	Severity  string `json:"severity"`
	Component string `json:"component"`
	Line      *int   `json:"line"`
	Message   string `json:"message"`
}

type wireComponent struct {
	Key       string `json:"key"`
	Qualifier string `json:"qualifier"`
	Path      string `json:"path"`
}

type componentShowResponse struct {
	Component wireComponent   `json:"component"`
	Ancestors []wireComponent `json:"ancestors"`
}

type ruleShowResponse struct {
	Rule *wireRule `json:"rule"`
}

type wireRule struct {
	Key             string `json:"key"`
	Repo            string `json:"repo"`
	Name            string `json:"name"`
	MdDesc          string `json:"mdDesc"`
	Type            string `json:"type"`
	DebtRemFnType   string `json:"debtRemFnType"`
	RemFnBaseEffort string `json:"remFnBaseEffort"`
}
