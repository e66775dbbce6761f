// Package report reads the descriptor the scanner leaves behind after
// submitting an analysis.
package report

import (
	"fmt"
	"path/filepath"

	"github.com/magiconair/properties"
)

// FileName is the descriptor the scanner writes into its work directory.
const FileName = "report-task.txt"

// Report is the parsed report-task.txt descriptor.
type Report struct {
	CeTaskID      string
	ProjectKey    string
	ServerURL     string
	ServerVersion string
	DashboardURL  string
	CeTaskURL     string
}

// Load parses report-task.txt from workDir. The file is a flat Java
// properties file; ceTaskId and projectKey are mandatory, the rest is
// carried along when present.
func Load(workDir string) (*Report, error) {
	path := filepath.Join(workDir, FileName)

	p, err := properties.LoadFile(path, properties.UTF8)
	if err != nil {
		return nil, fmt.Errorf("load report descriptor %s: %w", path, err)
	}

	r := &Report{
		ServerURL:     p.GetString("serverUrl", ""),
		ServerVersion: p.GetString("serverVersion", ""),
		DashboardURL:  p.GetString("dashboardUrl", ""),
		CeTaskURL:     p.GetString("ceTaskUrl", ""),
	}

	var ok bool
	if r.CeTaskID, ok = p.Get("ceTaskId"); !ok || r.CeTaskID == "" {
		return nil, fmt.Errorf("report descriptor %s has no ceTaskId", path)
	}
	if r.ProjectKey, ok = p.Get("projectKey"); !ok || r.ProjectKey == "" {
		return nil, fmt.Errorf("report descriptor %s has no projectKey", path)
	}
	return r, nil
}
