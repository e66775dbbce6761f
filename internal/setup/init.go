// Package setup handles gatecheck project initialization.
package setup

import (
	"fmt"
	"os"
	"path/filepath"

	yamlv3 "gopkg.in/yaml.v3"

	"github.com/msageha/gatecheck/internal/model"
)

// ConfigFileName is the config file Init writes and the CLI reads by
// default.
const ConfigFileName = "gatecheck.yaml"

const configHeader = `# gatecheck configuration.
# server.url is required; server.login takes a user token (leave
# password empty) or a login/password pair.
`

// Init writes a default config file into dir. It refuses to overwrite an
// existing one.
func Init(dir string) (string, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve project dir: %w", err)
	}

	path := filepath.Join(absDir, ConfigFileName)
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("%s already exists", path)
	}

	cfg := model.DefaultConfig()
	data, err := yamlv3.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("marshal default config: %w", err)
	}

	if err := writeFileAtomic(path, append([]byte(configHeader), data...)); err != nil {
		return "", fmt.Errorf("write %s: %w", ConfigFileName, err)
	}
	return path, nil
}

// writeFileAtomic writes via a temp file and rename so a crash never
// leaves a half-written config behind.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
