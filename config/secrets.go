package config

import (
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
	"github.com/habiliai/exampleproject/errors"
)

// Secrets holds credentials loaded from the root path, read-only after load.
type Secrets struct {
	SessionKey string `yaml:"sessionKey"`
	APIToken   string `yaml:"apiToken"`
}

const secretsFile = "secrets.yaml"

// LoadSecrets reads <root>/secrets.yaml. A missing file is not an error; the
// zero value means no secrets are configured.
func LoadSecrets(root string) (*Secrets, error) {
	path := filepath.Join(root, secretsFile)

	yamlBytes, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Secrets{}, nil
	} else if err != nil {
		return nil, errors.Wrapf(err, "failed to read file %s", path)
	}

	var secrets Secrets
	if err := yaml.Unmarshal(yamlBytes, &secrets); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal file %s", path)
	}

	return &secrets, nil
}
