package yaml

import (
	"errors"
	"io/fs"
	"os"

	"dario.cat/mergo"
	"github.com/fwojciec/docindex"
	"gopkg.in/yaml.v3"
)

// LoadConfig reads a YAML config file and merges it over the defaults.
// A missing file returns an ENOTFOUND error.
func LoadConfig(path string) (*docindex.Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, docindex.Errorf(docindex.ENOTFOUND, "config file not found: %s", path)
	} else if err != nil {
		return nil, err
	}
	return DecodeConfig(data)
}

// DecodeConfig decodes YAML config and merges it over DefaultConfig.
// Fields left unset keep their defaults; consumer options are merged key
// by key.
func DecodeConfig(data []byte) (*docindex.Config, error) {
	var file docindex.Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, docindex.Errorf(docindex.EINVALID, "failed to decode config: %v", err)
	}

	cfg := docindex.DefaultConfig()
	if err := mergo.Merge(cfg, file, mergo.WithOverride); err != nil {
		return nil, docindex.Errorf(docindex.EINTERNAL, "failed to merge config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
