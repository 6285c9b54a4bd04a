// Package store provides the durable backings for the categorization
// knowledge base: a flat YAML file and a relational sqlite schema. Both
// persist the same description→category-name mapping and are swappable
// without changing store semantics.
package store

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/MusikPolice/ofxcat-sub001/internal/logging"
)

// FileAdapter persists the description index as a single YAML document,
// loaded wholesale at startup and rewritten wholesale on save.
type FileAdapter struct {
	path   string
	logger logging.Logger
}

// NewFileAdapter creates a flat-file adapter for the given path. A missing
// file is fine (the store starts empty); a file that exists but cannot be
// opened is a durability failure and refuses initialization, since running
// with partial history risks losing it on the next save.
func NewFileAdapter(path string, logger logging.Logger) (*FileAdapter, error) {
	if logger == nil {
		logger = logging.GetLogger()
	}
	f, err := os.Open(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("categorization file %s exists but is not readable: %w", path, err)
	}
	if err == nil {
		_ = f.Close()
	}
	return &FileAdapter{path: path, logger: logger}, nil
}

// Load implements categorizer.Adapter. Malformed content degrades to an empty
// mapping with a warning; the engine can always fall back to prompting.
func (a *FileAdapter) Load() (map[string]string, error) {
	data, err := os.ReadFile(a.path)
	if err != nil {
		if os.IsNotExist(err) {
			a.logger.Debug("categorization file not found, starting empty",
				logging.Field{Key: "path", Value: a.path})
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading categorization file: %w", err)
	}

	var index map[string]string
	if err := yaml.Unmarshal(data, &index); err != nil {
		a.logger.WithError(err).Warn("categorization file is malformed, starting empty",
			logging.Field{Key: "path", Value: a.path})
		return map[string]string{}, nil
	}
	if index == nil {
		index = map[string]string{}
	}
	a.logger.Debug("loaded categorization file",
		logging.Field{Key: "path", Value: a.path},
		logging.Field{Key: "associations", Value: len(index)})
	return index, nil
}

// Save implements categorizer.Adapter.
func (a *FileAdapter) Save(index map[string]string) error {
	data, err := yaml.Marshal(index)
	if err != nil {
		return fmt.Errorf("marshaling categorization index: %w", err)
	}

	dir := filepath.Dir(a.path)
	if err := os.MkdirAll(dir, fs.FileMode(0o755)); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}
	if err := os.WriteFile(a.path, data, fs.FileMode(0o644)); err != nil {
		return fmt.Errorf("writing categorization file: %w", err)
	}

	a.logger.Debug("saved categorization file",
		logging.Field{Key: "path", Value: a.path},
		logging.Field{Key: "associations", Value: len(index)})
	return nil
}
