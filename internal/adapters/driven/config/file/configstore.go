package file

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/brandstat-labs/brandstat-cli/internal/core/domain"
	"github.com/brandstat-labs/brandstat-cli/internal/core/ports/driven"
	"github.com/brandstat-labs/brandstat-cli/internal/logger"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// options mirrors the TOML config file. All keys are optional.
type options struct {
	Report      string `toml:"report"`
	Sort        string `toml:"sort"`
	Format      string `toml:"format"`
	Placeholder string `toml:"placeholder"`
	Limit       *int   `toml:"limit"`
}

// ConfigStore reads run defaults from a TOML file. A missing file is
// not an error; flags always take precedence over file values.
type ConfigStore struct {
	filePath string
	opts     options
}

// NewConfigStore creates a TOML-backed defaults store. If path is
// empty, ~/.brandstat/config.toml is used.
func NewConfigStore(path string) (*ConfigStore, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(home, ".brandstat", "config.toml")
	}

	s := &ConfigStore{filePath: path}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Defaults returns the configured defaults. Unset keys are zero.
func (s *ConfigStore) Defaults() driven.RunDefaults {
	return driven.RunDefaults{
		Report:      s.opts.Report,
		Sort:        s.opts.Sort,
		Format:      s.opts.Format,
		Placeholder: s.opts.Placeholder,
		Limit:       s.opts.Limit,
	}
}

// Path returns the config file location the store reads from.
func (s *ConfigStore) Path() string {
	return s.filePath
}

func (s *ConfigStore) load() error {
	data, err := os.ReadFile(s.filePath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return domain.NewAccessError(s.filePath, "%v", err)
	}

	if err := toml.Unmarshal(data, &s.opts); err != nil {
		return domain.NewConfigError("%s: invalid config: %v", s.filePath, err)
	}

	logger.Debug("loaded defaults from %s", s.filePath)
	return nil
}
