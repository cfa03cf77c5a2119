package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version  int             `toml:"version"`
	Profiles []profileSchema `toml:"profiles"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported profiles schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type profileSchema struct {
	Name        string `toml:"name"`
	URL         string `toml:"url"`
	Interval    string `toml:"interval,omitempty"`
	Headless    bool   `toml:"headless"`
	Username    string `toml:"username,omitempty"`
	PasswordRef string `toml:"password_ref,omitempty"`
}
