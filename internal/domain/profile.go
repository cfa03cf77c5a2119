package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

type ProfileName string

var profileNamePattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._-]*$`)

type Profile struct {
	Name        ProfileName
	URL         string
	Interval    time.Duration
	Headless    bool
	Username    string
	PasswordRef string
}

func (p Profile) Validate() error {
	name := strings.TrimSpace(string(p.Name))
	if name == "" {
		return fmt.Errorf("profile name is required")
	}
	if !profileNamePattern.MatchString(name) {
		return fmt.Errorf("invalid profile name %q", p.Name)
	}
	if _, err := NormalizeURL(p.URL); err != nil {
		return err
	}
	if p.Interval < 0 {
		return fmt.Errorf("%w: %s", ErrInvalidInterval, p.Interval)
	}

	return nil
}

func PasswordSecretKey(name ProfileName) string {
	return fmt.Sprintf("webclicker/%s/password", name)
}
