package release

import (
	"fmt"
	"strings"
)

const (
	apiHost    = "api.github.com"
	uploadHost = "uploads.github.com"
)

type Config struct {
	Repo          string
	ReleasesDir   string
	NetrcPath     string
	Token         string
	LogLevel      string
	Version       string
	ChangelogPath string
	DryRun        bool
}

func (c Config) String() string {
	token := "*****"
	if len(c.Token) == 0 {
		token = "<empty>"
	}
	return fmt.Sprintf("repo: %q, releases-dir: %q, netrc: %q, token: %q, log-level: %q, version: %q, changelog: %q, dry-run: %t",
		c.Repo, c.ReleasesDir, c.NetrcPath, token, c.LogLevel, c.Version, c.ChangelogPath, c.DryRun)
}

func (c Config) OwnerRepo() (string, string, error) {
	parts := strings.SplitN(c.Repo, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid repo %q, expected owner/repo", c.Repo)
	}
	return parts[0], parts[1], nil
}

// PreconditionError marks failures detected before any state changing network
// call, main maps it to exit code 2.
type PreconditionError struct {
	Err error
}

func (e PreconditionError) Error() string {
	return e.Err.Error()
}

func (e PreconditionError) Unwrap() error {
	return e.Err
}
