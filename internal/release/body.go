package release

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jacobblock/git-lfs/internal/artifact"
)

// packageLinks is appended to the changelog, every literal VERSION token is
// replaced with the release version (without the leading "v").
const packageLinks = `
## Packages

Up to date packages are available on [PackageCloud](https://packagecloud.io/github/git-lfs) and [Homebrew](https://brew.sh/).

[RPM RHEL 7/CentOS 7](https://packagecloud.io/github/git-lfs/packages/el/7/git-lfs-VERSION-1.el7.x86_64.rpm/download)
[RPM RHEL 8/CentOS 8](https://packagecloud.io/github/git-lfs/packages/el/8/git-lfs-VERSION-1.el8.x86_64.rpm/download)
[Debian](https://packagecloud.io/github/git-lfs/packages/debian/bullseye/git-lfs_VERSION_amd64.deb/download)
[Ubuntu](https://packagecloud.io/github/git-lfs/packages/ubuntu/focal/git-lfs_VERSION_amd64.deb/download)

## SHA-256 hashes:
`

// composeBody writes the release body to <scratchDir>/body.md and returns its
// path. The body is the changelog, the package links section and a SHA-256
// digest per artifact (bold base name and hex digest, blank line separated,
// trailing blank lines trimmed).
func composeBody(version, changelogPath, scratchDir string, artifacts []string) (string, error) {
	changelog, err := os.ReadFile(changelogPath)
	if err != nil {
		return "", fmt.Errorf("read changelog: %w", err)
	}
	displayVersion := strings.TrimPrefix(version, "v")

	var b strings.Builder
	b.Write(bytes.TrimRight(changelog, "\n"))
	b.WriteString("\n")
	b.WriteString(strings.ReplaceAll(packageLinks, "VERSION", displayVersion))
	for _, path := range artifacts {
		digest, err := artifact.Sum256(path)
		if err != nil {
			return "", fmt.Errorf("sha256 %s: %w", path, err)
		}
		fmt.Fprintf(&b, "\n**%s**\n%s\n", filepath.Base(path), digest)
	}
	body := strings.TrimRight(b.String(), "\n") + "\n"

	bodyPath := filepath.Join(scratchDir, "body.md")
	if err := os.WriteFile(bodyPath, []byte(body), 0o600); err != nil {
		return "", fmt.Errorf("write release body: %w", err)
	}
	return bodyPath, nil
}
