package release

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jacobblock/git-lfs/internal/artifact"
	"github.com/stretchr/testify/require"
)

func TestComposeBody(t *testing.T) {
	dir := t.TempDir()
	changelogPath := filepath.Join(dir, "changelog.md")
	require.NoError(t, os.WriteFile(changelogPath, []byte("Fixes.\n"), 0o600))

	artifacts := []string{
		filepath.Join(dir, "git-lfs-linux-amd64-v2.0.0.tar.gz"),
		filepath.Join(dir, "git-lfs-v2.0.0.tar.gz"),
		filepath.Join(dir, "sha256sums.asc"),
	}
	for _, path := range artifacts {
		require.NoError(t, os.WriteFile(path, []byte(filepath.Base(path)), 0o600))
	}

	scratchDir := t.TempDir()
	bodyPath, err := composeBody("v2.0.0", changelogPath, scratchDir, artifacts)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(scratchDir, "body.md"), bodyPath)

	b, err := os.ReadFile(bodyPath)
	require.NoError(t, err)
	body := string(b)

	// changelog first, then package links with VERSION substituted
	require.True(t, strings.HasPrefix(body, "Fixes.\n"))
	require.Contains(t, body, "## Packages")
	require.Contains(t, body, "git-lfs_2.0.0_amd64.deb")
	require.NotContains(t, body, "VERSION")

	// digest blocks in artifact order
	var blocks []string
	for _, path := range artifacts {
		digest, err := artifact.Sum256(path)
		require.NoError(t, err)
		blocks = append(blocks, fmt.Sprintf("**%s**\n%s", filepath.Base(path), digest))
	}
	hashes := strings.SplitN(body, "## SHA-256 hashes:", 2)[1]
	require.Equal(t, "\n\n"+strings.Join(blocks, "\n\n")+"\n", hashes)
}

func TestComposeBodyMissingChangelog(t *testing.T) {
	_, err := composeBody("v2.0.0", filepath.Join(t.TempDir(), "missing.md"), t.TempDir(), nil)
	require.Error(t, err)
}
