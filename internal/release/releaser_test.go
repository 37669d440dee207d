package release

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestPendingArtifacts(t *testing.T) {
	artifacts := []string{
		"bin/releases/git-lfs-linux-amd64-v2.0.0.tar.gz",
		"bin/releases/git-lfs-v2.0.0.tar.gz",
		"bin/releases/sha256sums.asc",
	}

	t.Run("empty existing list selects everything", func(t *testing.T) {
		require.Equal(t, artifacts, pendingArtifacts(artifacts, nil))
	})

	t.Run("fully uploaded release selects nothing", func(t *testing.T) {
		existing := []string{"git-lfs-linux-amd64-v2.0.0.tar.gz", "git-lfs-v2.0.0.tar.gz", "sha256sums.asc"}
		require.Empty(t, pendingArtifacts(artifacts, existing))
	})

	t.Run("partially uploaded release selects the difference", func(t *testing.T) {
		existing := []string{"git-lfs-v2.0.0.tar.gz"}
		want := []string{
			"bin/releases/git-lfs-linux-amd64-v2.0.0.tar.gz",
			"bin/releases/sha256sums.asc",
		}
		require.Equal(t, want, pendingArtifacts(artifacts, existing))
	})

	t.Run("unrelated existing assets select everything", func(t *testing.T) {
		existing := []string{"git-lfs-windows-v2.0.0.exe"}
		require.Equal(t, artifacts, pendingArtifacts(artifacts, existing))
	})
}

func TestScratchDirCleanup(t *testing.T) {
	r := Releaser{log: zap.NewNop()}

	dir, cleanup, err := r.scratchDir()
	require.NoError(t, err)
	require.DirExists(t, dir)

	cleanup()
	require.NoDirExists(t, dir)
}
