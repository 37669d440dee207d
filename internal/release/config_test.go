package release

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfigOwnerRepo(t *testing.T) {
	owner, repo, err := Config{Repo: "git-lfs/git-lfs"}.OwnerRepo()
	require.NoError(t, err)
	require.Equal(t, "git-lfs", owner)
	require.Equal(t, "git-lfs", repo)

	for _, invalid := range []string{"", "git-lfs", "git-lfs/", "/git-lfs"} {
		_, _, err := Config{Repo: invalid}.OwnerRepo()
		require.Error(t, err, invalid)
	}
}

func TestConfigStringMasksToken(t *testing.T) {
	c := Config{Repo: "git-lfs/git-lfs", Token: "secret-token"}
	require.NotContains(t, c.String(), "secret-token")
	require.Contains(t, c.String(), "*****")

	require.Contains(t, Config{}.String(), "<empty>")
}
