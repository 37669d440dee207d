package flag

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	config, err := parseFlags("lfs-release", []string{"-repo", "o/r", "-token", "secret", "v2.0.0", "changelog.md"})
	require.NoError(t, err)

	require.Equal(t, "o/r", config.Repo)
	require.Equal(t, "secret", config.Token)
	require.Equal(t, "v2.0.0", config.Version)
	require.Equal(t, "changelog.md", config.ChangelogPath)
	require.Equal(t, "info", config.LogLevel)
	require.False(t, config.DryRun)
}

func TestParseFlagsMissingChangelog(t *testing.T) {
	_, err := parseFlags("lfs-release", []string{"v2.0.0"})
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrHelp)
}

func TestParseFlagsHelp(t *testing.T) {
	_, err := parseFlags("lfs-release", []string{"--help"})
	require.ErrorIs(t, err, ErrHelp)
}

func TestParseFlagsInvalidLogLevel(t *testing.T) {
	_, err := parseFlags("lfs-release", []string{"-log-level", "noisy", "v2.0.0", "changelog.md"})
	require.Error(t, err)
}
