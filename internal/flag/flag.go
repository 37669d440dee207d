package flag

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jacobblock/git-lfs/internal/release"
	"go.uber.org/zap/zapcore"
)

// ErrHelp is returned when -h or --help is invoked, main exits 0 in that case.
var ErrHelp = flag.ErrHelp

type flags struct {
	repo        string
	releasesDir string
	netrc       string
	token       string
	logLevel    string
	dryRun      bool
}

func ParseFlags() (release.Config, error) {
	return parseFlags(os.Args[0], os.Args[1:])
}

func parseFlags(name string, args []string) (release.Config, error) {
	flagSet := flag.NewFlagSet(name, flag.ContinueOnError)
	var f flags

	flagSet.StringVar(&f.repo, "repo", getStringEnv("LFS_RELEASE_REPO", "git-lfs/git-lfs"), "The GitHub repository in owner/repo form")
	flagSet.StringVar(&f.releasesDir, "releases-dir", getStringEnv("LFS_RELEASE_DIR", filepath.Join("bin", "releases")), "The directory with built release artifacts")
	flagSet.StringVar(&f.netrc, "netrc", getStringEnv("LFS_RELEASE_NETRC", defaultNetrc()), "The netrc file with GitHub credentials")
	flagSet.StringVar(&f.token, "token", getStringEnv("LFS_RELEASE_TOKEN", ""), "GitHub Auth Token, read from netrc when empty")
	flagSet.StringVar(&f.logLevel, "log-level", getStringEnv("LFS_RELEASE_LOG_LEVEL", "info"), "Log level (debug, info, warn, error)")
	flagSet.BoolVar(&f.dryRun, "dry-run", false, "Skip create release and upload asset calls")
	flagSet.Usage = func() {
		fmt.Fprintf(flagSet.Output(), "usage: %s [flags] VERSION CHANGELOG_FILE\n", name)
		flagSet.PrintDefaults()
	}

	if err := flagSet.Parse(args); err != nil {
		return release.Config{}, err
	}

	positional := flagSet.Args()
	if len(positional) < 2 {
		err := errors.New("VERSION and CHANGELOG_FILE arguments are required")
		fmt.Fprintln(flagSet.Output(), err)
		flagSet.Usage()
		return release.Config{}, err
	}

	if err := f.validate(); err != nil {
		fmt.Fprintln(flagSet.Output(), err)
		return release.Config{}, err
	}

	return release.Config{
		Repo:          f.repo,
		ReleasesDir:   f.releasesDir,
		NetrcPath:     f.netrc,
		Token:         f.token,
		LogLevel:      f.logLevel,
		Version:       positional[0],
		ChangelogPath: positional[1],
		DryRun:        f.dryRun,
	}, nil
}

func (f flags) validate() error {
	if f.repo == "" {
		return errors.New("repo cannot be empty")
	}
	if f.releasesDir == "" {
		return errors.New("releases-dir cannot be empty")
	}
	if _, err := zapcore.ParseLevel(f.logLevel); err != nil {
		return fmt.Errorf("invalid log-level %q", f.logLevel)
	}
	return nil
}

func defaultNetrc() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".netrc"
	}
	return filepath.Join(home, ".netrc")
}

func getStringEnv(envName string, defaultValue string) string {
	env, ok := os.LookupEnv(envName)
	if !ok {
		return defaultValue
	}
	return env
}
