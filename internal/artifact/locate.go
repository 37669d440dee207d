package artifact

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// ChecksumFile is the signed checksum manifest shipped with every release,
// included regardless of the version filter.
const ChecksumFile = "sha256sums.asc"

// Locate walks the releases directory and returns a sorted list of release
// artifacts for the given version: tarballs, 32/64-bit zip archives, Windows
// installers and the checksum manifest. Paths containing "assets" are skipped,
// they hold already published files. An empty result is an error, the caller
// is expected to abort the release.
func Locate(dir, version string) ([]string, error) {
	var matches []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		if strings.Contains(rel, "assets") {
			return nil
		}
		name := d.Name()
		if !isReleaseFile(name) {
			return nil
		}
		if name != ChecksumFile && !strings.Contains(rel, version) {
			return nil
		}
		matches = append(matches, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s releases directory: %w", dir, err)
	}

	if len(matches) == 0 {
		return nil, fmt.Errorf("no release artifacts for %s under %s", version, dir)
	}
	sort.Strings(matches)
	return matches, nil
}

func isReleaseFile(name string) bool {
	if name == ChecksumFile {
		return true
	}
	if strings.HasSuffix(name, ".tar.gz") || strings.HasSuffix(name, ".exe") {
		return true
	}
	if strings.HasSuffix(name, ".zip") {
		return strings.Contains(name, "-386") || strings.Contains(name, "-amd64")
	}
	return false
}
