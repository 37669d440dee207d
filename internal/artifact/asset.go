package artifact

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"
	"regexp"
	"strings"
	"unicode"
)

// source tarball is git-lfs-<version>.tar.gz, platform tarballs carry an os
// token after the project name
var sourceTarball = regexp.MustCompile(`^git-lfs-v?\d[^-]*\.tar\.gz$`)

// Label returns the human readable asset label for a base file name. Labels
// are derived from the name alone so reruns always produce the same label.
func Label(name string) string {
	switch {
	case sourceTarball.MatchString(name):
		return "Source"
	case strings.HasPrefix(name, "git-lfs-windows") && strings.HasSuffix(name, ".exe"):
		return "Windows Installer"
	case name == ChecksumFile:
		return "Signed SHA-256 Hashes"
	}

	// git-lfs-<os>-<arch>-<version>...
	parts := strings.Split(name, "-")
	if len(parts) < 5 {
		return ""
	}
	return displayOS(parts[2]) + " " + strings.ToUpper(parts[3])
}

func displayOS(name string) string {
	if name == "" {
		return ""
	}
	if name == "freebsd" {
		return "FreeBSD"
	}
	r := []rune(name)
	return string(unicode.ToUpper(r[0])) + string(r[1:])
}

// ContentType maps a base file name to the MIME type sent with the upload.
// The second return value is false when the extension is not recognized.
func ContentType(name string) (string, bool) {
	switch {
	case strings.HasSuffix(name, ".tar.gz"):
		return "application/gzip", true
	case strings.HasSuffix(name, ".zip"):
		return "application/zip", true
	case strings.HasSuffix(name, ".exe"):
		return "application/octet-stream", true
	case strings.HasSuffix(name, ".asc"):
		return "text/plain", true
	}
	return "", false
}

// Sum256 returns the hex encoded SHA-256 digest of the file at path.
func Sum256(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
