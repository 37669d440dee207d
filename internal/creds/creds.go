package creds

import (
	"fmt"
	"os"
	"strings"
)

// Token checks that the netrc file has machine entries for both the api and
// the upload host and returns the password of the api host entry. The file is
// scanned as text, netrc grammar is intentionally not parsed.
func Token(path, apiHost, uploadHost string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read credentials file: %w", err)
	}
	content := string(b)

	for _, host := range []string{apiHost, uploadHost} {
		if !strings.Contains(content, host) {
			return "", fmt.Errorf("credentials file %s has no entry for %s", path, host)
		}
	}

	token := machinePassword(content, apiHost)
	if token == "" {
		return "", fmt.Errorf("credentials file %s has no password for %s", path, apiHost)
	}
	return token, nil
}

// machinePassword returns the password following the machine entry for the
// given host, netrc entries can be single or multi line
func machinePassword(content, host string) string {
	var machine string
	fields := strings.Fields(content)
	for i := 0; i+1 < len(fields); i++ {
		switch fields[i] {
		case "machine":
			machine = fields[i+1]
		case "password":
			if machine == host {
				return fields[i+1]
			}
		}
	}
	return ""
}
