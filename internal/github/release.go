package github

import "strings"

// Release is the remote release record this tool cares about. UploadURL has
// the bracketed {?name,label} template segment already stripped.
type Release struct {
	ID        int64
	Name      string
	UploadURL string
}

func stripURLTemplate(url string) string {
	if i := strings.Index(url, "{"); i >= 0 {
		return url[:i]
	}
	return url
}
