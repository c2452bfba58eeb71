package ingest

import (
	"net/url"
	"regexp"
	"strings"
)

var (
	drivePathID  = regexp.MustCompile(`/d/([A-Za-z0-9_-]+)`)
	driveQueryID = regexp.MustCompile(`[?&]id=([A-Za-z0-9_-]+)`)

	nonAlnum = regexp.MustCompile(`[^A-Za-z0-9 ]+`)
)

// NormalizeImageURL rewrites Google Drive sharing links to the direct
// content-serving form, supporting both the /d/<id>/ path style and the
// id=<id> query style. If no file id can be extracted the original URL is
// returned unchanged; this never fails.
func NormalizeImageURL(raw string) string {
	u := strings.TrimSpace(raw)
	if u == "" {
		return ""
	}
	if !strings.Contains(u, "drive.google.com") {
		return u
	}

	if m := drivePathID.FindStringSubmatch(u); m != nil {
		return driveContentURL(m[1])
	}
	if m := driveQueryID.FindStringSubmatch(u); m != nil {
		return driveContentURL(m[1])
	}
	return u
}

func driveContentURL(id string) string {
	return "https://drive.google.com/uc?export=view&id=" + id
}

// placeholderImageURL builds a deterministic placeholder for items without an
// image column, keyed by the sanitized item name so reloads stay stable.
func placeholderImageURL(name string) string {
	sanitized := strings.TrimSpace(nonAlnum.ReplaceAllString(name, ""))
	if sanitized == "" {
		sanitized = "Menu"
	}
	return "https://placehold.co/400x300?text=" + url.QueryEscape(sanitized)
}
