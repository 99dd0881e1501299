package platform

import (
	"fmt"
	"net/url"
	"strings"
)

// YouTube link parts
const (
	YouTubeHost      = "www.youtube.com"
	YouTubeShortHost = "youtu.be"
	WatchPath        = "/watch"
	VideoParam       = "v"
)

// YouTubeHosts lists the hosts accepted as YouTube links
var YouTubeHosts = []string{"youtube.com", "www.youtube.com", "m.youtube.com", YouTubeShortHost}

// IsYouTubeURL checks if the link points at YouTube
func IsYouTubeURL(link string) bool {
	u, err := ValidateLink(link)
	if err != nil {
		return false
	}
	host := strings.ToLower(u.Hostname())
	for _, h := range YouTubeHosts {
		if host == h {
			return true
		}
	}
	return false
}

// ExtractVideoID extracts the video ID from a YouTube link.
// Supported formats:
//   - https://www.youtube.com/watch?v=VIDEO_ID&t=10s
//   - https://youtu.be/VIDEO_ID
//   - https://www.youtube.com/embed/VIDEO_ID
func ExtractVideoID(link string) (string, error) {
	if !IsYouTubeURL(link) {
		return "", fmt.Errorf("not a YouTube link: %s", link)
	}

	u, err := url.Parse(strings.TrimSpace(link))
	if err != nil {
		return "", fmt.Errorf("failed to parse link: %w", err)
	}

	var id string
	switch {
	case strings.EqualFold(u.Hostname(), YouTubeShortHost):
		id = strings.Trim(u.Path, "/")
	case u.Path == WatchPath:
		id = u.Query().Get(VideoParam)
	case strings.HasPrefix(u.Path, "/embed/"), strings.HasPrefix(u.Path, "/shorts/"):
		parts := strings.Split(strings.Trim(u.Path, "/"), "/")
		if len(parts) >= 2 {
			id = parts[1]
		}
	}

	id = strings.TrimSpace(id)
	if id == "" || strings.Contains(id, "/") {
		return "", fmt.Errorf("empty video ID")
	}
	return id, nil
}

// WatchURL builds the canonical watch link for a video ID
func WatchURL(id string) string {
	u := url.URL{
		Scheme:   "https",
		Host:     YouTubeHost,
		Path:     WatchPath,
		RawQuery: url.Values{VideoParam: []string{id}}.Encode(),
	}
	return u.String()
}

// TutorialLink returns the link to open for a recipe tutorial. YouTube links
// are rewritten to the canonical watch form; other http(s) links pass as is.
func TutorialLink(link string) (string, error) {
	u, err := ValidateLink(link)
	if err != nil {
		return "", err
	}
	if !IsYouTubeURL(link) {
		return u.String(), nil
	}

	id, err := ExtractVideoID(link)
	if err != nil {
		return "", err
	}
	return WatchURL(id), nil
}
