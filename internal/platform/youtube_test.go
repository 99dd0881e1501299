package platform

import "testing"

func TestIsYouTubeURL(t *testing.T) {
	tests := []struct {
		link     string
		expected bool
	}{
		{"https://www.youtube.com/watch?v=4aZr5hZXP_s", true},
		{"https://youtube.com/watch?v=4aZr5hZXP_s", true},
		{"https://m.youtube.com/watch?v=4aZr5hZXP_s", true},
		{"https://youtu.be/4aZr5hZXP_s", true},
		{"https://vimeo.com/123", false},
		{"not a url", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.link, func(t *testing.T) {
			if got := IsYouTubeURL(tt.link); got != tt.expected {
				t.Errorf("IsYouTubeURL(%q) = %v, expected %v", tt.link, got, tt.expected)
			}
		})
	}
}

func TestExtractVideoID(t *testing.T) {
	tests := []struct {
		name     string
		link     string
		expected string
		wantErr  bool
	}{
		{"watch", "https://www.youtube.com/watch?v=4aZr5hZXP_s", "4aZr5hZXP_s", false},
		{"watch with params", "https://www.youtube.com/watch?v=4aZr5hZXP_s&t=42s", "4aZr5hZXP_s", false},
		{"short host", "https://youtu.be/4aZr5hZXP_s", "4aZr5hZXP_s", false},
		{"embed", "https://www.youtube.com/embed/4aZr5hZXP_s", "4aZr5hZXP_s", false},
		{"shorts", "https://www.youtube.com/shorts/4aZr5hZXP_s", "4aZr5hZXP_s", false},
		{"watch without id", "https://www.youtube.com/watch", "", true},
		{"channel", "https://www.youtube.com/@chef", "", true},
		{"other host", "https://example.com/watch?v=abc", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := ExtractVideoID(tt.link)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ExtractVideoID(%q) error = %v, wantErr %v", tt.link, err, tt.wantErr)
			}
			if id != tt.expected {
				t.Errorf("ExtractVideoID(%q) = %q, expected %q", tt.link, id, tt.expected)
			}
		})
	}
}

func TestWatchURL(t *testing.T) {
	expected := "https://www.youtube.com/watch?v=4aZr5hZXP_s"
	if got := WatchURL("4aZr5hZXP_s"); got != expected {
		t.Errorf("WatchURL() = %q, expected %q", got, expected)
	}
}

func TestTutorialLink(t *testing.T) {
	tests := []struct {
		name     string
		link     string
		expected string
		wantErr  bool
	}{
		{"short youtube link", "https://youtu.be/abc123", "https://www.youtube.com/watch?v=abc123", false},
		{"watch link keeps only id", " https://www.youtube.com/watch?v=abc123&feature=share ", "https://www.youtube.com/watch?v=abc123", false},
		{"other site", "https://example.com/video", "https://example.com/video", false},
		{"youtube without id", "https://www.youtube.com/", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TutorialLink(tt.link)
			if (err != nil) != tt.wantErr {
				t.Fatalf("TutorialLink(%q) error = %v, wantErr %v", tt.link, err, tt.wantErr)
			}
			if got != tt.expected {
				t.Errorf("TutorialLink(%q) = %q, expected %q", tt.link, got, tt.expected)
			}
		})
	}
}
