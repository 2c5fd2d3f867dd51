package urlparse

import (
	"testing"

	"github.com/HulkBetii/YT-AllInOne/internal/model"
)

func TestParseRecognizedInputs(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		wantKind Kind
		wantURL  string
	}{
		{
			"short link",
			"https://youtu.be/dQw4w9WgXcQ",
			KindVideo,
			"https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		},
		{
			"short link without scheme",
			"youtu.be/dQw4w9WgXcQ?t=42",
			KindVideo,
			"https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		},
		{
			"watch url",
			"https://www.youtube.com/watch?v=dQw4w9WgXcQ&list=ignored",
			KindVideo,
			"https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		},
		{
			"watch url with leading params",
			"https://m.youtube.com/watch?feature=share&v=dQw4w9WgXcQ",
			KindVideo,
			"https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		},
		{
			"shorts keeps shorts form",
			"https://www.youtube.com/shorts/dQw4w9WgXcQ",
			KindVideo,
			"https://www.youtube.com/shorts/dQw4w9WgXcQ",
		},
		{
			"playlist",
			"https://www.youtube.com/playlist?list=PL0123456789",
			KindPlaylist,
			"https://www.youtube.com/playlist?list=PL0123456789",
		},
		{
			"channel id",
			"https://www.youtube.com/channel/UC0123456789abcdefghijkl/featured",
			KindChannel,
			"https://www.youtube.com/channel/UC0123456789abcdefghijkl/videos",
		},
		{
			"bare handle",
			"@SomeCreator",
			KindHandle,
			"https://www.youtube.com/@somecreator/videos",
		},
		{
			"handle url",
			"https://www.youtube.com/@SomeCreator/videos",
			KindHandle,
			"https://www.youtube.com/@somecreator/videos",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.raw)
			if err != nil {
				t.Fatalf("Parse(%q) returned error: %v", tt.raw, err)
			}
			if got.Kind != tt.wantKind {
				t.Errorf("Kind = %v, want %v", got.Kind, tt.wantKind)
			}
			if got.CanonicalURL != tt.wantURL {
				t.Errorf("CanonicalURL = %q, want %q", got.CanonicalURL, tt.wantURL)
			}
			if got.Raw != tt.raw {
				t.Errorf("Raw = %q, want %q", got.Raw, tt.raw)
			}
		})
	}
}

func TestParseUnsupportedInputs(t *testing.T) {
	for _, raw := range []string{
		"",
		"   ",
		"https://vimeo.com/12345",
		"https://www.youtube.com/watch?v=short",
		"not a url at all",
	} {
		_, err := Parse(raw)
		if err == nil {
			t.Errorf("Parse(%q) expected error, got nil", raw)
			continue
		}
		if model.KindOf(err) != model.ErrorKindUnsupportedURL {
			t.Errorf("Parse(%q) error kind = %v, want UnsupportedUrl", raw, model.KindOf(err))
		}
	}
}
