package selector

import (
	"strings"
	"testing"

	"github.com/HulkBetii/YT-AllInOne/internal/model"
)

func TestSelectKnownLabels(t *testing.T) {
	tests := []struct {
		label string
		want  string
	}{
		{"best", "bestvideo*+bestaudio/best"},
		{"2160p", "bestvideo[height<=2160]+bestaudio/best[height<=2160]"},
		{"1080p", "bestvideo[height<=1080]+bestaudio/best[height<=1080]"},
		{"720p", "bestvideo[height<=720]+bestaudio/best[height<=720]"},
		{"480p", "bestvideo[height<=480]+bestaudio/best[height<=480]"},
		{"audio-only", "bestaudio/best"},
		{" 1080P ", "bestvideo[height<=1080]+bestaudio/best[height<=1080]"},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, err := Select(tt.label)
			if err != nil {
				t.Fatalf("Select(%q) returned error: %v", tt.label, err)
			}
			if got != tt.want {
				t.Errorf("Select(%q) = %q, want %q", tt.label, got, tt.want)
			}
		})
	}
}

func TestSelectUnknownLabel(t *testing.T) {
	for _, label := range []string{"8k", "144p", "", "ultra"} {
		_, err := Select(label)
		if err == nil {
			t.Errorf("Select(%q) expected error, got nil", label)
			continue
		}
		if model.KindOf(err) != model.ErrorKindInvalidConfiguration {
			t.Errorf("Select(%q) error kind = %v, want InvalidConfiguration", label, model.KindOf(err))
		}
	}
}

func TestLabelsCoverTable(t *testing.T) {
	labels := Labels()
	if len(labels) != len(formatTable) {
		t.Fatalf("Labels() returned %d entries, table has %d", len(labels), len(formatTable))
	}
	for _, label := range labels {
		if _, ok := formatTable[label]; !ok {
			t.Errorf("Label %q missing from format table", label)
		}
	}
	if !strings.Contains(strings.Join(labels, "|"), "best") {
		t.Error("Expected 'best' label to be advertised")
	}
}
