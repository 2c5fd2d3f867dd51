package selector

import (
	"strings"

	"github.com/HulkBetii/YT-AllInOne/internal/model"
)

// Quality labels accepted on the command line and in settings.
const (
	Quality2160p     = "2160p"
	Quality1440p     = "1440p"
	Quality1080p     = "1080p"
	Quality720p      = "720p"
	Quality480p      = "480p"
	QualityBest      = "best"
	QualityAudioOnly = "audio-only"
)

// formatTable maps each quality label to the stream-format expression passed
// to yt-dlp. Height-capped entries keep the best audio track and fall back to
// a progressive stream of the same cap.
var formatTable = map[string]string{
	Quality2160p:     "bestvideo[height<=2160]+bestaudio/best[height<=2160]",
	Quality1440p:     "bestvideo[height<=1440]+bestaudio/best[height<=1440]",
	Quality1080p:     "bestvideo[height<=1080]+bestaudio/best[height<=1080]",
	Quality720p:      "bestvideo[height<=720]+bestaudio/best[height<=720]",
	Quality480p:      "bestvideo[height<=480]+bestaudio/best[height<=480]",
	QualityBest:      "bestvideo*+bestaudio/best",
	QualityAudioOnly: "bestaudio/best",
}

// Select maps a user-facing quality label to the stream-selection expression
// understood by the download library. Unrecognized labels fail with an
// InvalidConfiguration error. Pure function, no side effects.
func Select(label string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(label))
	if expr, ok := formatTable[normalized]; ok {
		return expr, nil
	}
	return "", model.NewDownloadError(
		model.ErrorKindInvalidConfiguration,
		"unsupported quality: "+label,
		"supported: "+strings.Join(Labels(), "|"),
	)
}

// Labels returns the recognized quality labels in descending resolution order.
func Labels() []string {
	return []string{
		Quality2160p,
		Quality1440p,
		Quality1080p,
		Quality720p,
		Quality480p,
		QualityBest,
		QualityAudioOnly,
	}
}
