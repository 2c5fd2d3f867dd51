package batch

import (
	"context"

	"github.com/HulkBetii/YT-AllInOne/internal/cookies"
)

// Downloader is the external download-library boundary: one URL in, the
// downloaded file path or a classified error out.
type Downloader interface {
	Download(ctx context.Context, url, format string, src cookies.Source, outputDir string) (string, error)
}

// Converter is the media-processing boundary used for optional
// post-processing of a successful download.
type Converter interface {
	Convert(ctx context.Context, inputPath, format string) (string, error)
}
