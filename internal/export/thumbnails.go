package export

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

// DefaultThumbnailBaseURL serves YouTube video thumbnails by ID.
const DefaultThumbnailBaseURL = "https://i.ytimg.com/vi"

const thumbnailTimeout = 10 * time.Second

// Thumbnail variants in quality order; the first one that exists wins.
var thumbnailOrder = []string{"maxresdefault.jpg", "sddefault.jpg", "hqdefault.jpg"}

// ThumbnailFetcher downloads the best available thumbnail for a video.
type ThumbnailFetcher struct {
	client  *http.Client
	baseURL string
}

// NewThumbnailFetcher creates a fetcher against the YouTube image host.
func NewThumbnailFetcher() *ThumbnailFetcher {
	return &ThumbnailFetcher{
		client:  &http.Client{Timeout: thumbnailTimeout},
		baseURL: DefaultThumbnailBaseURL,
	}
}

// SetBaseURL overrides the image host, mainly for tests.
func (f *ThumbnailFetcher) SetBaseURL(baseURL string) {
	if baseURL != "" {
		f.baseURL = baseURL
	}
}

// Download tries the thumbnail variants in quality order and saves the first
// hit as <outdir>/<videoID>.jpg, returning the saved path.
func (f *ThumbnailFetcher) Download(ctx context.Context, videoID, outdir string) (string, error) {
	for _, variant := range thumbnailOrder {
		url := fmt.Sprintf("%s/%s/%s", f.baseURL, videoID, variant)
		data, err := f.get(ctx, url)
		if err != nil || len(data) == 0 {
			continue
		}

		dest := filepath.Join(outdir, videoID+".jpg")
		if err := os.WriteFile(dest, data, 0644); err != nil {
			return "", fmt.Errorf("failed to save thumbnail: %w", err)
		}
		return dest, nil
	}
	return "", fmt.Errorf("no thumbnail available for %s", videoID)
}

func (f *ThumbnailFetcher) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
