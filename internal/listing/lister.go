package listing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ytget/ytdlp/v2"

	"github.com/HulkBetii/YT-AllInOne/internal/model"
	"github.com/HulkBetii/YT-AllInOne/internal/urlparse"
)

// Timeout constants
const (
	DefaultListTimeout = 60 * time.Second
)

// URL templates
const (
	YouTubeVideoURLTemplate = "https://www.youtube.com/watch?v=%s"
)

// Entry is one video of an expanded input.
type Entry struct {
	ID          string
	Title       string
	URL         string
	DurationSec float64 // 0 when unknown
}

// Filter selects entries to keep.
type Filter func(Entry) bool

// IsShorts reports whether the entry looks like a YouTube Short, by URL or
// by duration (60 seconds or less).
func IsShorts(e Entry) bool {
	if strings.Contains(strings.ToLower(e.URL), "/shorts/") {
		return true
	}
	return e.DurationSec > 0 && e.DurationSec <= 60
}

// IsRegular is the complement of IsShorts.
func IsRegular(e Entry) bool {
	return !IsShorts(e)
}

// Apply filters entries and truncates to limit (0 means no limit), keeping
// input order.
func Apply(entries []Entry, filter Filter, limit int) []Entry {
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if filter != nil && !filter(e) {
			continue
		}
		out = append(out, e)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out
}

// fetchFunc fetches the entries of a playlist by ID. Swappable for tests.
type fetchFunc func(ctx context.Context, playlistID string) ([]Entry, error)

// Service expands parsed inputs into video entries.
type Service struct {
	timeout time.Duration
	fetch   fetchFunc
}

// NewService creates a lister backed by the ytdlp library.
func NewService() *Service {
	return &Service{
		timeout: DefaultListTimeout,
		fetch:   fetchPlaylistItems,
	}
}

// Expand turns a parsed input into the ordered list of video entries it
// denotes. Videos map to a single entry; playlists and channels are listed
// through the ytdlp library. Handle inputs cannot be listed without a channel
// ID and fail with UnsupportedUrl.
func (s *Service) Expand(ctx context.Context, parsed urlparse.Parsed, filter Filter, limit int) ([]Entry, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	switch parsed.Kind {
	case urlparse.KindVideo:
		return Apply([]Entry{{URL: parsed.CanonicalURL}}, filter, limit), nil

	case urlparse.KindPlaylist:
		id := playlistID(parsed.CanonicalURL)
		entries, err := s.fetch(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to get playlist items: %w", err)
		}
		return Apply(entries, filter, limit), nil

	case urlparse.KindChannel:
		// A channel's uploads playlist shares its ID with the UC prefix
		// swapped for UU.
		id := "UU" + strings.TrimPrefix(channelID(parsed.CanonicalURL), "UC")
		entries, err := s.fetch(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to get channel uploads: %w", err)
		}
		return Apply(entries, filter, limit), nil

	default:
		return nil, model.NewDownloadError(
			model.ErrorKindUnsupportedURL,
			"cannot list videos for "+parsed.Raw,
			"use the channel's /channel/UC… URL instead of the @handle",
		)
	}
}

// fetchPlaylistItems lists a playlist through the ytdlp library.
func fetchPlaylistItems(ctx context.Context, playlistID string) ([]Entry, error) {
	d := ytdlp.New()
	items, err := d.GetPlaylistItemsAll(ctx, playlistID, 0)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(items))
	for _, it := range items {
		entries = append(entries, Entry{
			ID:    it.VideoID,
			Title: it.Title,
			URL:   fmt.Sprintf(YouTubeVideoURLTemplate, it.VideoID),
		})
	}
	return entries, nil
}

// playlistID extracts the list ID from a canonical playlist URL.
func playlistID(url string) string {
	const param = "list="
	if idx := strings.Index(url, param); idx >= 0 {
		id := url[idx+len(param):]
		if amp := strings.Index(id, "&"); amp >= 0 {
			id = id[:amp]
		}
		return id
	}
	return ""
}

// channelID extracts the UC… ID from a canonical channel URL.
func channelID(url string) string {
	const marker = "/channel/"
	idx := strings.Index(url, marker)
	if idx < 0 {
		return ""
	}
	id := url[idx+len(marker):]
	if slash := strings.Index(id, "/"); slash >= 0 {
		id = id[:slash]
	}
	return id
}
