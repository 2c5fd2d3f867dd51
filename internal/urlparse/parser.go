package urlparse

import (
	"regexp"
	"strings"

	"github.com/HulkBetii/YT-AllInOne/internal/model"
)

// Kind classifies a recognized YouTube input.
type Kind string

const (
	KindVideo    Kind = "video"
	KindPlaylist Kind = "playlist"
	KindChannel  Kind = "channel"
	KindHandle   Kind = "handle"
)

// Parsed is the canonical form of a recognized input.
type Parsed struct {
	Kind         Kind
	CanonicalURL string
	Raw          string
}

const (
	videoIDPattern   = `[A-Za-z0-9_-]{11}`
	listIDPattern    = `[A-Za-z0-9_-]{10,}`
	channelIDPattern = `UC[A-Za-z0-9_-]{22}`
	handlePattern    = `@[A-Za-z0-9._-]{3,30}`

	youtubeHost = `(?:www\.|m\.)?youtube\.com`
	youtuBeHost = `youtu\.be`
)

var (
	bareHandleRe = regexp.MustCompile(`(?i)^(` + handlePattern + `)$`)
	shortLinkRe  = regexp.MustCompile(`(?i)^(?:https?://)?` + youtuBeHost + `/(` + videoIDPattern + `)(?:[/?#].*)?$`)
	watchRe      = regexp.MustCompile(`(?i)^(?:https?://)?` + youtubeHost + `/watch\?(?:.*&)?v=(` + videoIDPattern + `)(?:[&#/].*)?$`)
	shortsRe     = regexp.MustCompile(`(?i)^(?:https?://)?` + youtubeHost + `/shorts/(` + videoIDPattern + `)(?:[/?#].*)?$`)
	playlistRe   = regexp.MustCompile(`(?i)^(?:https?://)?` + youtubeHost + `/playlist\?(?:.*&)?list=(` + listIDPattern + `)(?:[&#/].*)?$`)
	channelRe    = regexp.MustCompile(`(?i)^(?:https?://)?` + youtubeHost + `/channel/(` + channelIDPattern + `)(?:/.*)?$`)
	handleURLRe  = regexp.MustCompile(`(?i)^(?:https?://)?` + youtubeHost + `/(` + handlePattern + `)(?:/videos)?(?:[/?#].*)?$`)
)

// Parse canonicalizes a YouTube input: youtu.be short links, watch URLs,
// shorts, playlists, channel IDs, and @handles (bare or as URL). Unrecognized
// input fails with an UnsupportedUrl error.
func Parse(raw string) (Parsed, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Parsed{}, unsupported(raw)
	}

	if m := bareHandleRe.FindStringSubmatch(s); m != nil {
		handle := strings.ToLower(m[1])
		return Parsed{Kind: KindHandle, CanonicalURL: "https://www.youtube.com/" + handle + "/videos", Raw: raw}, nil
	}

	if m := shortLinkRe.FindStringSubmatch(s); m != nil {
		return Parsed{Kind: KindVideo, CanonicalURL: "https://www.youtube.com/watch?v=" + m[1], Raw: raw}, nil
	}

	if m := watchRe.FindStringSubmatch(s); m != nil {
		return Parsed{Kind: KindVideo, CanonicalURL: "https://www.youtube.com/watch?v=" + m[1], Raw: raw}, nil
	}

	// Shorts keep their canonical /shorts/ form but classify as video.
	if m := shortsRe.FindStringSubmatch(s); m != nil {
		return Parsed{Kind: KindVideo, CanonicalURL: "https://www.youtube.com/shorts/" + m[1], Raw: raw}, nil
	}

	if m := playlistRe.FindStringSubmatch(s); m != nil {
		return Parsed{Kind: KindPlaylist, CanonicalURL: "https://www.youtube.com/playlist?list=" + m[1], Raw: raw}, nil
	}

	if m := channelRe.FindStringSubmatch(s); m != nil {
		return Parsed{Kind: KindChannel, CanonicalURL: "https://www.youtube.com/channel/" + m[1] + "/videos", Raw: raw}, nil
	}

	if m := handleURLRe.FindStringSubmatch(s); m != nil {
		handle := strings.ToLower(m[1])
		return Parsed{Kind: KindHandle, CanonicalURL: "https://www.youtube.com/" + handle + "/videos", Raw: raw}, nil
	}

	return Parsed{}, unsupported(raw)
}

func unsupported(raw string) error {
	return model.NewDownloadError(
		model.ErrorKindUnsupportedURL,
		"unrecognized input: "+raw,
		"expected a YouTube video/playlist/channel URL or @handle",
	)
}
