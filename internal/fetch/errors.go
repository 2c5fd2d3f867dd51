package fetch

import (
	"regexp"
	"strings"

	"github.com/HulkBetii/YT-AllInOne/internal/model"
)

var ansiRe = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]|\[[0-9;]*m`)

// CleanANSI strips ANSI escape sequences and control characters from tool
// diagnostics so they are safe to log and display.
func CleanANSI(text string) string {
	text = ansiRe.ReplaceAllString(text, "")
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if r < 0x20 || (r >= 0x7f && r <= 0x9f) {
			continue
		}
		b.WriteRune(r)
	}
	return strings.TrimSpace(b.String())
}

// Classify maps a yt-dlp failure to the error taxonomy by inspecting its
// diagnostic text. Match order follows the specificity of yt-dlp messages:
// cookie lock first, then auth/bot checks, network, access restrictions.
func Classify(err error) *model.DownloadError {
	msg := CleanANSI(err.Error())
	lower := strings.ToLower(msg)

	switch {
	case strings.Contains(lower, "could not copy") && strings.Contains(lower, "cookie database"):
		return model.NewDownloadError(model.ErrorKindCookieDatabaseLocked, msg,
			"close the browser and retry, or pick another browser")

	case strings.Contains(lower, "sign in to confirm") && strings.Contains(lower, "not a bot"):
		return model.NewDownloadError(model.ErrorKindAgeRestricted, msg,
			"YouTube requires authentication; use --cookies-from-browser chrome|edge|firefox")

	case containsAny(lower,
		"temporary failure", "timed out", "connection", "read error",
		"http error 5", "http error 429", "too many requests"):
		return model.NewDownloadError(model.ErrorKindNetwork, msg,
			"check the network and retry")

	case containsAny(lower, "http error 403", "http error 410", "private video"):
		return model.NewDownloadError(model.ErrorKindPrivateVideo, msg,
			"the video is private or removed; access rights or another URL needed")

	case containsAny(lower, "available in your country", "geo restriction", "geo-restricted"):
		return model.NewDownloadError(model.ErrorKindGeoRestricted, msg,
			"use cookies from a session in an allowed region")

	case strings.Contains(lower, "age") && containsAny(lower, "verify", "gate", "consent", "restricted"):
		return model.NewDownloadError(model.ErrorKindAgeRestricted, msg,
			"use --cookies-from-browser to pass the age gate")

	case containsAny(lower, "unsupported url", "is not a valid url"):
		return model.NewDownloadError(model.ErrorKindUnsupportedURL, msg,
			"only YouTube video/playlist/channel URLs are supported")

	default:
		return model.NewDownloadError(model.ErrorKindUnknown, msg,
			"retry with different options or check the logs")
	}
}

func containsAny(s string, needles ...string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
