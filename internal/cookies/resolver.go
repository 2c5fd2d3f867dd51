package cookies

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/HulkBetii/YT-AllInOne/internal/model"
)

// Browser names accepted for --cookies-from-browser. "none" (or empty)
// disables cookies entirely.
const (
	BrowserChrome  = "chrome"
	BrowserEdge    = "edge"
	BrowserFirefox = "firefox"
	BrowserSafari  = "safari"
	BrowserBrave   = "brave"
	BrowserNone    = "none"
)

var knownBrowsers = map[string]bool{
	BrowserChrome:  true,
	BrowserEdge:    true,
	BrowserFirefox: true,
	BrowserSafari:  true,
	BrowserBrave:   true,
}

// Source is an opaque cookie source descriptor consumed by the download step.
// The zero value means "no cookies".
type Source struct {
	Browser string
}

// NoCookies is the sentinel source for downloads without browser cookies.
var NoCookies = Source{}

// None reports whether the source carries no cookies.
func (s Source) None() bool {
	return s.Browser == ""
}

// ProbeFunc checks whether a browser's local cookie storage is usable. A
// CookieDatabaseLocked error means the browser holds the database open; this
// is recoverable and handled by the batch orchestrator, never fatal.
type ProbeFunc func(Source) error

// Resolver validates a browser choice and probes its cookie storage.
type Resolver struct {
	// Probe overrides the storage check, mainly for tests. Nil uses the
	// filesystem probe.
	Probe ProbeFunc
}

// Browsers returns the accepted browser choices, "none" last.
func Browsers() []string {
	return []string{BrowserChrome, BrowserEdge, BrowserFirefox, BrowserSafari, BrowserBrave, BrowserNone}
}

// Resolve maps a requested browser choice to a cookie source. Unknown names
// fail with InvalidConfiguration; a locked cookie database surfaces as a
// CookieDatabaseLocked error alongside the (still usable) source so the
// caller can decide to demote to no-cookie mode.
func (r *Resolver) Resolve(choice string) (Source, error) {
	normalized := strings.ToLower(strings.TrimSpace(choice))
	if normalized == "" || normalized == BrowserNone {
		return NoCookies, nil
	}
	if !knownBrowsers[normalized] {
		return NoCookies, model.NewDownloadError(
			model.ErrorKindInvalidConfiguration,
			"unknown browser: "+choice,
			"supported: "+strings.Join(Browsers(), "|"),
		)
	}

	src := Source{Browser: normalized}
	probe := r.Probe
	if probe == nil {
		probe = probeCookieDatabase
	}
	if err := probe(src); err != nil {
		return src, err
	}
	return src, nil
}

// probeCookieDatabase checks that the browser's cookie database is readable.
// A missing database is fine (yt-dlp locates profiles itself); an open that
// fails with a busy/locked condition maps to CookieDatabaseLocked.
func probeCookieDatabase(src Source) error {
	path := cookieDatabasePath(src.Browser)
	if path == "" {
		return nil
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) || os.IsPermission(err) {
			return nil
		}
		return model.NewDownloadError(
			model.ErrorKindCookieDatabaseLocked,
			"could not open "+src.Browser+" cookie database: "+err.Error(),
			"close the browser and retry, or pick another browser",
		)
	}
	return f.Close()
}

// cookieDatabasePath returns the default cookie store location for the
// browser on the current OS, or empty when unknown.
func cookieDatabasePath(browser string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	switch runtime.GOOS {
	case "darwin":
		switch browser {
		case BrowserChrome:
			return filepath.Join(home, "Library", "Application Support", "Google", "Chrome", "Default", "Cookies")
		case BrowserEdge:
			return filepath.Join(home, "Library", "Application Support", "Microsoft Edge", "Default", "Cookies")
		case BrowserBrave:
			return filepath.Join(home, "Library", "Application Support", "BraveSoftware", "Brave-Browser", "Default", "Cookies")
		case BrowserSafari:
			return filepath.Join(home, "Library", "Cookies", "Cookies.binarycookies")
		}
	case "windows":
		local := os.Getenv("LOCALAPPDATA")
		if local == "" {
			return ""
		}
		switch browser {
		case BrowserChrome:
			return filepath.Join(local, "Google", "Chrome", "User Data", "Default", "Network", "Cookies")
		case BrowserEdge:
			return filepath.Join(local, "Microsoft", "Edge", "User Data", "Default", "Network", "Cookies")
		case BrowserBrave:
			return filepath.Join(local, "BraveSoftware", "Brave-Browser", "User Data", "Default", "Network", "Cookies")
		}
	default:
		switch browser {
		case BrowserChrome:
			return filepath.Join(home, ".config", "google-chrome", "Default", "Cookies")
		case BrowserEdge:
			return filepath.Join(home, ".config", "microsoft-edge", "Default", "Cookies")
		case BrowserBrave:
			return filepath.Join(home, ".config", "BraveSoftware", "Brave-Browser", "Default", "Cookies")
		}
	}
	// Firefox keeps per-profile sqlite files; leave discovery to yt-dlp.
	return ""
}
