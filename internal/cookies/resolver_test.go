package cookies

import (
	"testing"

	"github.com/HulkBetii/YT-AllInOne/internal/model"
)

func TestResolveNone(t *testing.T) {
	r := &Resolver{Probe: func(Source) error {
		t.Error("Probe should not run for no-cookie mode")
		return nil
	}}

	for _, choice := range []string{"", "none", " NONE "} {
		src, err := r.Resolve(choice)
		if err != nil {
			t.Errorf("Resolve(%q) returned error: %v", choice, err)
		}
		if !src.None() {
			t.Errorf("Resolve(%q) expected no-cookie source, got %+v", choice, src)
		}
	}
}

func TestResolveKnownBrowser(t *testing.T) {
	probed := ""
	r := &Resolver{Probe: func(src Source) error {
		probed = src.Browser
		return nil
	}}

	src, err := r.Resolve("Chrome")
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if src.Browser != BrowserChrome {
		t.Errorf("Expected browser %q, got %q", BrowserChrome, src.Browser)
	}
	if probed != BrowserChrome {
		t.Errorf("Expected probe for %q, got %q", BrowserChrome, probed)
	}
}

func TestResolveUnknownBrowser(t *testing.T) {
	r := &Resolver{}
	_, err := r.Resolve("netscape")
	if err == nil {
		t.Fatal("Expected error for unknown browser, got nil")
	}
	if model.KindOf(err) != model.ErrorKindInvalidConfiguration {
		t.Errorf("Expected InvalidConfiguration, got %v", model.KindOf(err))
	}
}

func TestResolveLockedDatabase(t *testing.T) {
	r := &Resolver{Probe: func(src Source) error {
		return model.NewDownloadError(model.ErrorKindCookieDatabaseLocked, "could not copy cookie database", "")
	}}

	src, err := r.Resolve("firefox")
	if err == nil {
		t.Fatal("Expected lock error, got nil")
	}
	if !model.IsCookieLocked(err) {
		t.Errorf("Expected CookieDatabaseLocked, got %v", model.KindOf(err))
	}
	// The source is still returned so the caller can decide how to demote.
	if src.Browser != BrowserFirefox {
		t.Errorf("Expected source to carry %q, got %q", BrowserFirefox, src.Browser)
	}
}
