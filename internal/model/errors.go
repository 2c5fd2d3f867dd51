package model

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failed download or post-processing attempt.
type ErrorKind string

const (
	// ErrorKindNone is the zero value for outcomes that did not fail.
	ErrorKindNone ErrorKind = ""

	// ErrorKindInvalidConfiguration means the batch configuration was rejected
	// before any URL was attempted (unknown quality label or browser name).
	ErrorKindInvalidConfiguration ErrorKind = "InvalidConfiguration"

	// ErrorKindCookieDatabaseLocked means the browser cookie database could not
	// be copied, typically because the browser is running. Recoverable: the
	// orchestrator retries once without cookies.
	ErrorKindCookieDatabaseLocked ErrorKind = "CookieDatabaseLocked"

	ErrorKindNetwork              ErrorKind = "NetworkError"
	ErrorKindAgeRestricted        ErrorKind = "AgeRestricted"
	ErrorKindPrivateVideo         ErrorKind = "PrivateVideo"
	ErrorKindGeoRestricted        ErrorKind = "GeoRestricted"
	ErrorKindUnsupportedURL       ErrorKind = "UnsupportedUrl"
	ErrorKindPostProcessingFailed ErrorKind = "PostProcessingFailed"
	ErrorKindUnknown              ErrorKind = "Unknown"
)

// String returns the string representation of ErrorKind.
func (k ErrorKind) String() string {
	return string(k)
}

// DownloadError carries a classified failure from the download library or the
// media-processing binary, preserving the tool's diagnostic text and an
// optional user-facing hint.
type DownloadError struct {
	Kind    ErrorKind
	Message string
	Hint    string
}

// Error implements the error interface.
func (e *DownloadError) Error() string {
	if e.Message == "" {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// NewDownloadError creates a classified download error.
func NewDownloadError(kind ErrorKind, message, hint string) *DownloadError {
	return &DownloadError{Kind: kind, Message: message, Hint: hint}
}

// KindOf extracts the ErrorKind from err. Errors that are not a DownloadError
// are reported as ErrorKindUnknown; nil maps to ErrorKindNone.
func KindOf(err error) ErrorKind {
	if err == nil {
		return ErrorKindNone
	}
	var de *DownloadError
	if errors.As(err, &de) {
		return de.Kind
	}
	return ErrorKindUnknown
}

// IsCookieLocked reports whether err is a cookie-database acquisition failure,
// the one condition the orchestrator recovers from with a no-cookie retry.
func IsCookieLocked(err error) bool {
	return KindOf(err) == ErrorKindCookieDatabaseLocked
}
