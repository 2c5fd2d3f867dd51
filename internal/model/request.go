package model

// OutcomeStatus is the terminal state of a single download request.
type OutcomeStatus string

const (
	OutcomeSucceeded OutcomeStatus = "succeeded"
	OutcomeFailed    OutcomeStatus = "failed"
)

// DownloadRequest describes one URL of a batch. Immutable once constructed;
// exactly one instance exists per input URL.
type DownloadRequest struct {
	URL          string
	Quality      string // quality label, e.g. "1080p"
	CookieSource string // browser name, or empty for no cookies
	OutputDir    string
}

// DownloadOutcome records the terminal result of one DownloadRequest. Created
// once per request and never mutated after the attempt completes.
type DownloadOutcome struct {
	Request    DownloadRequest
	Status     OutcomeStatus
	OutputPath string    // path to the final artifact, empty on failure
	ErrorKind  ErrorKind // ErrorKindNone on success
	Err        string    // diagnostic text from the failing tool

	// UsedCookieFallback is true only if the cookie-bound attempt failed with
	// a cookie-database error and a no-cookie retry was then made, regardless
	// of whether that retry succeeded.
	UsedCookieFallback bool
}

// Succeeded reports whether the outcome ended in success.
func (o DownloadOutcome) Succeeded() bool {
	return o.Status == OutcomeSucceeded
}

// BatchResult is the ordered sequence of outcomes for one batch, one per input
// URL, order matching input order.
type BatchResult struct {
	ID       string // batch identifier, UUIDv7
	Outcomes []DownloadOutcome
}

// FailedCount returns the number of failed outcomes.
func (r BatchResult) FailedCount() int {
	n := 0
	for _, o := range r.Outcomes {
		if !o.Succeeded() {
			n++
		}
	}
	return n
}

// AllSucceeded reports whether every URL in the batch succeeded.
func (r BatchResult) AllSucceeded() bool {
	return r.FailedCount() == 0
}
