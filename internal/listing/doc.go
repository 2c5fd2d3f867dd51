package listing

// Package listing expands playlist and channel inputs into individual video
// entries via the ytdlp library and applies shorts/regular filters and limits
// before a batch is assembled.
