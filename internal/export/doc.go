package export

// Package export saves video thumbnails and writes tag exports (tags.csv and
// tags.json) for listed entries.
