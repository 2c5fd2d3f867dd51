package model

// Package model defines domain data structures shared across the app: download
// requests, per-URL outcomes, batch results, status enums, and the classified
// error taxonomy surfaced by the external download and media tools.
