package fetch

// Package fetch wraps the external download library (yt-dlp via
// github.com/lrstanley/go-ytdlp) behind the Downloader boundary used by the
// batch orchestrator: one URL in, one output path or classified error out.
