package batch

// Package batch implements the download orchestration core: it resolves the
// cookie source and stream selector once per batch, attempts every URL in
// input order (optionally through a bounded worker pool), applies the
// single no-cookie retry on a locked cookie database, and invokes optional
// post-processing, collecting one outcome per URL.
