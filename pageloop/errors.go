package pageloop

import "errors"

var (
	errBadHeader     = errors.New("pageloop: malformed input header")
	errBadParam      = errors.New("pageloop: invalid N, M, S or K")
	errSourceMissing = errors.New("pageloop: source vertex not found after compaction")
)
