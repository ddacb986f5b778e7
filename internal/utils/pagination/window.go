package pagination

// Window selects the portion of records addressed by offset and limit,
// preserving order. An offset past the end yields an empty result and a
// limit of zero or less applies no cap, so Window(records, 0, 0) is the
// whole ledger.
func Window[T any](records []T, limit, offset int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset > len(records) {
		offset = len(records)
	}
	window := records[offset:]
	if limit > 0 && limit < len(window) {
		window = window[:limit]
	}
	return window
}
