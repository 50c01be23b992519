package domain

import (
	"strconv"
	"strings"
)

// assetPlaceholder is the marker character whose run in a company's pattern
// is replaced by the counter value.
const assetPlaceholder = '#'

// RenderAssetID turns a counter value into a human-readable asset id.
//
// The first maximal run of '#' in the pattern is replaced by n rendered in
// decimal and left-padded with zeros to at least the run's length; when n has
// more digits than the run, the full number is used unpadded. Everything else
// passes through unchanged, including any later '#' runs — only the first run
// is a substitution target, mirroring a single-replace, and kept that way on
// purpose.
//
// A pattern without a placeholder run yields the literal pattern for every
// item. That is a tenant configuration problem; flagging it belongs to the
// configuration surface, not here.
func RenderAssetID(pattern string, n int64) string {
	start, length := placeholderRun(pattern)
	if length == 0 {
		return pattern
	}

	num := strconv.FormatInt(n, 10)
	if len(num) < length {
		num = strings.Repeat("0", length-len(num)) + num
	}

	return pattern[:start] + num + pattern[start+length:]
}

// HasPlaceholder reports whether the pattern contains a substitution run.
func HasPlaceholder(pattern string) bool {
	_, length := placeholderRun(pattern)
	return length > 0
}

// placeholderRun finds the first maximal run of the placeholder character.
// Returns (0, 0) when the pattern has none.
func placeholderRun(pattern string) (start, length int) {
	start = strings.IndexByte(pattern, assetPlaceholder)
	if start < 0 {
		return 0, 0
	}
	end := start
	for end < len(pattern) && pattern[end] == assetPlaceholder {
		end++
	}
	return start, end - start
}
