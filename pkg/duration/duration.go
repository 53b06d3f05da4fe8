// Package duration parses compact chat-style durations like "1m 30s" or
// "2h15m". Parsing is best effort: malformed pieces contribute nothing
// instead of failing the whole string, because the input is live chat.
package duration

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	tokenRe = regexp.MustCompile(`^(?:\d+(?:ms|[dhms]))+$`)
	partRe  = regexp.MustCompile(`(\d+)(ms|[dhms])`)
)

var unitFactors = map[string]time.Duration{
	"d":  24 * time.Hour,
	"h":  time.Hour,
	"m":  time.Minute,
	"s":  time.Second,
	"ms": time.Millisecond,
}

// Parse sums every well-formed <integer><unit> pair in text. Units may
// appear in any order and repeat; repeated units accumulate. A field that
// is not entirely made of such pairs is skipped.
func Parse(text string) time.Duration {
	var total time.Duration

	for _, field := range strings.Fields(text) {
		if !tokenRe.MatchString(field) {
			continue
		}
		for _, part := range partRe.FindAllStringSubmatch(field, -1) {
			n, err := strconv.ParseInt(part[1], 10, 64)
			if err != nil {
				continue
			}
			total += time.Duration(n) * unitFactors[part[2]]
		}
	}

	return total
}
