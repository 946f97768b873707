package grammar

import (
	"strconv"
	"strings"
)

// Parse splits the text following a grammar prefix into normalized channel
// values. Malformed tokens are dropped rather than reported.
func Parse(g Grammar, rest string) []float64 {
	if g == Hex {
		return parseHex(rest)
	}
	return parseNumeric(rest, g.Scale())
}

// parseHex reads consecutive two-character runs as bytes. A short trailing
// run is padded with '0'; an unparsable run reads as 0.
func parseHex(rest string) []float64 {
	s := strings.ReplaceAll(rest, " ", "")

	var channels []float64
	for len(s) > 0 {
		n := min(2, len(s))
		pair := s[:n]
		s = s[n:]
		if len(pair) < 2 {
			pair += "0"
		}

		v, err := strconv.ParseUint(pair, 16, 8)
		if err != nil {
			v = 0
		}
		channels = append(channels, float64(v)/255)
	}
	return channels
}

// parseNumeric reads whitespace or comma separated tokens. A token containing
// a decimal point is taken as already normalized; anything else is divided by
// the scale entry at the token's position. Tokens that fail to parse are
// dropped, so later channels shift down into their slot while keeping the
// divisor of the position they were typed in.
func parseNumeric(rest string, scale []float64) []float64 {
	tokens := strings.Fields(strings.ReplaceAll(rest, ",", " "))

	var channels []float64
	for i, tok := range tokens {
		if i >= len(scale) {
			break
		}

		if strings.Contains(tok, ".") {
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				continue
			}
			channels = append(channels, v)
			continue
		}

		n, err := strconv.Atoi(tok)
		if err != nil {
			continue
		}
		channels = append(channels, float64(n)/scale[i])
	}
	return channels
}
