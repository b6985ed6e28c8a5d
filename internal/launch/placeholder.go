package launch

import "regexp"

var placeholderPattern = regexp.MustCompile(`\$\{([A-Za-z0-9_]+)\}`)

// interpolate performs a single-pass scan over s, substituting every
// ${ident} found in vals. An ident with no entry in vals is left verbatim,
// per the source's fallback behavior; nested ${...} is not supported.
func interpolate(s string, vals map[string]string) string {
	return placeholderPattern.ReplaceAllStringFunc(s, func(match string) string {
		key := match[2 : len(match)-1]
		if v, ok := vals[key]; ok {
			return v
		}
		return match
	})
}

func interpolateAll(tokens []string, vals map[string]string) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = interpolate(t, vals)
	}
	return out
}
