package version

import "strings"

// mixinArgumentString implements the legacy minecraftArguments merge rule
// (§9 open question 2): when a legacy manifest inherits from another legacy
// manifest, the child's game argument string is not appended or replaced
// wholesale — it is mixed into the parent's flag/value pairs, keeping the
// first value seen for any flag except --tweakClass, whose values union
// across the chain. base is the already-accumulated token list (root
// first); overlay is the next manifest's token list.
func mixinArgumentString(base, overlay []string) []string {
	order := make([]string, 0)
	values := make(map[string][]string)
	seen := make(map[string]bool)

	consume := func(tokens []string) {
		for i := 0; i < len(tokens); i++ {
			flag := tokens[i]
			if !strings.HasPrefix(flag, "--") {
				continue
			}
			value := ""
			if i+1 < len(tokens) && !strings.HasPrefix(tokens[i+1], "--") {
				value = tokens[i+1]
				i++
			}
			if flag == "--tweakClass" {
				values[flag] = append(values[flag], value)
				if !seen[flag] {
					seen[flag] = true
					order = append(order, flag)
				}
				continue
			}
			if seen[flag] {
				continue // first value per flag wins
			}
			seen[flag] = true
			order = append(order, flag)
			values[flag] = []string{value}
		}
	}

	consume(base)
	consume(overlay)

	out := make([]string, 0, len(order)*2)
	for _, flag := range order {
		for _, v := range values[flag] {
			out = append(out, flag, v)
		}
	}
	return out
}

// tokensFromPlain recovers the flat token list from a legacy Game argument
// list, which normalize never marks Conditional.
func tokensFromPlain(elements []ArgumentElement) []string {
	out := make([]string, 0, len(elements))
	for _, e := range elements {
		out = append(out, e.Plain)
	}
	return out
}
