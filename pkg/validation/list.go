package validation

import "strings"

// ParseList splits a comma separated value, trims every entry and drops empty ones.
// ParseList("a, b ,c,,") yields ["a" "b" "c"]. Duplicates are kept in input order.
func ParseList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
