package config

import "strings"

// NormalizeIgnoreFiles trims every line of an ignoreFiles block, drops blank
// lines and joins the rest with a single newline. Order is preserved and
// the result is a fixed point: normalizing it again returns it unchanged.
func NormalizeIgnoreFiles(s string) string {
	lines := strings.Split(s, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

// IgnorePrefixes splits a normalized ignoreFiles value into its path prefixes.
func IgnorePrefixes(s string) []string {
	s = NormalizeIgnoreFiles(s)
	if s == "" {
		return []string{}
	}
	return strings.Split(s, "\n")
}
