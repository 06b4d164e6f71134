package ui

import (
	"fmt"
	"strings"

	"github.com/nvandessel/liftconf/internal/config"
)

// FormatValue renders a field value as plain text. Lists are comma separated.
func FormatValue(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case []string:
		if len(v) == 0 {
			return "[]"
		}
		return strings.Join(v, ", ")
	default:
		return fmt.Sprint(v)
	}
}

// RenderRecord renders every field of rec, one per line, in reference order.
// Absent fields are shown as "(not set)". Multi-line values are indented
// under their key.
func RenderRecord(rec *config.Record, styled bool) string {
	key, absent := plain, plain
	if styled {
		key, absent = KeyStyle.Render, AbsentStyle.Render
	}

	fields := config.Fields()
	width := 0
	for _, f := range fields {
		width = max(width, len(f.Key))
	}

	var b strings.Builder
	for _, f := range fields {
		label := key(fmt.Sprintf("%-*s", width, f.Key))
		v, ok := f.Value(rec)
		if !ok {
			fmt.Fprintf(&b, "%s  %s\n", label, absent("(not set)"))
			continue
		}

		text := FormatValue(v)
		if !strings.Contains(text, "\n") {
			fmt.Fprintf(&b, "%s  %s\n", label, text)
			continue
		}
		fmt.Fprintf(&b, "%s\n", key(f.Key))
		for _, line := range strings.Split(text, "\n") {
			fmt.Fprintf(&b, "%s  %s\n", strings.Repeat(" ", width), line)
		}
	}
	return b.String()
}

func plain(s ...string) string { return strings.Join(s, " ") }
