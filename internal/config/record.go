package config

import (
	"reflect"
	"slices"
)

// Record is a parsed Lift configuration file.
//
// Every field is optional. A key missing from the file leaves the field
// absent, which the accessors report with ok == false. An empty list in the
// file is present and distinct from a missing one. A Record is never changed
// after it is built; list accessors hand out copies.
type Record struct {
	setup                 *string
	build                 *string
	importantRules        []string
	ignoreRules           []string
	ignoreFiles           *string
	tools                 []string
	disableTools          []string
	customTools           []string
	allow                 []string
	jdk11                 *bool
	androidVersion        *uint32
	errorproneBugPatterns []string
	summaryComments       *bool
}

// Setup is the shell command run before analysis.
func (r *Record) Setup() (string, bool) { return deref(r.setup) }

// Build is the build command.
func (r *Record) Build() (string, bool) { return deref(r.build) }

// ImportantRules lists rule identifiers to escalate.
func (r *Record) ImportantRules() ([]string, bool) { return cloneList(r.importantRules) }

// IgnoreRules lists rule identifiers to suppress.
func (r *Record) IgnoreRules() ([]string, bool) { return cloneList(r.ignoreRules) }

// IgnoreFiles is the normalized, newline separated list of ignored path prefixes.
func (r *Record) IgnoreFiles() (string, bool) { return deref(r.ignoreFiles) }

// Tools is the explicit tool allow-list.
func (r *Record) Tools() ([]string, bool) { return cloneList(r.tools) }

// DisableTools lists tools to turn off.
func (r *Record) DisableTools() ([]string, bool) { return cloneList(r.disableTools) }

// CustomTools lists additional tool names to run.
func (r *Record) CustomTools() ([]string, bool) { return cloneList(r.customTools) }

// Allow lists the usernames permitted to trigger analysis.
func (r *Record) Allow() ([]string, bool) { return cloneList(r.allow) }

// JDK11 selects Java 11 for the build.
func (r *Record) JDK11() (bool, bool) { return deref(r.jdk11) }

// AndroidVersion is the Android SDK version to build against.
func (r *Record) AndroidVersion() (uint32, bool) { return deref(r.androidVersion) }

// ErrorproneBugPatterns lists the Error Prone bug patterns to enable.
func (r *Record) ErrorproneBugPatterns() ([]string, bool) {
	return cloneList(r.errorproneBugPatterns)
}

// SummaryComments enables summary comments on the review.
func (r *Record) SummaryComments() (bool, bool) { return deref(r.summaryComments) }

// IsEmpty reports whether no field is present.
func (r *Record) IsEmpty() bool {
	return r.Equal(&Record{})
}

// Equal reports whether both records hold the same fields with the same values.
func (r *Record) Equal(other *Record) bool {
	if r == nil || other == nil {
		return r == other
	}
	return reflect.DeepEqual(r, other)
}

// Map returns the present fields keyed by their TOML key.
func (r *Record) Map() map[string]any {
	out := make(map[string]any)
	for _, f := range fields {
		if v, ok := f.Value(r); ok {
			out[f.Key] = v
		}
	}
	return out
}

func deref[T any](p *T) (T, bool) {
	if p == nil {
		var zero T
		return zero, false
	}
	return *p, true
}

func cloneList(list []string) ([]string, bool) {
	if list == nil {
		return nil, false
	}
	return slices.Clone(list), true
}
