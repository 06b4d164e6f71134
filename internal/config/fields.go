package config

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Kind is the value type a field holds.
type Kind int

const (
	KindString Kind = iota
	KindStringList
	KindBool
	KindUint
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindStringList:
		return "array of strings"
	case KindBool:
		return "boolean"
	case KindUint:
		return "unsigned integer"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Field maps one TOML key onto a Record field.
type Field struct {
	// Key is the name used in the configuration file.
	Key string
	// Name is the snake_case name of the record field.
	Name string
	Kind Kind

	decode func(r *Record, v any) error
	value  func(r *Record) (any, bool)
}

// Value returns the field's value in r, or ok == false when it is absent.
// Lists are returned as []string, scalars as string, bool or uint32.
func (f Field) Value(r *Record) (any, bool) {
	return f.value(r)
}

// fields is ordered as the columns of the Lift configuration reference.
var fields = []Field{
	stringField("setup", "setup", nil, func(r *Record) **string { return &r.setup }),
	stringField("build", "build", nil, func(r *Record) **string { return &r.build }),
	listField("importantRules", "important_rules", func(r *Record) *[]string { return &r.importantRules }),
	listField("ignoreRules", "ignore_rules", func(r *Record) *[]string { return &r.ignoreRules }),
	stringField("ignoreFiles", "ignore_files", NormalizeIgnoreFiles, func(r *Record) **string { return &r.ignoreFiles }),
	listField("tools", "tools", func(r *Record) *[]string { return &r.tools }),
	listField("disableTools", "disable_tools", func(r *Record) *[]string { return &r.disableTools }),
	listField("customTools", "custom_tools", func(r *Record) *[]string { return &r.customTools }),
	listField("allow", "allow", func(r *Record) *[]string { return &r.allow }),
	boolField("jdk11", "jdk_11", func(r *Record) **bool { return &r.jdk11 }),
	uintField("androidVersion", "android_version", func(r *Record) **uint32 { return &r.androidVersion }),
	listField("errorproneBugPatterns", "errorprone_bug_patterns", func(r *Record) *[]string { return &r.errorproneBugPatterns }),
	boolField("summaryComments", "summary_comments", func(r *Record) **bool { return &r.summaryComments }),
}

// Fields returns the field mapping table in reference order.
func Fields() []Field {
	out := make([]Field, len(fields))
	copy(out, fields)
	return out
}

// LookupField finds a field by its TOML key or its snake_case name.
func LookupField(name string) (Field, bool) {
	for _, f := range fields {
		if f.Key == name || f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

func stringField(key, name string, transform func(string) string, at func(*Record) **string) Field {
	return Field{
		Key:  key,
		Name: name,
		Kind: KindString,
		decode: func(r *Record, v any) error {
			s, ok := v.(string)
			if !ok {
				return typeMismatch(KindString, v)
			}
			if transform != nil {
				s = transform(s)
			}
			*at(r) = &s
			return nil
		},
		value: func(r *Record) (any, bool) {
			p := *at(r)
			if p == nil {
				return nil, false
			}
			return *p, true
		},
	}
}

func listField(key, name string, at func(*Record) *[]string) Field {
	return Field{
		Key:  key,
		Name: name,
		Kind: KindStringList,
		decode: func(r *Record, v any) error {
			items, ok := v.([]any)
			if !ok {
				return typeMismatch(KindStringList, v)
			}
			list := make([]string, 0, len(items))
			for i, item := range items {
				s, ok := item.(string)
				if !ok {
					return fmt.Errorf("element %d: %w", i, typeMismatch(KindString, item))
				}
				list = append(list, s)
			}
			*at(r) = list
			return nil
		},
		value: func(r *Record) (any, bool) {
			return cloneList(*at(r))
		},
	}
}

func boolField(key, name string, at func(*Record) **bool) Field {
	return Field{
		Key:  key,
		Name: name,
		Kind: KindBool,
		decode: func(r *Record, v any) error {
			b, ok := v.(bool)
			if !ok {
				return typeMismatch(KindBool, v)
			}
			*at(r) = &b
			return nil
		},
		value: func(r *Record) (any, bool) {
			p := *at(r)
			if p == nil {
				return nil, false
			}
			return *p, true
		},
	}
}

func uintField(key, name string, at func(*Record) **uint32) Field {
	return Field{
		Key:  key,
		Name: name,
		Kind: KindUint,
		decode: func(r *Record, v any) error {
			n, ok := v.(int64)
			if !ok {
				return typeMismatch(KindUint, v)
			}
			if n < 0 || n > math.MaxUint32 {
				return fmt.Errorf("invalid value: integer %d, expected u32", n)
			}
			u := uint32(n)
			*at(r) = &u
			return nil
		},
		value: func(r *Record) (any, bool) {
			p := *at(r)
			if p == nil {
				return nil, false
			}
			return *p, true
		},
	}
}

func typeMismatch(want Kind, got any) error {
	return fmt.Errorf("invalid type: %s, expected %s", tomlTypeName(got), want)
}

// tomlTypeName names the TOML type go-toml decoded v from.
func tomlTypeName(v any) string {
	switch v.(type) {
	case string:
		return "string"
	case bool:
		return "boolean"
	case int64:
		return "integer"
	case float64:
		return "float"
	case []any:
		return "array"
	case map[string]any:
		return "table"
	case time.Time, toml.LocalDate, toml.LocalTime, toml.LocalDateTime:
		return "datetime"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// decodeRecord applies the field table to a decoded TOML document.
// Keys the table does not know are ignored.
func decodeRecord(doc map[string]any) (*Record, error) {
	r := &Record{}
	for _, f := range fields {
		v, ok := doc[f.Key]
		if !ok {
			continue
		}
		if err := f.decode(r, v); err != nil {
			return nil, fmt.Errorf("key %q: %w", f.Key, err)
		}
	}
	return r, nil
}

// parseRecord decodes TOML text into a Record.
func parseRecord(data []byte) (*Record, error) {
	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, describeDecodeError(err)
	}
	return decodeRecord(doc)
}

// describeDecodeError prefixes parser errors with their line and column.
// Errors the TOML decoder reports without a position, such as a key
// defined twice, keep their message as is.
func describeDecodeError(err error) error {
	var derr *toml.DecodeError
	if !errors.As(err, &derr) {
		return &syntaxError{msg: err.Error(), err: err}
	}
	row, col := derr.Position()
	msg := err.Error()
	if key := derr.Key(); len(key) > 0 {
		msg = fmt.Sprintf("%s (key %s)", msg, strings.Join(key, "."))
	}
	return &syntaxError{row: row, col: col, msg: msg, err: err}
}

type syntaxError struct {
	row, col int
	msg      string
	err      error
}

func (e *syntaxError) Error() string {
	if e.row == 0 {
		return e.msg
	}
	return fmt.Sprintf("line %d, column %d: %s", e.row, e.col, e.msg)
}

func (e *syntaxError) Unwrap() error { return e.err }
