// Package boundary exposes loaded Lift configurations to a foreign runtime.
//
// An Adapter owns every record it opens until the caller closes the handle.
// Field getters return a host-native value, or nil when the field is absent
// from the record. Failures never come back as a bare nil: they are raised
// through the Host as exceptions, falling back to a generic exception class
// when the preferred one cannot be raised.
package boundary

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/nvandessel/liftconf/internal/config"
	"github.com/nvandessel/liftconf/internal/handle"
)

const (
	// DefaultException is raised for every failure when the host supports it.
	DefaultException = "liftconf/ConfigException"
	// DefaultFallbackException is raised when DefaultException cannot be.
	DefaultFallbackException = "liftconf/RuntimeException"
)

// Value is a value built by a Host. A nil Value is the host's null.
type Value any

// Host is the runtime on the other side of the boundary.
type Host interface {
	NewString(s string) (Value, error)
	// NewStringList builds an ordered collection owned by the caller.
	NewStringList(items []string) (Value, error)
	NewBool(b bool) (Value, error)
	NewUint(n uint32) (Value, error)
	// Throw raises an exception of the given class in the host.
	// It returns an error when the exception itself could not be created.
	Throw(class, message string) error
}

// Adapter bridges config records and a Host through opaque handles.
type Adapter struct {
	PreferredException string
	FallbackException  string

	host    Host
	loader  config.Loader
	records *handle.Table[*config.Record]
	log     zerolog.Logger
}

// New creates an Adapter for host. Records are loaded with loader.
func New(host Host, loader config.Loader, log zerolog.Logger) *Adapter {
	return &Adapter{
		PreferredException: DefaultException,
		FallbackException:  DefaultFallbackException,
		host:               host,
		loader:             loader,
		records:            handle.NewTable[*config.Record](),
		log:                log,
	}
}

// Open loads the configuration file at path and returns a handle owning it.
// It returns handle.Null without raising when the file does not exist; any
// other failure is raised through the host and also yields handle.Null.
func (a *Adapter) Open(path string) handle.Handle {
	rec, err := a.loader.LoadFile(path)
	if err != nil {
		if config.IsNotFound(err) {
			a.log.Debug().Str("path", path).Msg("no configuration at path")
			return handle.Null
		}
		a.raise(err.Error())
		return handle.Null
	}

	h := a.records.Put(rec)
	a.log.Debug().Str("path", path).Uint64("handle", uint64(h)).Msg("opened configuration")
	return h
}

// Close releases the record behind h. Closing handle.Null does nothing.
// Closing a handle twice raises an exception.
func (a *Adapter) Close(h handle.Handle) {
	if h == handle.Null {
		return
	}
	if _, err := a.records.Release(h); err != nil {
		a.raise(err.Error())
		return
	}
	a.log.Debug().Uint64("handle", uint64(h)).Msg("closed configuration")
}

// OpenCount returns the number of records currently owned.
func (a *Adapter) OpenCount() int {
	return a.records.Len()
}

// GetField returns a field by TOML key or snake_case name.
func (a *Adapter) GetField(h handle.Handle, name string) Value {
	f, ok := config.LookupField(name)
	if !ok {
		a.raise(fmt.Sprintf("Unknown configuration field %q", name))
		return nil
	}
	return a.get(h, f)
}

func (a *Adapter) GetSetup(h handle.Handle) Value          { return a.get(h, fieldSetup) }
func (a *Adapter) GetBuild(h handle.Handle) Value          { return a.get(h, fieldBuild) }
func (a *Adapter) GetImportantRules(h handle.Handle) Value { return a.get(h, fieldImportantRules) }
func (a *Adapter) GetIgnoreRules(h handle.Handle) Value    { return a.get(h, fieldIgnoreRules) }
func (a *Adapter) GetIgnoreFiles(h handle.Handle) Value    { return a.get(h, fieldIgnoreFiles) }
func (a *Adapter) GetTools(h handle.Handle) Value          { return a.get(h, fieldTools) }
func (a *Adapter) GetDisableTools(h handle.Handle) Value   { return a.get(h, fieldDisableTools) }
func (a *Adapter) GetCustomTools(h handle.Handle) Value    { return a.get(h, fieldCustomTools) }
func (a *Adapter) GetAllow(h handle.Handle) Value          { return a.get(h, fieldAllow) }
func (a *Adapter) GetJDK11(h handle.Handle) Value          { return a.get(h, fieldJDK11) }
func (a *Adapter) GetAndroidVersion(h handle.Handle) Value { return a.get(h, fieldAndroidVersion) }
func (a *Adapter) GetErrorproneBugPatterns(h handle.Handle) Value {
	return a.get(h, fieldErrorproneBugPatterns)
}
func (a *Adapter) GetSummaryComments(h handle.Handle) Value { return a.get(h, fieldSummaryComments) }

var (
	fieldSetup                 = mustField("setup")
	fieldBuild                 = mustField("build")
	fieldImportantRules        = mustField("importantRules")
	fieldIgnoreRules           = mustField("ignoreRules")
	fieldIgnoreFiles           = mustField("ignoreFiles")
	fieldTools                 = mustField("tools")
	fieldDisableTools          = mustField("disableTools")
	fieldCustomTools           = mustField("customTools")
	fieldAllow                 = mustField("allow")
	fieldJDK11                 = mustField("jdk11")
	fieldAndroidVersion        = mustField("androidVersion")
	fieldErrorproneBugPatterns = mustField("errorproneBugPatterns")
	fieldSummaryComments       = mustField("summaryComments")
)

func mustField(key string) config.Field {
	f, ok := config.LookupField(key)
	if !ok {
		panic("boundary: unknown config field " + key)
	}
	return f
}

func (a *Adapter) get(h handle.Handle, f config.Field) Value {
	rec, err := a.records.Get(h)
	if err != nil {
		a.raise(err.Error())
		return nil
	}

	v, ok := f.Value(rec)
	if !ok {
		return nil
	}

	out, err := a.marshal(f.Kind, v)
	if err != nil {
		a.raise(fmt.Sprintf("Failed to create %s for the %s:\n%v", kindNoun(f.Kind), f.Name, err))
		return nil
	}
	return out
}

func (a *Adapter) marshal(kind config.Kind, v any) (Value, error) {
	switch kind {
	case config.KindString:
		return a.host.NewString(v.(string))
	case config.KindStringList:
		return a.host.NewStringList(v.([]string))
	case config.KindBool:
		return a.host.NewBool(v.(bool))
	case config.KindUint:
		return a.host.NewUint(v.(uint32))
	default:
		return nil, fmt.Errorf("unsupported field kind %s", kind)
	}
}

func kindNoun(kind config.Kind) string {
	switch kind {
	case config.KindString:
		return "a string"
	case config.KindStringList:
		return "a list of strings"
	case config.KindBool:
		return "a boolean"
	case config.KindUint:
		return "an integer"
	default:
		return "a value"
	}
}

// raise reports message through the host. If neither exception class can be
// raised there is no way to signal the caller, so it panics.
func (a *Adapter) raise(message string) {
	a.log.Error().Str("exception", a.PreferredException).Msg(message)

	err := a.host.Throw(a.PreferredException, message)
	if err == nil {
		return
	}

	message = fmt.Sprintf("%s\n\nCreating custom exception failed:\n%v", message, err)
	if err := a.host.Throw(a.FallbackException, message); err != nil {
		panic(fmt.Sprintf("Could not throw exception for message:\n%s\n\n%v", message, err))
	}
}
