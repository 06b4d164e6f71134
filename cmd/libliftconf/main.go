// Command libliftconf builds liftconf as a C shared library:
//
//	go build -buildmode=c-shared -o libliftconf.so ./cmd/libliftconf
//
// Every value returned by a liftconf_get_* function is owned by the caller
// and must be released with the matching liftconf_free_* function. NULL
// means the field is absent. Failures are reported through
// liftconf_last_error.
package main

/*
#include <stdbool.h>
#include <stdint.h>
#include <stdlib.h>

typedef struct {
	char **items;
	size_t len;
} liftconf_string_list;
*/
import "C"

import (
	"os"
	"sync"
	"unsafe"

	"github.com/nvandessel/liftconf/internal/boundary"
	"github.com/nvandessel/liftconf/internal/handle"
)

// cHost builds values in C memory.
type cHost struct {
	errs *errorSlot
}

func (cHost) NewString(s string) (boundary.Value, error) {
	return unsafe.Pointer(C.CString(s)), nil
}

func (cHost) NewStringList(items []string) (boundary.Value, error) {
	list := (*C.liftconf_string_list)(C.calloc(1, C.size_t(unsafe.Sizeof(C.liftconf_string_list{}))))
	if len(items) == 0 {
		return unsafe.Pointer(list), nil
	}

	ptrSize := C.size_t(unsafe.Sizeof((*C.char)(nil)))
	list.items = (**C.char)(C.malloc(C.size_t(len(items)) * ptrSize))
	list.len = C.size_t(len(items))
	dst := unsafe.Slice(list.items, len(items))
	for i, s := range items {
		dst[i] = C.CString(s)
	}
	return unsafe.Pointer(list), nil
}

func (cHost) NewBool(b bool) (boundary.Value, error) {
	p := (*C.bool)(C.malloc(C.size_t(unsafe.Sizeof(C.bool(false)))))
	*p = C.bool(b)
	return unsafe.Pointer(p), nil
}

func (cHost) NewUint(n uint32) (boundary.Value, error) {
	p := (*C.uint32_t)(C.malloc(C.size_t(unsafe.Sizeof(C.uint32_t(0)))))
	*p = C.uint32_t(n)
	return unsafe.Pointer(p), nil
}

func (h cHost) Throw(class, message string) error {
	h.errs.store(class, message)
	return nil
}

var (
	lastError = &errorSlot{}

	adapterOnce sync.Once
	adapter     *boundary.Adapter
)

func lib() *boundary.Adapter {
	adapterOnce.Do(func() {
		adapter = newAdapter(cHost{errs: lastError}, os.Stderr)
	})
	return adapter
}

func pointer(v boundary.Value) unsafe.Pointer {
	if v == nil {
		return nil
	}
	return v.(unsafe.Pointer)
}

//export liftconf_open
func liftconf_open(path *C.char) C.uint64_t {
	return C.uint64_t(lib().Open(C.GoString(path)))
}

//export liftconf_close
func liftconf_close(h C.uint64_t) {
	lib().Close(handle.Handle(h))
}

//export liftconf_get_setup
func liftconf_get_setup(h C.uint64_t) *C.char {
	return (*C.char)(pointer(lib().GetSetup(handle.Handle(h))))
}

//export liftconf_get_build
func liftconf_get_build(h C.uint64_t) *C.char {
	return (*C.char)(pointer(lib().GetBuild(handle.Handle(h))))
}

//export liftconf_get_important_rules
func liftconf_get_important_rules(h C.uint64_t) *C.liftconf_string_list {
	return (*C.liftconf_string_list)(pointer(lib().GetImportantRules(handle.Handle(h))))
}

//export liftconf_get_ignore_rules
func liftconf_get_ignore_rules(h C.uint64_t) *C.liftconf_string_list {
	return (*C.liftconf_string_list)(pointer(lib().GetIgnoreRules(handle.Handle(h))))
}

//export liftconf_get_ignore_files
func liftconf_get_ignore_files(h C.uint64_t) *C.char {
	return (*C.char)(pointer(lib().GetIgnoreFiles(handle.Handle(h))))
}

//export liftconf_get_tools
func liftconf_get_tools(h C.uint64_t) *C.liftconf_string_list {
	return (*C.liftconf_string_list)(pointer(lib().GetTools(handle.Handle(h))))
}

//export liftconf_get_disable_tools
func liftconf_get_disable_tools(h C.uint64_t) *C.liftconf_string_list {
	return (*C.liftconf_string_list)(pointer(lib().GetDisableTools(handle.Handle(h))))
}

//export liftconf_get_custom_tools
func liftconf_get_custom_tools(h C.uint64_t) *C.liftconf_string_list {
	return (*C.liftconf_string_list)(pointer(lib().GetCustomTools(handle.Handle(h))))
}

//export liftconf_get_allow
func liftconf_get_allow(h C.uint64_t) *C.liftconf_string_list {
	return (*C.liftconf_string_list)(pointer(lib().GetAllow(handle.Handle(h))))
}

//export liftconf_get_jdk11
func liftconf_get_jdk11(h C.uint64_t) *C.bool {
	return (*C.bool)(pointer(lib().GetJDK11(handle.Handle(h))))
}

//export liftconf_get_android_version
func liftconf_get_android_version(h C.uint64_t) *C.uint32_t {
	return (*C.uint32_t)(pointer(lib().GetAndroidVersion(handle.Handle(h))))
}

//export liftconf_get_errorprone_bug_patterns
func liftconf_get_errorprone_bug_patterns(h C.uint64_t) *C.liftconf_string_list {
	return (*C.liftconf_string_list)(pointer(lib().GetErrorproneBugPatterns(handle.Handle(h))))
}

//export liftconf_get_summary_comments
func liftconf_get_summary_comments(h C.uint64_t) *C.bool {
	return (*C.bool)(pointer(lib().GetSummaryComments(handle.Handle(h))))
}

// liftconf_last_error returns and clears the pending error as
// "class: message", or NULL when nothing failed since the previous call. When
// several calls fail in between, the first error is kept.
//
//export liftconf_last_error
func liftconf_last_error() *C.char {
	msg, ok := lastError.take()
	if !ok {
		return nil
	}
	return C.CString(msg)
}

//export liftconf_free_string
func liftconf_free_string(s *C.char) {
	C.free(unsafe.Pointer(s))
}

//export liftconf_free_list
func liftconf_free_list(list *C.liftconf_string_list) {
	if list == nil {
		return
	}
	if list.items != nil {
		for _, s := range unsafe.Slice(list.items, int(list.len)) {
			C.free(unsafe.Pointer(s))
		}
		C.free(unsafe.Pointer(list.items))
	}
	C.free(unsafe.Pointer(list))
}

//export liftconf_free_value
func liftconf_free_value(p unsafe.Pointer) {
	C.free(p)
}

func main() {}
