package u16view

import (
	"reflect"
	"sync"
	"unsafe"
)

// Admission names the rule under which a type may become a View.
type Admission uint8

const (
	AdmitNone Admission = iota
	AdmitPointer
	AdmitArray
	AdmitStringLike
	AdmitContainer
)

func (a Admission) String() string {
	switch a {
	case AdmitPointer:
		return "pointer"
	case AdmitArray:
		return "array"
	case AdmitStringLike:
		return "string-like"
	case AdmitContainer:
		return "container"
	default:
		return "none"
	}
}

var (
	viewType       = reflect.TypeFor[View]()
	stringLikeType = reflect.TypeFor[StringLike]()
	intType        = reflect.TypeFor[int]()
)

// IsCompatibleCharType reports whether t can serve as a code unit.
func IsCompatibleCharType(t reflect.Type) bool {
	return t != nil && t.Kind() == reflect.Uint16
}

// IsCompatiblePointer reports whether t points at a single code unit.
func IsCompatiblePointer(t reflect.Type) bool {
	return t != nil && t.Kind() == reflect.Pointer && IsCompatibleCharType(t.Elem())
}

// IsCompatibleArray reports whether t points at a fixed array of code units
// with room for a terminator.
func IsCompatibleArray(t reflect.Type) bool {
	if t == nil || t.Kind() != reflect.Pointer {
		return false
	}
	a := t.Elem()
	return a.Kind() == reflect.Array && a.Len() > 0 && IsCompatibleCharType(a.Elem())
}

// IsStringLike reports whether t goes through the owning-string path.
func IsStringLike(t reflect.Type) bool {
	return t != nil && t.Implements(stringLikeType)
}

// IsCompatibleContainer reports whether t is a slice of code units or has the
// Container method set. View and StringLike types are excluded; they have
// their own paths.
func IsCompatibleContainer(t reflect.Type) bool {
	if t == nil || t == viewType || IsStringLike(t) {
		return false
	}
	if t.Kind() == reflect.Slice {
		return IsCompatibleCharType(t.Elem())
	}
	return hasContainerMethods(t)
}

func hasContainerMethods(t reflect.Type) bool {
	recv := 1
	if t.Kind() == reflect.Interface {
		recv = 0
	}
	ptr, ok := t.MethodByName("Ptr")
	if !ok || ptr.Type.NumIn() != recv || ptr.Type.NumOut() != 1 || !IsCompatiblePointer(ptr.Type.Out(0)) {
		return false
	}
	elem := ptr.Type.Out(0).Elem()

	ln, ok := t.MethodByName("Len")
	if !ok || ln.Type.NumIn() != recv || ln.Type.NumOut() != 1 || !isInteger(ln.Type.Out(0)) {
		return false
	}

	all, ok := t.MethodByName("All")
	if !ok || all.Type.NumIn() != recv || all.Type.NumOut() != 1 {
		return false
	}
	seq := all.Type.Out(0)
	if seq.Kind() != reflect.Func || seq.NumIn() != 1 || seq.NumOut() != 0 {
		return false
	}
	yield := seq.In(0)
	return yield.Kind() == reflect.Func &&
		yield.NumIn() == 1 && yield.In(0) == elem &&
		yield.NumOut() == 1 && yield.Out(0).Kind() == reflect.Bool
}

func isInteger(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	default:
		return false
	}
}

// classification cache
var plans struct {
	mu sync.RWMutex
	m  map[reflect.Type]Admission
}

// Classify returns the single admission rule t satisfies, or AdmitNone.
// Results are cached per type.
func Classify(t reflect.Type) Admission {
	if t == nil {
		return AdmitNone
	}
	plans.mu.RLock()
	a, ok := plans.m[t]
	plans.mu.RUnlock()
	if ok {
		return a
	}

	plans.mu.Lock()
	defer plans.mu.Unlock()

	// Double-check
	if a, ok := plans.m[t]; ok {
		return a
	}
	a = classify(t)
	if plans.m == nil {
		plans.m = make(map[reflect.Type]Admission)
	}
	plans.m[t] = a
	return a
}

func classify(t reflect.Type) Admission {
	switch {
	case t == viewType:
		return AdmitNone
	case IsStringLike(t):
		return AdmitStringLike
	case IsCompatiblePointer(t):
		return AdmitPointer
	case IsCompatibleArray(t):
		return AdmitArray
	case IsCompatibleContainer(t):
		return AdmitContainer
	}
	return AdmitNone
}

// FromAny builds a view from a dynamic value using the same rules as the typed
// constructors. A View is returned as-is and a nil pointer of an admitted type
// gives a null view. ok is false when x is not admitted.
func FromAny(x any) (v View, ok bool) {
	if x == nil {
		return View{}, false
	}
	if v, ok := x.(View); ok {
		return v, true
	}
	rv := reflect.ValueOf(x)
	adm := Classify(rv.Type())
	if adm != AdmitNone && rv.Kind() == reflect.Pointer && rv.IsNil() {
		return View{}, true
	}
	switch adm {
	case AdmitStringLike:
		return FromStringLike(x.(StringLike)), true
	case AdmitPointer:
		return FromPtr((*uint16)(rv.UnsafePointer())), true
	case AdmitArray:
		n := rv.Elem().Len() - 1
		return View{d: unsafe.Slice((*uint16)(rv.UnsafePointer()), n)}, true
	case AdmitContainer:
		if rv.Kind() == reflect.Slice {
			return View{d: unsafe.Slice((*uint16)(rv.UnsafePointer()), rv.Len())}, true
		}
		p := rv.MethodByName("Ptr").Call(nil)[0]
		n := rv.MethodByName("Len").Call(nil)[0]
		return FromPtrLen((*uint16)(p.UnsafePointer()), int(n.Convert(intType).Int())), true
	}
	return View{}, false
}
