// File: internal/trait/trait.go
// License: Apache-2.0
//
// Element type capability probes used to select fast paths.

package trait

import "reflect"

// PointerFree reports whether values of T contain no pointers at any
// depth. Pointer-free elements can live in memory the garbage collector
// never scans, and vacated slots never need zeroing to release
// references.
func PointerFree[T any]() bool {
	var zero T
	return pointerFree(reflect.TypeOf(&zero).Elem())
}

// Size returns the in-memory size of T in bytes.
func Size[T any]() uintptr {
	var zero T
	return reflect.TypeOf(&zero).Elem().Size()
}

func pointerFree(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Array:
		return pointerFree(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if !pointerFree(t.Field(i).Type) {
				return false
			}
		}
		return true
	default:
		// Pointers, slices, maps, chans, strings, interfaces, funcs.
		return false
	}
}
