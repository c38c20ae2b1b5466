package blob

import "reflect"

// Layout describes the memory footprint of one stored element.
type Layout struct {
	Size  uintptr
	Align uintptr
}

func layoutOf(t reflect.Type) Layout {
	return Layout{
		Size:  t.Size(),
		Align: uintptr(t.Align()),
	}
}

// typeHasPointers reports whether values of t contain pointers the garbage
// collector must be able to drop. Controls whether abandoned slots are zeroed.
func typeHasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Map, reflect.Chan,
		reflect.Func, reflect.Interface, reflect.Slice, reflect.String:
		return true
	case reflect.Array:
		return t.Len() > 0 && typeHasPointers(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if typeHasPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		return false
	}
}
