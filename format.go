package idxarray

import (
	"fmt"
	"strconv"
	"strings"
)

// String returns the values of all slots in slot order, formatted like a
// Go slice with %v.
func (a Array[K, T]) String() string {
	return fmt.Sprint(a.view())
}

// Format implements fmt.Formatter.
//
//	%v   values in slot order, like a slice
//	%+v  index:value pairs
//	%#v  Go-syntax representation including the width
//
// Other verbs are applied to the underlying slice.
func (a Array[K, T]) Format(f fmt.State, verb rune) {
	s := a.view()
	switch {
	case verb == 'v' && f.Flag('#'):
		var b strings.Builder
		b.WriteString("idxarray.Array[")
		b.WriteString(strconv.Itoa(Width[K]()))
		b.WriteString("-bit]")
		fmt.Fprintf(&b, "%#v", s)
		_, _ = f.Write([]byte(b.String()))
	case verb == 'v' && f.Flag('+'):
		var b strings.Builder
		b.WriteByte('[')
		for i, v := range s {
			if i > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%d:%+v", i, v)
		}
		b.WriteByte(']')
		_, _ = f.Write([]byte(b.String()))
	default:
		fmt.Fprintf(f, fmt.FormatString(f, verb), s)
	}
}
