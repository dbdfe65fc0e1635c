package infra

type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is a constraint that permits any unsigned integer type.
// If future releases of Go add new predeclared unsigned integer types,
// this constraint will be modified to include them.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integer is a constraint that permits any integer type.
type Integer interface {
	Signed | Unsigned
}

// Float is a constraint that permits any floating-point type.
type Float interface {
	~float32 | ~float64
}

// Complex is a constraint that permits any complex numeric type.
// Complex numbers carry no natural total order, only an amplitude
// (modulus) comparison in the complex plane, so they are excluded
// from OrderedKey on purpose.
type Complex interface {
	~complex64 | ~complex128
}

// OrderedKey
// byte => ~uint8
type OrderedKey interface {
	Integer | Float | ~string
}

// OrderedKeyComparator reports the total order between two keys.
//  1. i == j, return 0
//  2. i greater than j, return a positive number, turn to right part.
//  3. i less than j, return a negative number, turn to left part.
type OrderedKeyComparator[K OrderedKey] func(i, j K) int64
