// Package matrix provides a dense, row-major float64 matrix with
// bounds-checked access and elementary linear algebra.
//
// The matrix package provides:
//
//   - Dense — a concrete row-major matrix over a flat backing slice,
//     with the explicit index formula row*cols + col.
//   - Safe accessors: At and Set return errors instead of panicking.
//   - Arithmetic: Transpose, Add and Mul, each allocating a fresh result
//     and leaving the operands untouched.
//   - FindPosition — a row-major brute-force element scan using exact
//     float64 equality.
//
// All dimensions are fixed at construction; only element values are
// mutable, and only through Set. Every fallible operation returns one of
// the package sentinels (see errors.go), possibly wrapped with call-site
// context, and is matchable with errors.Is.
//
// Dense matrices are best for small or genuinely dense data where
// O(rows·cols) memory is acceptable; there is no sparse representation.
package matrix
