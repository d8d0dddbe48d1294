// Package docstring reads the doc comments of struct fields from source.
//
// Packages are loaded with golang.org/x/tools/go/packages the first time one
// of their types is asked about and cached afterwards, failures included.
// Only package-level type declarations are seen: types declared inside
// function bodies or in _test.go files yield no docs.
package docstring
