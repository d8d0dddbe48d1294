// Package hint holds the type-hint vocabulary that plain Go types cannot
// express on their own: unions, heterogeneous tuples, enumerations, sets and
// duck-typed containers.
//
// Pointers already mean "nullable", slices and arrays mean sequences and maps
// with string keys mean mappings, so those need no extra marker.
package hint
