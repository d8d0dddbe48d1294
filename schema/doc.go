// Package schema derives JSON-Schema fragments from Go types.
//
// The engine walks type hints (pointers, slices, maps, unions, tuples,
// enumerations, duck-typed containers and simple kinds) and hands item
// classes back to a Resolver, which is usually the adapter registry. A State
// threads the set of item classes under expansion through the recursion so
// self-referential item graphs terminate.
//
// Schema documents are insertion ordered and merge with set-default
// semantics: values supplied by the item author are never overwritten by
// derived ones.
package schema
