// Package meta normalizes the per-field metadata of every item family into
// one Field shape and renders it as a JSON-Schema property.
//
// Each family keeps its own metadata vocabulary (struct tags, attr
// attributes, model FieldInfo, record field maps); one From* function per
// family translates it.
package meta
