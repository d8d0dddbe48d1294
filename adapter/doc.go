// Package adapter gives one mapping interface over heterogeneous item
// containers: string-keyed maps, plain structs, attr classes, model classes
// and framework records.
//
// Each container kind is a Family. A Registry holds families in order and
// binds an item to the first family that recognizes its class; the bound
// Adapter translates key access into map, field or record access. The
// ItemAdapter facade adds recursive conversion to plain values and repr.
//
// The registry also derives JSON Schemas for item classes, recursing into
// nested item classes of any registered family.
package adapter
