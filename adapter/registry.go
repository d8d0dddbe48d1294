package adapter

import (
	"reflect"
	"slices"
	"sync"

	"go.uber.org/zap"

	"itemadapter/internal/docstring"
	"itemadapter/meta"
	"itemadapter/options"
	"itemadapter/schema"
)

// Builtin returns fresh instances of the built-in families in dispatch
// order.
func Builtin() []Family {
	return []Family{NewRecordFamily(), MapFamily{}, StructFamily{}, NewAttrFamily(), NewModelFamily()}
}

// Registry is an ordered family list. The first family recognizing a value
// or class handles it. A Registry is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	families []Family
	logger   *zap.Logger
	features options.SchemaFeature
	docs     schema.DocSource
}

func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		families: Builtin(),
		logger:   zap.NewNop(),
		features: schema.DefaultFeatures,
	}

	for _, opt := range opts {
		opt(r)
	}

	if r.docs == nil {
		r.docs = docstring.New(docstring.WithLogger(r.logger))
	}

	return r
}

var defaultRegistry = NewRegistry()

// Default returns the registry behind the package-level functions.
func Default() *Registry { return defaultRegistry }

// Prepend puts families ahead of the current ones.
func (r *Registry) Prepend(families ...Family) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.families = append(slices.Clone(families), r.families...)
}

// Append puts families after the current ones.
func (r *Registry) Append(families ...Family) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.families = append(r.families, families...)
}

// Replace swaps the whole family list.
func (r *Registry) Replace(families ...Family) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.families = slices.Clone(families)
}

// Remove drops the families named name and reports whether any was found.
func (r *Registry) Remove(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := len(r.families)
	r.families = slices.DeleteFunc(r.families, func(f Family) bool { return f.Name() == name })
	return len(r.families) != n
}

// Families returns a copy of the family list.
func (r *Registry) Families() []Family {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.families)
}

func (r *Registry) itemFamily(v any) (Family, bool) {
	for _, f := range r.Families() {
		if f.IsItem(v) {
			return f, true
		}
	}

	return nil, false
}

func (r *Registry) classFamily(t reflect.Type) (Family, bool) {
	if t == nil {
		return nil, false
	}

	for _, f := range r.Families() {
		if f.IsItemClass(t) {
			return f, true
		}
	}

	return nil, false
}

// Wrap returns an ItemAdapter over item.
func (r *Registry) Wrap(item any) (*ItemAdapter, error) {
	f, ok := r.itemFamily(item)
	if !ok {
		return nil, &ClassError{Type: reflect.TypeOf(item), Value: item, Instance: true}
	}

	a, err := f.New(item)
	if err != nil {
		return nil, err
	}

	return &ItemAdapter{adapter: a, family: f, registry: r}, nil
}

func (r *Registry) IsItem(v any) bool {
	_, ok := r.itemFamily(v)
	return ok
}

func (r *Registry) IsItemClass(t reflect.Type) bool {
	_, ok := r.classFamily(t)
	return ok
}

func (r *Registry) FieldMetaFromClass(t reflect.Type, name string) (meta.Mapping, error) {
	f, ok := r.classFamily(t)
	if !ok {
		return meta.Mapping{}, &ClassError{Type: t}
	}

	return fieldMeta(f, t, name)
}

// FieldNamesFromClass returns the declared field names of t. known is
// false for classes whose names are only known per instance.
func (r *Registry) FieldNamesFromClass(t reflect.Type) (names []string, known bool, err error) {
	f, ok := r.classFamily(t)
	if !ok {
		return nil, false, &ClassError{Type: t}
	}

	return fieldNames(f, t)
}

// NewState starts a schema request for t with the registry settings.
// opts are applied after them.
func (r *Registry) NewState(t reflect.Type, opts ...schema.StateOption) *schema.State {
	base := []schema.StateOption{
		schema.WithFeatures(r.features),
		schema.WithLogger(r.logger),
		schema.WithDocSource(r.docs),
	}

	return schema.NewState(r, t, append(base, opts...)...)
}

// JSONSchema derives the schema of the item class t.
func (r *Registry) JSONSchema(t reflect.Type, opts ...schema.StateOption) (*schema.Schema, error) {
	return r.JSONSchemaWithState(t, r.NewState(t, opts...))
}

// JSONSchemaWithState derives the schema of t within an ongoing request.
func (r *Registry) JSONSchemaWithState(t reflect.Type, st *schema.State) (*schema.Schema, error) {
	f, ok := r.classFamily(t)
	if !ok {
		return nil, &ClassError{Type: t}
	}

	st.Logger().Debug("deriving schema", zap.Stringer("type", t), zap.String("family", f.Name()))
	return familySchema(f, t, st)
}

// Wrap wraps item with the default registry.
func Wrap(item any) (*ItemAdapter, error) { return defaultRegistry.Wrap(item) }

// Unwrap returns the item behind a.
func Unwrap(a *ItemAdapter) any { return a.Item() }

func IsItem(v any) bool { return defaultRegistry.IsItem(v) }

func IsItemClass(t reflect.Type) bool { return defaultRegistry.IsItemClass(t) }

func FieldMetaFromClass(t reflect.Type, name string) (meta.Mapping, error) {
	return defaultRegistry.FieldMetaFromClass(t, name)
}

func FieldNamesFromClass(t reflect.Type) ([]string, bool, error) {
	return defaultRegistry.FieldNamesFromClass(t)
}

func JSONSchema(t reflect.Type, opts ...schema.StateOption) (*schema.Schema, error) {
	return defaultRegistry.JSONSchema(t, opts...)
}
