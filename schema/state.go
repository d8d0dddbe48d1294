package schema

import (
	"reflect"

	"go.uber.org/zap"

	"itemadapter/internal/diagnostic"
	"itemadapter/internal/docstring"
	"itemadapter/options"
)

// Resolver recognizes item classes and derives their object schemas.
type Resolver interface {
	IsItemClass(t reflect.Type) bool
	JSONSchemaWithState(t reflect.Type, st *State) (*Schema, error)
}

// DocSource returns field doc comments of a struct type keyed by Go field
// name. Embedded structs contribute docs for fields the outer type does not
// document itself.
type DocSource interface {
	FieldDocs(t reflect.Type) map[string]string
}

// Diagnostics collected while deriving a schema.
type Diagnostics = diagnostic.Diagnostics

// DefaultFeatures is the feature set of a state built without WithFeatures.
const DefaultFeatures = options.FeatureDocstrings | options.FeatureDuckTyping | options.FeatureTextMarshalerStrings

// State is the bookkeeping of one top-level schema request.
type State struct {
	resolver   Resolver
	containers map[reflect.Type]struct{}
	features   options.SchemaFeature
	docs       DocSource
	logger     *zap.Logger
	diags      Diagnostics
}

type StateOption func(*State)

func WithFeatures(f options.SchemaFeature) StateOption {
	return func(s *State) { s.features = f }
}

func WithDocSource(docs DocSource) StateOption {
	return func(s *State) { s.docs = docs }
}

func WithLogger(logger *zap.Logger) StateOption {
	return func(s *State) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewState starts a schema request for root. The root is marked as under
// expansion from the start, so a field referring back to it renders as a
// bare object.
func NewState(resolver Resolver, root reflect.Type, opts ...StateOption) *State {
	s := &State{
		resolver:   resolver,
		containers: make(map[reflect.Type]struct{}),
		features:   DefaultFeatures,
		logger:     zap.NewNop(),
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.docs == nil {
		s.docs = docstring.Default()
	}

	if root != nil {
		s.containers[root] = struct{}{}
	}

	return s
}

func (s *State) Resolver() Resolver { return s.resolver }

func (s *State) Logger() *zap.Logger { return s.logger }

func (s *State) Has(f options.SchemaFeature) bool { return s.features.Has(f) }

// Enter marks t as under expansion. It returns false when t already is,
// which means the caller reached t through itself.
func (s *State) Enter(t reflect.Type) bool {
	if _, ok := s.containers[t]; ok {
		return false
	}

	s.containers[t] = struct{}{}
	return true
}

// Leave unmarks t so it can be expanded again as a sibling.
func (s *State) Leave(t reflect.Type) {
	delete(s.containers, t)
}

func (s *State) InProgress(t reflect.Type) bool {
	_, ok := s.containers[t]
	return ok
}

// FieldDocs returns doc comments for the fields of t, or nil when docstrings
// are disabled or unavailable.
func (s *State) FieldDocs(t reflect.Type) map[string]string {
	if !s.Has(options.FeatureDocstrings) || s.docs == nil {
		return nil
	}

	docs := s.docs.FieldDocs(t)
	if docs == nil {
		s.Note(diagnostic.CodeDocsUnavailable, "field docs are not available", t.String(), "")
	}

	return docs
}

// Note records an info diagnostic when diagnostics are enabled.
func (s *State) Note(code, message, typeName, field string) {
	if !s.Has(options.FeatureDiagnostics) {
		return
	}

	s.diags.AddInfo(code, message, typeName, field)
}

func (s *State) Diagnostics() Diagnostics { return s.diags }
