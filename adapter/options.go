package adapter

import (
	"go.uber.org/zap"

	"itemadapter/options"
	"itemadapter/schema"
)

type familyConfig struct {
	unavailable bool
}

// FamilyOption configures an optional family.
type FamilyOption func(*familyConfig)

// Unavailable builds the family as if its backing support were missing:
// generic entry points stop recognizing its classes and its own methods
// return ErrSupportUnavailable.
func Unavailable() FamilyOption {
	return func(c *familyConfig) { c.unavailable = true }
}

func newFamilyConfig(opts []FamilyOption) familyConfig {
	var c familyConfig
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithFamilies replaces the built-in families.
func WithFamilies(families ...Family) RegistryOption {
	return func(r *Registry) { r.families = append([]Family(nil), families...) }
}

// WithLogger sets the logger handed to schema requests.
func WithLogger(logger *zap.Logger) RegistryOption {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithFeatures sets the schema features of schema requests.
func WithFeatures(f options.SchemaFeature) RegistryOption {
	return func(r *Registry) { r.features = f }
}

// WithDocSource sets where field doc comments are read from.
func WithDocSource(docs schema.DocSource) RegistryOption {
	return func(r *Registry) { r.docs = docs }
}
