package options_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"itemadapter/options"
)

func TestSchemaFeature(t *testing.T) {
	f := options.FeatureAll
	assert.True(t, f.Has(options.FeatureDocstrings))
	assert.True(t, f.Has(options.FeatureDocstrings|options.FeatureDuckTyping))

	f = f.Without(options.FeatureDocstrings)
	assert.False(t, f.Has(options.FeatureDocstrings))
	assert.True(t, f.Has(options.FeatureDuckTyping))
	assert.False(t, f.Has(options.FeatureAll))

	f = options.FeatureNone.With(options.FeatureDiagnostics)
	assert.Equal(t, options.FeatureDiagnostics, f)
	assert.Equal(t, options.SchemaFeature(15), options.FeatureAll)
}
