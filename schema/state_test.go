package schema_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"itemadapter/options"
	"itemadapter/schema"
)

type fixedDocs map[string]string

func (d fixedDocs) FieldDocs(reflect.Type) map[string]string { return d }

type noDocs struct{}

func (noDocs) FieldDocs(reflect.Type) map[string]string { return nil }

func TestStateContainers(t *testing.T) {
	root := reflect.TypeFor[node]()
	st := schema.NewState(newResolver(), root)

	assert.True(t, st.InProgress(root))
	assert.False(t, st.Enter(root))

	other := reflect.TypeFor[leaf]()
	require.True(t, st.Enter(other))
	assert.False(t, st.Enter(other))
	st.Leave(other)
	assert.False(t, st.InProgress(other))
	assert.True(t, st.Enter(other))
}

func TestStateFeatures(t *testing.T) {
	st := schema.NewState(nil, nil)
	assert.True(t, st.Has(schema.DefaultFeatures))
	assert.False(t, st.Has(options.FeatureDiagnostics))
	assert.NotNil(t, st.Logger())

	logger := zap.NewExample()
	st = schema.NewState(nil, nil, schema.WithFeatures(options.FeatureAll), schema.WithLogger(logger), schema.WithLogger(nil))
	assert.True(t, st.Has(options.FeatureDiagnostics))
	assert.Same(t, logger, st.Logger())
}

func TestStateFieldDocs(t *testing.T) {
	typ := reflect.TypeFor[leaf]()
	docs := fixedDocs{"Name": "The name."}

	st := schema.NewState(nil, nil, schema.WithDocSource(docs))
	assert.Equal(t, map[string]string(docs), st.FieldDocs(typ))

	st = schema.NewState(nil, nil, schema.WithDocSource(docs),
		schema.WithFeatures(schema.DefaultFeatures.Without(options.FeatureDocstrings)))
	assert.Nil(t, st.FieldDocs(typ))

	t.Run("unavailable docs are noted", func(t *testing.T) {
		st := schema.NewState(nil, nil, schema.WithDocSource(noDocs{}), schema.WithFeatures(options.FeatureAll))
		assert.Nil(t, st.FieldDocs(typ))

		diags := st.Diagnostics()
		found := diags.WithCode("docs_unavailable")
		require.Len(t, found, 1)
		assert.Equal(t, typ.String(), found[0].Type)
	})

	t.Run("notes need the diagnostics feature", func(t *testing.T) {
		st := schema.NewState(nil, nil, schema.WithDocSource(noDocs{}))
		assert.Nil(t, st.FieldDocs(typ))

		diags := st.Diagnostics()
		assert.Zero(t, diags.Len())
	})
}

func TestStateNote(t *testing.T) {
	st := schema.NewState(nil, nil, schema.WithFeatures(options.FeatureDiagnostics))
	st.Note("pattern_unsupported", "dropped", "T", "f")

	diags := st.Diagnostics()
	require.Len(t, diags.Infos, 1)
	assert.Equal(t, "[T] f: [pattern_unsupported] dropped", diags.Infos[0].String())
}
