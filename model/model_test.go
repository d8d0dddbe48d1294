package model_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	"itemadapter/model"
	"itemadapter/schema"
)

func TestFieldInfo_Metadata(t *testing.T) {
	extra := schema.Of("format", "email")
	fi := model.FieldInfo{
		Alias:           "e-mail",
		Annotation:      reflect.TypeFor[string](),
		Default:         "",
		HasDefault:      true,
		Description:     "contact address",
		MinLength:       model.Int(3),
		Pattern:         "^.+@.+$",
		JSONSchemaExtra: extra,
	}

	assert.Equal(t, map[string]any{
		"alias":             "e-mail",
		"annotation":        reflect.TypeFor[string](),
		"default":           "",
		"description":       "contact address",
		"min_length":        3,
		"pattern":           "^.+@.+$",
		"json_schema_extra": extra,
	}, fi.Metadata())

	assert.Empty(t, model.FieldInfo{}.Metadata())
}

func TestFieldInfo_IsDeprecated(t *testing.T) {
	tests := []struct {
		name       string
		deprecated any
		want, set  bool
	}{
		{"unset", nil, false, false},
		{"true", true, true, true},
		{"false", false, false, true},
		{"message", "use other", true, true},
		{"empty message", "", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, set := model.FieldInfo{Deprecated: tt.deprecated}.IsDeprecated()
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.set, set)
		})
	}
}

func TestExtra_String(t *testing.T) {
	assert.Equal(t, "forbid", model.ExtraForbid.String())
	assert.Equal(t, "allow", model.ExtraAllow.String())
	assert.Equal(t, "ignore", model.ExtraIgnore.String())
	assert.Equal(t, "unknown", model.Extra(9).String())
}
