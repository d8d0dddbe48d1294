package options

// SchemaFeature selects optional behavior of the schema engine.
type SchemaFeature int

const (
	FeatureDocstrings           SchemaFeature = 1 << iota // field doc comments become property descriptions
	FeatureDuckTyping                                     // object-like and array-like interfaces map to object and array
	FeatureTextMarshalerStrings                           // encoding.TextMarshaler types map to string
	FeatureDiagnostics                                    // dropped patterns and unavailable docs are recorded as notes

	FeatureAll  SchemaFeature = (1 << iota) - 1 // all features combined
	FeatureNone SchemaFeature = 0               // no features selected
)

// Has reports whether every feature of other is selected in f.
func (f SchemaFeature) Has(other SchemaFeature) bool {
	return f&other == other
}

// With returns f with other selected.
func (f SchemaFeature) With(other SchemaFeature) SchemaFeature {
	return f | other
}

// Without returns f with other cleared.
func (f SchemaFeature) Without(other SchemaFeature) SchemaFeature {
	return f &^ other
}
