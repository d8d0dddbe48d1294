// Package warehouse holds item classes of the attr, model and record
// families.
package warehouse

import (
	"reflect"

	"itemadapter/attr"
	"itemadapter/hint"
	"itemadapter/model"
	"itemadapter/record"
	"itemadapter/schema"
)

// Address is an attr class.
type Address struct {
	// Street is the street line.
	Street  string
	City    string
	Country string
	Lines   []string
	Zone    int
}

func (Address) AttrFields() map[string]attr.Attribute {
	return map[string]attr.Attribute{
		"Street": attr.Field(
			attr.Validate(attr.MinLen(1), attr.MaxLen(80)),
			attr.Metadata(map[string]any{"label": "Street"}),
		),
		"Country": attr.Field(
			attr.Default("NL"),
			attr.Validate(attr.In("NL", "BE", "DE")),
		),
		"Lines": attr.Field(attr.Factory(func() any { return []string{} })),
		"Zone": attr.Field(
			attr.Default(1),
			attr.Validate(attr.Ge(1), attr.Lt(10)),
			attr.Metadata(map[string]any{"json_schema_extra": map[string]any{"examples": []any{1, 2}}}),
		),
	}
}

// Customer is a model class.
type Customer struct {
	ID       int
	Email    string
	// Nickname is shown instead of the email.
	Nickname *string
	Tier     string
	Address  Address
}

func (Customer) ModelConfig() model.Config {
	return model.Config{Extra: model.ExtraForbid}
}

func (Customer) ModelFields() map[string]model.FieldInfo {
	return map[string]model.FieldInfo{
		"ID":    {Frozen: true, Ge: 1},
		"Email": {Pattern: `^\S+@\S+$`, Description: "Login email."},
		"Tier": {
			Default:    "basic",
			HasDefault: true,
			Deprecated: "use plans",
			Examples:   []any{"basic", "pro"},
		},
	}
}

// Plan is a model class with the default extra policy.
type Plan struct {
	Name  string
	Price float64
	Seats hint.Union2[int, string]
	Perks []string
}

func (Plan) ModelConfig() model.Config {
	return model.Config{JSONSchemaExtra: schema.Of("title", "Plan")}
}

func (Plan) ModelFields() map[string]model.FieldInfo {
	return map[string]model.FieldInfo{
		"Name":  {MinLength: model.Int(2), Title: "Plan name"},
		"Perks": {DefaultFactory: func() any { return []string{} }, MaxItems: model.Int(5)},
	}
}

// Shipment is a record class.
type Shipment struct {
	record.Item
}

func (Shipment) RecordFields() record.Fields {
	return record.Fields{
		record.Declare[string]("tracking", record.Field{"serializer": "upper"}),
		record.Declare[*float64]("weight", nil),
		record.Declare[Address]("destination", nil),
		record.Untyped("notes", record.Field{
			"json_schema_extra": map[string]any{"type": "string", "default": ""},
		}),
	}
}

// Parcel is a record class without declared fields.
type Parcel struct {
	record.Item
}

func (Parcel) RecordFields() record.Fields { return nil }

// Types lists the classes of this package.
var Types = []reflect.Type{
	reflect.TypeFor[Address](),
	reflect.TypeFor[Customer](),
	reflect.TypeFor[Plan](),
	reflect.TypeFor[Shipment](),
	reflect.TypeFor[Parcel](),
}
