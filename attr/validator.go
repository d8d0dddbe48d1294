package attr

// Validator describes a constraint on a field's value. Validators are
// metadata: they are read to derive schemas and never run.
type Validator interface {
	validator()
}

type CompareOp int

const (
	OpGe CompareOp = iota + 1
	OpGt
	OpLe
	OpLt
)

// NumberValidator compares the value against Bound.
type NumberValidator struct {
	Op    CompareOp
	Bound any
}

// InValidator restricts the value to Options.
type InValidator struct{ Options []any }

type MinLenValidator struct{ MinLength int }

type MaxLenValidator struct{ MaxLength int }

// MatchesReValidator requires the value to match Pattern.
type MatchesReValidator struct{ Pattern string }

// AndValidator requires every one of Validators.
type AndValidator struct{ Validators []Validator }

// FuncValidator is an opaque custom check.
type FuncValidator func(v any) error

func (NumberValidator) validator()    {}
func (InValidator) validator()        {}
func (MinLenValidator) validator()    {}
func (MaxLenValidator) validator()    {}
func (MatchesReValidator) validator() {}
func (AndValidator) validator()       {}
func (FuncValidator) validator()      {}

func Ge(bound any) Validator { return NumberValidator{Op: OpGe, Bound: bound} }
func Gt(bound any) Validator { return NumberValidator{Op: OpGt, Bound: bound} }
func Le(bound any) Validator { return NumberValidator{Op: OpLe, Bound: bound} }
func Lt(bound any) Validator { return NumberValidator{Op: OpLt, Bound: bound} }

func In(options ...any) Validator { return InValidator{Options: options} }

func MinLen(n int) Validator { return MinLenValidator{MinLength: n} }
func MaxLen(n int) Validator { return MaxLenValidator{MaxLength: n} }

func MatchesRe(pattern string) Validator { return MatchesReValidator{Pattern: pattern} }

func And(validators ...Validator) Validator { return AndValidator{Validators: validators} }

// Flatten returns the validators combined in v, in order.
func Flatten(v Validator) []Validator {
	switch t := v.(type) {
	case nil:
		return nil
	case AndValidator:
		var out []Validator
		for _, inner := range t.Validators {
			out = append(out, Flatten(inner)...)
		}

		return out
	default:
		return []Validator{v}
	}
}
