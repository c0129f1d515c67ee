package validator

// Result is the outcome of validating one raw value against one Type.
// Error is set if and only if Valid is false.
type Result struct {
	Valid bool   `json:"valid" yaml:"valid"`
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Err converts a failed result into ValidationErrors keyed by field.
// It returns nil for valid results.
func (r Result) Err(field string) error {
	if r.Valid {
		return nil
	}
	return ValidationErrors{{Field: field, Message: r.Error}}
}

// fieldRules maps every Type to its rule constructor.
var fieldRules = map[Type]func(field, value string) Rule{
	TypeAmount:              Amount,
	TypeAlphaNumericSpecial: AlphaNumericSpecial,
	TypeNumeric:             Numeric,
	TypePercentage:          Percentage,
	TypeCheckbox:            Checkbox,
	TypeDropdown:            Dropdown,
	TypeAlphaSpecial:        AlphaSpecial,
	TypeAlphaNumeric:        AlphaNumeric,
	TypeAlphaColonNumber:    AlphaColonNumber,
	TypeTimeFormat:          TimeFormat,
	TypeAlphaOnly:           AlphaOnly,
	TypeRomanNumerals:       RomanNumerals,
	TypePercentageAmount:    PercentageAmount,
	TypeNumericDot:          NumericDot,
	TypePercentageStrict:    PercentageStrict,
	TypeNumericHyphen:       NumericHyphen,
	TypeDate:                Date,
}

// Validate checks value against the rule named by tag. Unknown tags yield
// an invalid result carrying UnknownTypeMessage. It never panics.
//
//	validator.Validate("25.50", "amount")  // {Valid: true}
//	validator.Validate("25.555", "amount") // {Valid: false, Error: "Invalid input. ..."}
func Validate(value, tag string) Result {
	return ValidateType(value, Type(tag))
}

// ValidateType is the typed form of Validate.
func ValidateType(value string, t Type) Result {
	rule := Field(t.String(), value, t)
	if rule.Check() {
		return Result{Valid: true}
	}
	return Result{Valid: false, Error: rule.Error.Message}
}

// Field builds the rule for t so it can be combined with other fields in Apply:
//
//	err := validator.Apply(
//	    validator.Field("price", form.Price, validator.TypeAmount),
//	    validator.Field("starts_on", form.StartsOn, validator.TypeDate),
//	)
func Field(field, value string, t Type) Rule {
	if build, ok := fieldRules[t]; ok {
		return build(field, value)
	}
	return Rule{
		Check: func() bool { return false },
		Error: ValidationError{
			Field:          field,
			Message:        UnknownTypeMessage,
			TranslationKey: "validation.field.unknown_type",
			TranslationValues: map[string]any{
				"field": field,
				"type":  string(t),
			},
		},
	}
}

// newFieldRule wires a predicate to the fixed message of t.
func newFieldRule(field string, t Type, check func() bool) Rule {
	return Rule{
		Check: check,
		Error: ValidationError{
			Field:          field,
			Message:        t.Message(),
			TranslationKey: "validation.field." + string(t),
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
