// Package validator checks raw form values against a closed set of field
// formats (amounts, percentages, alphanumeric codes, dates, times, etc.) and
// reports a fixed, human-readable message when a value does not conform.
//
// The entry point is Validate, a pure and total function:
//
//	res := validator.Validate("25.50", "amount")
//	// res.Valid == true
//
//	res = validator.Validate("25.555", "amount")
//	// res.Valid == false
//	// res.Error == "Invalid input. Please enter a valid amount with up to 2 decimal places."
//
// Unknown tags never panic; they produce an invalid Result carrying
// UnknownTypeMessage. ValidateType is the same call with a typed Type
// constant, and ParseType converts raw tags while rejecting unknown ones.
//
// # Architecture
//
// Every Type maps to a rule constructor (Amount, Percentage, Date, ...) that
// returns a Rule: a Check closure plus a ValidationError describing the
// failure. Constructors are grouped by family in numeric_rules.go,
// percentage_rules.go, string_rules.go, choice_rules.go and date_rules.go.
// Patterns are compiled once at package initialisation and only read
// afterwards, so the package holds no mutable state and is safe for
// concurrent use.
//
// All patterns match the full value and only accept ASCII letters and digits.
//
// # Forms
//
// Field and Apply let a form handler validate several fields, one Type per
// field, and collect the failures into ValidationErrors:
//
//	err := validator.Apply(
//	    validator.Field("price", form.Price, validator.TypeAmount),
//	    validator.Field("due_date", form.DueDate, validator.TypeDate),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    for _, field := range verrs.Fields() {
//	        // render verrs.Get(field) next to the input
//	    }
//	}
//
// ValidationErrors satisfies errors.Is(err, ErrValidationFailed).
//
// # Date strictness
//
// The date type only range-checks the day against 01-31, so 02/31/2024 is
// accepted. CalendarDate is an opt-in rule that also consults the calendar.
package validator
