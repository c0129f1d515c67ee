package validator

import "regexp"

var (
	// Digits with an optional fraction of one or two digits.
	amountRegex = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)

	numericRegex = regexp.MustCompile(`^\d+$`)

	// Digits with an optional fraction of any length.
	numericDotRegex = regexp.MustCompile(`^\d+(\.\d+)?$`)

	numericHyphenRegex = regexp.MustCompile(`^\d+-\d+$`)
)

// Amount accepts unsigned amounts with up to two decimal places, e.g. "25.50".
func Amount(field, value string) Rule {
	return newFieldRule(field, TypeAmount, func() bool {
		return amountRegex.MatchString(value)
	})
}

// Numeric accepts one or more ASCII digits.
func Numeric(field, value string) Rule {
	return newFieldRule(field, TypeNumeric, func() bool {
		return numericRegex.MatchString(value)
	})
}

// NumericDot accepts digits with an optional fractional part of any length.
func NumericDot(field, value string) Rule {
	return newFieldRule(field, TypeNumericDot, func() bool {
		return numericDotRegex.MatchString(value)
	})
}

// NumericHyphen accepts two digit groups joined by a single hyphen, e.g. "12-34".
func NumericHyphen(field, value string) Rule {
	return newFieldRule(field, TypeNumericHyphen, func() bool {
		return numericHyphenRegex.MatchString(value)
	})
}
