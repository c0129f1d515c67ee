package validator

import (
	"fmt"
)

// Type names a field format rule. The set is closed: only the constants
// declared below are valid.
type Type string

const (
	TypeAmount              Type = "amount"
	TypeAlphaNumericSpecial Type = "alphaNumericSpecial"
	TypeNumeric             Type = "numeric"
	TypePercentage          Type = "percentage"
	TypeCheckbox            Type = "checkbox"
	TypeDropdown            Type = "dropdown"
	TypeAlphaSpecial        Type = "alphaSpecial"
	TypeAlphaNumeric        Type = "alphaNumeric"
	TypeAlphaColonNumber    Type = "alphaColonNumber"
	TypeTimeFormat          Type = "timeFormat"
	TypeAlphaOnly           Type = "alphaOnly"
	TypeRomanNumerals       Type = "romanNumerals"
	TypePercentageAmount    Type = "percentageAmount"
	TypeNumericDot          Type = "numericDot"
	TypePercentageStrict    Type = "percentageStrict"
	TypeNumericHyphen       Type = "numericHyphen"
	TypeDate                Type = "date"
)

// UnknownTypeMessage is reported for any tag outside the closed set.
const UnknownTypeMessage = "Unknown validation type."

// allTypes keeps declaration order for listings.
var allTypes = []Type{
	TypeAmount,
	TypeAlphaNumericSpecial,
	TypeNumeric,
	TypePercentage,
	TypeCheckbox,
	TypeDropdown,
	TypeAlphaSpecial,
	TypeAlphaNumeric,
	TypeAlphaColonNumber,
	TypeTimeFormat,
	TypeAlphaOnly,
	TypeRomanNumerals,
	TypePercentageAmount,
	TypeNumericDot,
	TypePercentageStrict,
	TypeNumericHyphen,
	TypeDate,
}

var typeMessages = map[Type]string{
	TypeAmount:              "Invalid input. Please enter a valid amount with up to 2 decimal places.",
	TypeAlphaNumericSpecial: "Invalid input. Only special characters not allowed alone. Include letters and numbers too.",
	TypeNumeric:             "Invalid input. Please enter only numeric characters.",
	TypePercentage:          "Invalid input. Please enter a percentage with up to 2 decimal places.",
	TypeCheckbox:            "Please select at least one option.",
	TypeDropdown:            "Please select an option from the drop-down menu.",
	TypeAlphaSpecial:        "Invalid input. Only alpha or special characters allowed.",
	TypeAlphaNumeric:        "Invalid input. Please enter a combination of alphabetic and numeric characters only.",
	TypeAlphaColonNumber:    "Invalid format. Enter only Alpha : Alpha or Alpha : number.",
	TypeTimeFormat:          "Invalid input. Please enter correct time format - 24 hrs or 12 hours.",
	TypeAlphaOnly:           "Invalid input. Please enter only Alpha characters.",
	TypeRomanNumerals:       "Invalid input. Please enter only Roman numerals.",
	TypePercentageAmount:    "Invalid input. Please enter both a percentage and an amount (up to two decimal places).",
	TypeNumericDot:          "Invalid input. Alphabets not allowed.",
	TypePercentageStrict:    "Invalid input. Please enter a percentage between 0 and 100.",
	TypeNumericHyphen:       "Invalid input. Please enter only numeric and -.",
	TypeDate:                "Invalid input. Please enter a valid date in the format MM/DD/YYYY.",
}

// Types returns every known type in declaration order.
func Types() []Type {
	out := make([]Type, len(allTypes))
	copy(out, allTypes)
	return out
}

// ParseType converts a raw tag into a Type. Matching is case-sensitive.
func ParseType(s string) (Type, error) {
	t := Type(s)
	if !t.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownType, s)
	}
	return t, nil
}

func (t Type) IsValid() bool {
	_, ok := typeMessages[t]
	return ok
}

func (t Type) String() string {
	return string(t)
}

// Message returns the failure message for the type, or UnknownTypeMessage.
func (t Type) Message() string {
	if msg, ok := typeMessages[t]; ok {
		return msg
	}
	return UnknownTypeMessage
}

// MarshalText implements encoding.TextMarshaler.
func (t Type) MarshalText() ([]byte, error) {
	return []byte(t), nil
}

// UnmarshalText implements encoding.TextUnmarshaler and rejects unknown tags.
func (t *Type) UnmarshalText(text []byte) error {
	parsed, err := ParseType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
