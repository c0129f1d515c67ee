package validator

import (
	"regexp"
	"strings"
)

// specialChars is the set of symbols accepted by the alpha/special rules.
const specialChars = "@$!%*?&#"

var (
	alphaOnlyRegex        = regexp.MustCompile(`^[A-Za-z]+$`)
	alphaNumericRegex     = regexp.MustCompile(`^[A-Za-z0-9]+$`)
	alphaSpecialRegex     = regexp.MustCompile(`^[A-Za-z@$!%*?&#]+$`)
	alphaNumSpecialRegex  = regexp.MustCompile(`^[A-Za-z\d@$!%*?&#]+$`)
	alphaColonNumberRegex = regexp.MustCompile(`^[A-Za-z]+:[A-Za-z0-9]+$`)
	romanNumeralsRegex    = regexp.MustCompile(`^[IVXLCDM]+$`)
)

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func AlphaOnly(field, value string) Rule {
	return newFieldRule(field, TypeAlphaOnly, func() bool {
		return alphaOnlyRegex.MatchString(value)
	})
}

func AlphaNumeric(field, value string) Rule {
	return newFieldRule(field, TypeAlphaNumeric, func() bool {
		return alphaNumericRegex.MatchString(value)
	})
}

// AlphaSpecial accepts letters and the symbols @$!%*?&# in any mix.
func AlphaSpecial(field, value string) Rule {
	return newFieldRule(field, TypeAlphaSpecial, func() bool {
		return alphaSpecialRegex.MatchString(value)
	})
}

// AlphaNumericSpecial requires at least one letter, one digit and one of
// @$!%*?&#, and nothing outside those classes.
func AlphaNumericSpecial(field, value string) Rule {
	return newFieldRule(field, TypeAlphaNumericSpecial, func() bool {
		if !alphaNumSpecialRegex.MatchString(value) {
			return false
		}
		return strings.ContainsFunc(value, isASCIILetter) &&
			strings.ContainsFunc(value, isASCIIDigit) &&
			strings.ContainsAny(value, specialChars)
	})
}

// AlphaColonNumber accepts "Alpha:Alpha" or "Alpha:123" without spaces.
func AlphaColonNumber(field, value string) Rule {
	return newFieldRule(field, TypeAlphaColonNumber, func() bool {
		return alphaColonNumberRegex.MatchString(value)
	})
}

// RomanNumerals checks the alphabet only; ordering such as "IIII" is not validated.
func RomanNumerals(field, value string) Rule {
	return newFieldRule(field, TypeRomanNumerals, func() bool {
		return romanNumeralsRegex.MatchString(value)
	})
}
