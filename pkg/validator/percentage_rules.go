package validator

import (
	"regexp"
	"strconv"
)

// percentageExpr matches 100, 100.0, 100.00 or a one/two digit integer part
// with an optional one/two digit fraction.
const percentageExpr = `(100(\.00?)?|\d{1,2}(\.\d{1,2})?)`

var (
	percentageRegex       = regexp.MustCompile(`^` + percentageExpr + `$`)
	percentageAmountRegex = regexp.MustCompile(`^` + percentageExpr + ` \d+(\.\d{1,2})?$`)
)

func Percentage(field, value string) Rule {
	return newFieldRule(field, TypePercentage, func() bool {
		return percentageRegex.MatchString(value)
	})
}

// PercentageStrict applies the percentage pattern and then, independently,
// checks that the parsed number lies within [0, 100].
func PercentageStrict(field, value string) Rule {
	return newFieldRule(field, TypePercentageStrict, func() bool {
		if !percentageRegex.MatchString(value) {
			return false
		}
		n, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return false
		}
		return n >= 0 && n <= 100
	})
}

// PercentageAmount accepts a percentage and an amount separated by exactly
// one space, e.g. "15.5 1200.00".
func PercentageAmount(field, value string) Rule {
	return newFieldRule(field, TypePercentageAmount, func() bool {
		return percentageAmountRegex.MatchString(value)
	})
}
