package validator

import (
	"regexp"
	"time"
)

const usDateLayout = "01/02/2006"

var (
	// MM/DD/YYYY with month 01-12 and day 01-31; the calendar is not consulted.
	dateRegex = regexp.MustCompile(`^(0[1-9]|1[0-2])/(0[1-9]|[12]\d|3[01])/\d{4}$`)

	// H:MM or HH:MM on a 24 hour clock.
	timeFormatRegex = regexp.MustCompile(`^([01]?\d|2[0-3]):[0-5]\d$`)
)

// Date accepts MM/DD/YYYY. Day-of-month is only range-checked against 01-31,
// so 02/31/2024 passes; use CalendarDate when that matters.
func Date(field, value string) Rule {
	return newFieldRule(field, TypeDate, func() bool {
		return dateRegex.MatchString(value)
	})
}

// TimeFormat accepts 24 hour times such as "9:05" or "23:59".
func TimeFormat(field, value string) Rule {
	return newFieldRule(field, TypeTimeFormat, func() bool {
		return timeFormatRegex.MatchString(value)
	})
}

// CalendarDate is the strict form of Date: the value must also exist on the
// calendar (no 04/31, no 02/29 outside leap years). It has no Type tag.
func CalendarDate(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if !dateRegex.MatchString(value) {
				return false
			}
			_, err := time.Parse(usDateLayout, value)
			return err == nil
		},
		Error: ValidationError{
			Field:          field,
			Message:        "Invalid input. Please enter a real calendar date in the format MM/DD/YYYY.",
			TranslationKey: "validation.field.calendar_date",
			TranslationValues: map[string]any{
				"field":  field,
				"layout": "MM/DD/YYYY",
			},
		},
	}
}
