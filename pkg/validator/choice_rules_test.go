package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/fieldcheck/pkg/validator"
)

func TestTruthy(t *testing.T) {
	t.Parallel()

	t.Run("present values", func(t *testing.T) {
		t.Parallel()
		for _, v := range []string{"on", "1", "yes", "x", " on ", "no", "option-2", "00"} {
			assert.True(t, validator.Truthy(v), "%q should be truthy", v)
		}
	})

	t.Run("false-like values", func(t *testing.T) {
		t.Parallel()
		for _, v := range []string{"", "  ", "\t", "0", "false", "FALSE", "False", "Off", "null", "undefined", " 0 "} {
			assert.False(t, validator.Truthy(v), "%q should be falsy", v)
		}
	})
}

func TestCheckbox(t *testing.T) {
	t.Parallel()
	checkRule(t, validator.Checkbox, validator.TypeCheckbox,
		[]string{"on", "true", "1", "accepted"},
		[]string{"", "0", "false", "off"},
	)
}

func TestDropdown(t *testing.T) {
	t.Parallel()
	checkRule(t, validator.Dropdown, validator.TypeDropdown,
		[]string{"us", "option-1", "Yes"},
		[]string{"", " ", "null", "undefined"},
	)
}
