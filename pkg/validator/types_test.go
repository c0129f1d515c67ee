package validator_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldcheck/pkg/validator"
)

func TestTypes(t *testing.T) {
	t.Parallel()

	types := validator.Types()
	require.Len(t, types, 17)
	assert.Equal(t, validator.TypeAmount, types[0])
	assert.Equal(t, validator.TypeDate, types[len(types)-1])

	seen := make(map[validator.Type]bool)
	for _, typ := range types {
		assert.False(t, seen[typ], "duplicate type %s", typ)
		seen[typ] = true
		assert.True(t, typ.IsValid())
		assert.NotEqual(t, validator.UnknownTypeMessage, typ.Message())
	}

	t.Run("returned slice is a copy", func(t *testing.T) {
		t.Parallel()
		got := validator.Types()
		got[0] = "changed"
		assert.Equal(t, validator.TypeAmount, validator.Types()[0])
	})
}

func TestParseType(t *testing.T) {
	t.Parallel()

	t.Run("known tags", func(t *testing.T) {
		t.Parallel()
		typ, err := validator.ParseType("percentageAmount")
		require.NoError(t, err)
		assert.Equal(t, validator.TypePercentageAmount, typ)
	})

	t.Run("unknown tags", func(t *testing.T) {
		t.Parallel()
		for _, raw := range []string{"", "Date", "percent", "amount "} {
			_, err := validator.ParseType(raw)
			assert.ErrorIs(t, err, validator.ErrUnknownType, raw)
		}
	})
}

func TestType_Message(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Invalid input. Please enter only numeric and -.", validator.TypeNumericHyphen.Message())
	assert.Equal(t, "Invalid format. Enter only Alpha : Alpha or Alpha : number.", validator.TypeAlphaColonNumber.Message())
	assert.Equal(t, validator.UnknownTypeMessage, validator.Type("nope").Message())
}

func TestType_TextEncoding(t *testing.T) {
	t.Parallel()

	type request struct {
		Type validator.Type `json:"type"`
	}

	t.Run("round trips through json", func(t *testing.T) {
		t.Parallel()
		var req request
		require.NoError(t, json.Unmarshal([]byte(`{"type":"timeFormat"}`), &req))
		assert.Equal(t, validator.TypeTimeFormat, req.Type)

		out, err := json.Marshal(req)
		require.NoError(t, err)
		assert.JSONEq(t, `{"type":"timeFormat"}`, string(out))
	})

	t.Run("rejects unknown tag", func(t *testing.T) {
		t.Parallel()
		var req request
		err := json.Unmarshal([]byte(`{"type":"whatever"}`), &req)
		assert.ErrorIs(t, err, validator.ErrUnknownType)
	})
}
