package validation

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func raw(s string) json.RawMessage { return json.RawMessage(s) }

func TestRuleApply(t *testing.T) {
	tests := []struct {
		name    string
		rule    *Rule
		input   string
		want    interface{}
		wantErr string
	}{
		{"string", String(), `"Asha"`, "Asha", ""},
		{"string rejects number", String(), `12`, nil, "f must be a string."},
		{"null on non-nullable", String(), `null`, nil, "f cannot be null."},
		{"null on nullable", String().WithNullable(), `null`, nil, ""},
		{"blank rejected", String().WithNonEmpty(), `"  "`, nil, "f cannot be empty."},
		{"email ok", String().WithTag("email"), `"a@b.co"`, "a@b.co", ""},
		{"email bad", String().WithTag("email"), `"nope"`, nil, "f must be a valid email address."},
		{"email empty allowed", String().WithTag("email"), `""`, "", ""},
		{"oneof canonical", String().WithOneOf("Active", "Inactive"), `"inactive"`, "Inactive", ""},
		{"oneof rejected", String().WithOneOf("Active", "Inactive"), `"gone"`, nil, "f must be one of: Active, Inactive."},
		{"integer", Integer().WithRange(1, 12), `6`, 6, ""},
		{"integer fraction", Integer(), `6.5`, nil, "f must be an integer."},
		{"integer range", Integer().WithRange(1, 12), `13`, nil, "f must be between 1 and 12."},
		{"integer min", Integer().WithMin(0), `-1`, nil, "f must be at least 0."},
		{"integer max int32", Integer().WithMin(0), `2147483647`, 2147483647, ""},
		{"integer above int32", Integer().WithMin(0), `2147483648`, nil, "f must be at most 2147483647."},
		{"integer huge exponent", Integer().WithMin(0), `1e30`, nil, "f must be at most 2147483647."},
		{"integer below int32", Integer(), `-1e30`, nil, "f must be at least -2147483648."},
		{"number", Number().WithRange(0, 10), `8.75`, 8.75, ""},
		{"number string", Number(), `"8"`, nil, "f must be a number."},
		{"bool", Bool(), `true`, true, ""},
		{"bool one", Bool(), `1`, true, ""},
		{"bool zero", Bool(), `0`, false, ""},
		{"bool two", Bool(), `2`, nil, "f must be a boolean."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.rule.Apply("f", raw(tt.input))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRulesApplyDropsUnknownKeys(t *testing.T) {
	rs := Rules{
		Order: []string{"name", "cgpa"},
		Rules: map[string]*Rule{
			"name": String().WithNonEmpty(),
			"cgpa": Number().WithRange(0, 10),
		},
	}

	fields, err := rs.Apply(map[string]json.RawMessage{
		"cgpa":   raw(`9.1`),
		"reg_no": raw(`"X"`),
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"cgpa": 9.1}, fields)

	fields, err = rs.Apply(map[string]json.RawMessage{"unknown": raw(`1`)})
	require.NoError(t, err)
	assert.Empty(t, fields)

	_, err = rs.Apply(map[string]json.RawMessage{"cgpa": raw(`11`)})
	assert.EqualError(t, err, "cgpa must be between 0 and 10.")
}
