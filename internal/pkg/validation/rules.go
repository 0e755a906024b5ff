package validation

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Kind is the JSON type a field must carry
type Kind int

const (
	KindString Kind = iota
	KindInteger
	KindNumber
	KindBool
)

func (k Kind) describe() string {
	switch k {
	case KindInteger:
		return "an integer"
	case KindNumber:
		return "a number"
	case KindBool:
		return "a boolean"
	default:
		return "a string"
	}
}

// Rule validates one field of a partial update
type Rule struct {
	Kind     Kind
	Nullable bool
	NonEmpty bool
	Min      *float64
	Max      *float64
	Tag      string
	OneOf    []string
}

// String creates a rule for a string field
func String() *Rule { return &Rule{Kind: KindString} }

// Integer creates a rule for an integer field
func Integer() *Rule { return &Rule{Kind: KindInteger} }

// Number creates a rule for a numeric field
func Number() *Rule { return &Rule{Kind: KindNumber} }

// Bool creates a rule for a flag. 0 and 1 are accepted as well as true and false.
func Bool() *Rule { return &Rule{Kind: KindBool} }

// WithNullable allows JSON null, which clears the column
func (r *Rule) WithNullable() *Rule {
	r.Nullable = true
	return r
}

// WithNonEmpty rejects blank strings
func (r *Rule) WithNonEmpty() *Rule {
	r.NonEmpty = true
	return r
}

// WithMin sets minimum value
func (r *Rule) WithMin(min float64) *Rule {
	r.Min = &min
	return r
}

// WithRange sets inclusive bounds
func (r *Rule) WithRange(min, max float64) *Rule {
	r.Min, r.Max = &min, &max
	return r
}

// WithTag adds a go-playground/validator tag checked against string values
func (r *Rule) WithTag(tag string) *Rule {
	r.Tag = tag
	return r
}

// WithOneOf restricts a string to values, matched case-insensitively.
// The canonical spelling from values is what gets stored.
func (r *Rule) WithOneOf(values ...string) *Rule {
	r.OneOf = values
	return r
}

// Apply decodes raw and returns the value to store. A nil result means SQL NULL.
func (r *Rule) Apply(field string, raw json.RawMessage) (interface{}, error) {
	raw = bytes.TrimSpace(raw)
	if bytes.Equal(raw, []byte("null")) {
		if r.Nullable {
			return nil, nil
		}
		return nil, fmt.Errorf("%s cannot be null.", field)
	}

	switch r.Kind {
	case KindString:
		return r.applyString(field, raw)
	case KindBool:
		return applyBool(field, raw)
	default:
		return r.applyNumber(field, raw)
	}
}

func (r *Rule) applyString(field string, raw json.RawMessage) (interface{}, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("%s must be %s.", field, r.Kind.describe())
	}
	if r.NonEmpty && strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("%s cannot be empty.", field)
	}
	if r.Tag != "" && s != "" {
		if err := validate.Var(s, r.Tag); err != nil {
			if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
				return nil, fmt.Errorf("%s", describeTag(field, verrs[0].Tag(), verrs[0].Param()))
			}
			return nil, fmt.Errorf("%s is invalid.", field)
		}
	}
	if len(r.OneOf) > 0 {
		for _, v := range r.OneOf {
			if strings.EqualFold(strings.TrimSpace(s), v) {
				return v, nil
			}
		}
		return nil, fmt.Errorf("%s must be one of: %s.", field, strings.Join(r.OneOf, ", "))
	}
	return s, nil
}

func (r *Rule) applyNumber(field string, raw json.RawMessage) (interface{}, error) {
	var n float64
	if err := json.Unmarshal(raw, &n); err != nil {
		return nil, fmt.Errorf("%s must be %s.", field, r.Kind.describe())
	}
	if r.Kind == KindInteger {
		if n != math.Trunc(n) {
			return nil, fmt.Errorf("%s must be %s.", field, r.Kind.describe())
		}
		// integer columns are 32-bit
		if n > math.MaxInt32 {
			return nil, fmt.Errorf("%s must be at most %d.", field, math.MaxInt32)
		}
		if n < math.MinInt32 {
			return nil, fmt.Errorf("%s must be at least %d.", field, math.MinInt32)
		}
	}
	if (r.Min != nil && n < *r.Min) || (r.Max != nil && n > *r.Max) {
		return nil, fmt.Errorf("%s", r.describeRange(field))
	}
	if r.Kind == KindInteger {
		return int(n), nil
	}
	return n, nil
}

func (r *Rule) describeRange(field string) string {
	switch {
	case r.Min != nil && r.Max != nil:
		return fmt.Sprintf("%s must be between %s and %s.", field, formatNumber(*r.Min), formatNumber(*r.Max))
	case r.Min != nil:
		return fmt.Sprintf("%s must be at least %s.", field, formatNumber(*r.Min))
	default:
		return fmt.Sprintf("%s must be at most %s.", field, formatNumber(*r.Max))
	}
}

func applyBool(field string, raw json.RawMessage) (interface{}, error) {
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return b, nil
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil && (n == 0 || n == 1) {
		return n == 1, nil
	}
	return nil, fmt.Errorf("%s must be %s.", field, KindBool.describe())
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Rules maps column names to their rules. Order fixes the column iteration order.
type Rules struct {
	Order []string
	Rules map[string]*Rule
}

// Apply keeps the allow-listed keys of patch and validates each value.
// Unknown keys are dropped silently.
func (rs Rules) Apply(patch map[string]json.RawMessage) (map[string]interface{}, error) {
	fields := make(map[string]interface{}, len(patch))
	for _, col := range rs.Order {
		raw, ok := patch[col]
		if !ok {
			continue
		}
		rule, ok := rs.Rules[col]
		if !ok {
			continue
		}
		v, err := rule.Apply(col, raw)
		if err != nil {
			return nil, err
		}
		fields[col] = v
	}
	return fields, nil
}
