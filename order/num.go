package order

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"

	"github.com/spf13/cast"
)

// Num is a measurement or price. It decodes from JSON numbers as well as
// numeric strings ("1,250.50") because form inputs are stored as typed.
// Anything unparsable decodes to zero.
type Num float64

func (n *Num) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*n = ToNum(v)
	return nil
}

// ToNum coerces v to a finite number, stripping thousands separators from
// strings. Non-numeric input yields zero.
func ToNum(v any) Num {
	switch t := v.(type) {
	case Num:
		v = float64(t)
	case string:
		v = strings.TrimSpace(strings.ReplaceAll(t, ",", ""))
	}
	f, err := cast.ToFloat64E(v)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return Num(f)
}

// OptFloat is a number that distinguishes "unset" from an explicit zero.
type OptFloat struct {
	Value float64
	Valid bool
}

// Float returns an explicit value.
func Float(v float64) OptFloat { return OptFloat{Value: v, Valid: true} }

// ParseOptFloat treats nil, empty and non-numeric input as unset.
func ParseOptFloat(v any) OptFloat {
	switch t := v.(type) {
	case nil:
		return OptFloat{}
	case OptFloat:
		return t
	case Num:
		return Float(float64(t))
	case string:
		s := strings.TrimSpace(strings.ReplaceAll(t, ",", ""))
		if s == "" {
			return OptFloat{}
		}
		f, err := cast.ToFloat64E(s)
		if err != nil {
			return OptFloat{}
		}
		return Float(f)
	}
	f, err := cast.ToFloat64E(v)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return OptFloat{}
	}
	return Float(f)
}

func (o OptFloat) MarshalJSON() ([]byte, error) {
	if !o.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

func (o *OptFloat) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*o = OptFloat{}
		return nil
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = ParseOptFloat(v)
	return nil
}
