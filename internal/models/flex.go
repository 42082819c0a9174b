package models

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// FlexFloat decodes a JSON number or a numeric string. Null and empty strings
// decode as zero, unparsable strings as NaN.
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*f = 0
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*f = 0
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			v = math.NaN()
		}
		*f = FlexFloat(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*f = FlexFloat(v)
	return nil
}

// Present reports whether a non-zero value was supplied. NaN counts as present.
func (f FlexFloat) Present() bool {
	return f != 0
}

// Positive reports whether the value is a finite number above zero.
func (f FlexFloat) Positive() bool {
	v := float64(f)
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}
