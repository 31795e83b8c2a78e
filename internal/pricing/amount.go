package pricing

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// ParseAmount reads a quantity or rate typed into a form. Anything that does
// not parse as a finite number counts as 0.
func ParseAmount(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// Amount is a float that accepts both JSON numbers and numeric strings.
type Amount float64

func (a *Amount) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*a = 0
		return nil
	}
	var str string
	if err := json.Unmarshal(b, &str); err == nil {
		*a = Amount(ParseAmount(str))
		return nil
	}
	*a = Amount(ParseAmount(s))
	return nil
}

func (a Amount) Float64() float64 { return float64(a) }

// UnmarshalParam lets form binding read an Amount with ParseAmount rules.
func (a *Amount) UnmarshalParam(param string) error {
	*a = Amount(ParseAmount(param))
	return nil
}
