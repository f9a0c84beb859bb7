package handlers

import (
	"encoding/json"
	"math"
	"net/http"
	"strconv"
	"strings"
)

// ParseTZOffset читает смещение часового пояса из query-параметра.
// Пустой или нечисловой параметр дает nil.
func ParseTZOffset(r *http.Request, name string) *float64 {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

const maxFlexInt = math.MaxInt32

// FlexNumber число из JSON, переданное числом или строкой ("3" и 3 равнозначны)
type FlexNumber struct {
	Value *float64
}

func (n *FlexNumber) UnmarshalJSON(data []byte) error {
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		// null, bool, объект: значение не передано
		n.Value = nil
		return nil
	}
	v, err := num.Float64()
	if err != nil {
		n.Value = nil
		return nil
	}
	n.Value = &v
	return nil
}

// Int целое значение или 0, если число не целое или не передано.
// Значения за пределами int32 насыщаются до границы.
func (n FlexNumber) Int() int {
	if n.Value == nil {
		return 0
	}
	v := *n.Value
	if v != math.Trunc(v) {
		return 0
	}
	switch {
	case v > maxFlexInt:
		return maxFlexInt
	case v < -maxFlexInt:
		return -maxFlexInt
	}
	return int(v)
}
