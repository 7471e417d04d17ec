package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ToInt coerces a loosely typed document value to int. Legacy guest
// records store counters like companions as strings or floats depending
// on which client wrote them.
func ToInt(val any) int {
	switch v := val.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case int32:
		return int(v)
	case uint:
		return int(v)
	case uint64:
		return int(v)
	case uint32:
		return int(v)
	case float64:
		return int(v)
	case float32:
		return int(v)
	case string:
		i, _ := strconv.Atoi(strings.TrimSpace(v))
		return i
	case []byte:
		i, _ := strconv.Atoi(string(v))
		return i
	default:
		i, _ := strconv.Atoi(fmt.Sprintf("%v", v))
		return i
	}
}

// ToString coerces a document value to string.
func ToString(val any) string {
	switch v := val.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}

// ToBool coerces a document value to bool. Numeric 1 and the strings
// "1"/"true" count as true.
func ToBool(val any) bool {
	switch v := val.(type) {
	case bool:
		return v
	case int, int64, int32, uint, uint64, uint32, float64, float32:
		return ToInt(v) == 1
	case string:
		return v == "1" || strings.EqualFold(v, "true")
	case []byte:
		return ToBool(string(v))
	default:
		return false
	}
}
