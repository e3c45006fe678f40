package notification

import (
	"encoding/json"
	"fmt"
	"strings"
)

// StringifyValues renders every value of data as a string. The push gateway
// only accepts string-valued data fields, so numbers, slices and nested
// mappings are all flattened: slices become comma-joined element strings and
// nested mappings are JSON-encoded after their own values are stringified.
func StringifyValues(data map[string]interface{}) map[string]string {
	out := make(map[string]string, len(data))
	for key, value := range data {
		out[key] = stringifyValue(value)
	}
	return out
}

func stringifyValue(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case []string:
		return strings.Join(v, ",")
	case []interface{}:
		parts := make([]string, len(v))
		for i, elem := range v {
			parts[i] = stringifyValue(elem)
		}
		return strings.Join(parts, ",")
	case map[string]interface{}:
		encoded, err := json.Marshal(StringifyValues(v))
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(encoded)
	default:
		return fmt.Sprint(v)
	}
}
