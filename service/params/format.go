package params

import (
	"reflect"
	"strings"

	"github.com/viant/toolbox"
)

// KeyValue represents a single named argument. Named arguments keep the order
// in which the caller supplied them so that rendered command text is stable.
type KeyValue struct {
	Key   string
	Value interface{}
}

// Format renders positional and named invocation arguments into the textual
// argument syntax understood by mothur: positional values comma-joined,
// named values as name=value, positional before named.
func Format(args []interface{}, named []KeyValue) string {
	var parts []string
	for _, arg := range args {
		parts = append(parts, Convert(arg))
	}
	for _, kv := range named {
		parts = append(parts, kv.Key+"="+Convert(kv.Value))
	}
	return strings.Join(parts, ",")
}

// Convert renders a single argument value as a mothur compatible token.
// Booleans become T/F, non-string sequences become hyphen separated lists
// (mothur's list delimiter), anything else is passed through as its literal
// text representation. Values are never quoted or escaped; mothur's own
// parser handles bare tokens.
func Convert(value interface{}) string {
	switch actual := value.(type) {
	case bool:
		if actual {
			return "T"
		}
		return "F"
	case string:
		return actual
	case []string:
		return strings.Join(actual, "-")
	case []interface{}:
		items := make([]string, 0, len(actual))
		for _, item := range actual {
			items = append(items, Convert(item))
		}
		return strings.Join(items, "-")
	}
	rValue := reflect.ValueOf(value)
	switch rValue.Kind() {
	case reflect.Slice, reflect.Array:
		items := make([]string, 0, rValue.Len())
		for i := 0; i < rValue.Len(); i++ {
			items = append(items, Convert(rValue.Index(i).Interface()))
		}
		return strings.Join(items, "-")
	}
	return toolbox.AsString(value)
}
