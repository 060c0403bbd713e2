package params

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvert(t *testing.T) {
	testCases := []struct {
		name     string
		value    interface{}
		expected string
	}{
		{name: "true", value: true, expected: "T"},
		{name: "false", value: false, expected: "F"},
		{name: "string slice", value: []string{"a", "b", "c"}, expected: "a-b-c"},
		{name: "mixed slice", value: []interface{}{"a", true, 3}, expected: "a-T-3"},
		{name: "int slice", value: []int{1, 2, 3}, expected: "1-2-3"},
		{name: "string literal", value: "literal", expected: "literal"},
		{name: "int", value: 42, expected: "42"},
		{name: "float", value: 0.03, expected: "0.03"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Convert(tc.value))
		})
	}
}

func TestFormat(t *testing.T) {
	testCases := []struct {
		name     string
		args     []interface{}
		named    []KeyValue
		expected string
	}{
		{
			name:     "empty",
			expected: "",
		},
		{
			name:     "positional only",
			args:     []interface{}{"summary.seqs"},
			expected: "summary.seqs",
		},
		{
			name:     "named only",
			named:    []KeyValue{{Key: "fasta", Value: "x.fasta"}, {Key: "processors", Value: 2}},
			expected: "fasta=x.fasta,processors=2",
		},
		{
			name:     "positional then named",
			args:     []interface{}{"stability"},
			named:    []KeyValue{{Key: "dereplicate", Value: true}},
			expected: "stability,dereplicate=T",
		},
		{
			name:     "named list value",
			named:    []KeyValue{{Key: "groups", Value: []string{"A", "B"}}},
			expected: "groups=A-B",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Format(tc.args, tc.named))
		})
	}
}
