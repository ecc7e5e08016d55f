package phpjson

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNameKey(t *testing.T) {
	var testCases = []struct {
		name        string
		expectIndex bool
		index       int64
	}{
		{name: "0", expectIndex: true, index: 0},
		{name: "42", expectIndex: true, index: 42},
		{name: "-7", expectIndex: true, index: -7},
		{name: "9223372036854775807", expectIndex: true, index: 9223372036854775807},
		{name: "9223372036854775808"},
		{name: "007"},
		{name: "+1"},
		{name: "-0"},
		{name: "1.0"},
		{name: " 1"},
		{name: ""},
		{name: "abc"},
	}

	for _, testCase := range testCases {
		key := NameKey(testCase.name)
		index, ok := key.Index()
		assert.EqualValues(t, testCase.expectIndex, ok, testCase.name)
		assert.EqualValues(t, testCase.index, index, testCase.name)
		assert.EqualValues(t, testCase.name, key.String(), testCase.name)
	}
}

func TestIsList(t *testing.T) {
	var testCases = []struct {
		description string
		entries     []Entry
		expect      bool
	}{
		{description: "empty", expect: true},
		{description: "in order", entries: []Entry{At(0, Int(1)), At(1, Int(2)), At(2, Int(3))}, expect: true},
		{description: "name keys normalized", entries: []Entry{Field("0", Null()), Field("1", Null())}, expect: true},
		{description: "starts at one", entries: []Entry{At(1, Int(1))}},
		{description: "out of order", entries: []Entry{At(1, Int(1)), At(0, Int(2))}},
		{description: "gap", entries: []Entry{At(0, Int(1)), At(2, Int(2))}},
		{description: "names", entries: []Entry{Field("a", Int(1)), Field("b", Int(2))}},
		{description: "mixed", entries: []Entry{At(0, Int(1)), Field("a", Int(2))}},
		{description: "descending digits", entries: []Entry{Field("5", Int(1)), Field("4", Int(2))}},
	}

	for _, testCase := range testCases {
		assert.EqualValues(t, testCase.expect, IsList(testCase.entries), testCase.description)
	}
}
