package visitor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapVisitorOf(t *testing.T) {
	var testCases = []struct {
		description string
		input       interface{}
		expectKeys  []interface{}
		expectErr   bool
	}{
		{description: "string any", input: map[string]interface{}{"b": 1, "a": "x", "c": nil}, expectKeys: []interface{}{"a", "b", "c"}},
		{description: "string int", input: map[string]int{"z": 1, "y": 2}, expectKeys: []interface{}{"y", "z"}},
		{description: "int keys", input: map[int]bool{10: true, -1: false, 3: true}, expectKeys: []interface{}{int64(-1), int64(3), int64(10)}},
		{description: "uint keys", input: map[uint8]string{2: "b", 1: "a"}, expectKeys: []interface{}{uint64(1), uint64(2)}},
		{description: "named string keys", input: map[label]int{"b": 1, "a": 2}, expectKeys: []interface{}{"a", "b"}},
		{description: "float keys", input: map[float64]int{1: 1}, expectErr: true},
		{description: "not a map", input: []int{1}, expectErr: true},
	}

	for _, testCase := range testCases {
		visit, err := MapVisitorOf(testCase.input)
		if testCase.expectErr {
			assert.Error(t, err, testCase.description)
			continue
		}
		assert.Nil(t, err, testCase.description)
		var keys []interface{}
		err = visit(func(key interface{}, element interface{}) (bool, error) {
			keys = append(keys, key)
			return true, nil
		})
		assert.Nil(t, err, testCase.description)
		assert.EqualValues(t, testCase.expectKeys, keys, testCase.description)
	}
}

type label string

func TestMapVisitorOf_Stop(t *testing.T) {
	visit, err := MapVisitorOf(map[string]int{"a": 1, "b": 2, "c": 3})
	assert.Nil(t, err)
	count := 0
	err = visit(func(key interface{}, element interface{}) (bool, error) {
		count++
		return count < 2, nil
	})
	assert.Nil(t, err)
	assert.EqualValues(t, 2, count)

	boom := errors.New("boom")
	visit, _ = MapVisitorOf(map[int]int{1: 1, 2: 2})
	err = visit(func(key interface{}, element interface{}) (bool, error) {
		return true, boom
	})
	assert.True(t, errors.Is(err, boom))
}
