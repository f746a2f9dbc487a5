package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateMD5(t *testing.T) {
	// 固定输入的MD5必须稳定，去重逻辑依赖它
	assert.Equal(t, "d41d8cd98f00b204e9800998ecf8427e", CalculateMD5(nil))
	assert.Equal(t, "9e107d9d372bb6826bd81d3542a419d6",
		CalculateMD5([]byte("The quick brown fox jumps over the lazy dog")))
}

func TestArrayToJSONRoundTrip(t *testing.T) {
	arr := []string{"Go", "Python", "C++"}
	jsonVal := ArrayToJSON(arr)

	restored := JSONToArray(jsonVal)
	require.Equal(t, arr, restored)
}

func TestArrayToJSONEmpty(t *testing.T) {
	// 空数组必须落成"[]"而不是null，否则JSON列查询行为不一致
	assert.Equal(t, "[]", string(ArrayToJSON(nil)))
	assert.Equal(t, "[]", string(ArrayToJSON([]string{})))
}

func TestJSONToArrayInvalid(t *testing.T) {
	assert.Nil(t, JSONToArray(nil))
	assert.Nil(t, JSONToArray([]byte("not json")))
	assert.Nil(t, JSONToArray([]byte(`{"a":1}`)))
}
