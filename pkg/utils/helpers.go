package utils

import (
	"crypto/md5"
	"encoding/hex"
	"encoding/json"

	"gorm.io/datatypes"
)

// CalculateMD5 计算字节切片的MD5摘要（十六进制小写）
func CalculateMD5(data []byte) string {
	hasher := md5.New()
	hasher.Write(data)
	return hex.EncodeToString(hasher.Sum(nil))
}

// ArrayToJSON 把字符串数组转换成可落库的JSON列值，
// 空数组序列化为"[]"而不是null
func ArrayToJSON(arr []string) datatypes.JSON {
	if len(arr) == 0 {
		return datatypes.JSON("[]")
	}
	jsonBytes, err := json.Marshal(arr)
	if err != nil {
		return datatypes.JSON("[]")
	}
	return datatypes.JSON(jsonBytes)
}

// JSONToArray 把JSON列值还原为字符串数组，解析失败返回nil
func JSONToArray(data datatypes.JSON) []string {
	if len(data) == 0 {
		return nil
	}
	var arr []string
	if err := json.Unmarshal(data, &arr); err != nil {
		return nil
	}
	return arr
}
