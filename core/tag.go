package core

import (
	"fmt"
	"strconv"
	"strings"
)

// MaxLineLength 是 DXF 规定的单行最大长度，值行超出部分会被截断
const MaxLineLength = 255

// MaxChunkLength 是二进制块（组码 310~319）单条记录的最大长度
const MaxChunkLength = 256

// BinaryChunkCode 判断组码是否属于二进制块行（310~319），
// 这类值行的长度上限是 MaxChunkLength 而不是 MaxLineLength
func BinaryChunkCode(code int) bool {
	return code >= 310 && code <= 319
}

// Tag 代表 DXF 中的一组标签对
type Tag struct {
	Code  int
	Value string
}

// AsFloat 将值转换为 float64
func (t Tag) AsFloat() (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(t.Value), 64)
}

// AsInt 将值转换为 int64
func (t Tag) AsInt() (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(t.Value), 10, 64)
}

// AsString 清洗字符串（去除多余空格）
func (t Tag) AsString() string {
	return strings.TrimSpace(t.Value)
}

// AsHandle 将十六进制句柄转换为 int64
func (t Tag) AsHandle() (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(t.Value), 16, 64)
}

// FloatTag 按 DXF 惯例格式化浮点标签（%f，6 位小数）
func FloatTag(code int, value float64) Tag {
	return Tag{Code: code, Value: strconv.FormatFloat(value, 'f', 6, 64)}
}

// IntTag 格式化整数标签
func IntTag(code int, value int64) Tag {
	return Tag{Code: code, Value: strconv.FormatInt(value, 10)}
}

// HandleTag 格式化句柄标签（大写十六进制）
func HandleTag(code int, value int64) Tag {
	return Tag{Code: code, Value: fmt.Sprintf("%X", value)}
}

// StringTag 格式化字符串标签
func StringTag(code int, value string) Tag {
	return Tag{Code: code, Value: value}
}

// Point 代表三维空间中的一个点
type Point struct {
	X, Y, Z float64
}

// BBox 代表包围盒
type BBox struct {
	Min, Max Point
}
