package schema

import "strconv"

// Kind 描述字段槽位的类型
type Kind int

const (
	KindInt         Kind = iota // 整数
	KindFloat                   // 浮点数
	KindString                  // 字符串
	KindHandle                  // 十六进制句柄
	KindChunk                   // 可重复的二进制块（组码 310）
	KindHandleChain             // 可重复的对象 ID 链（组码 330/340/350/360）
)

// Value 是槽位值的小型联合体，按 Kind 取用对应形态，
// 避免在解码热路径上使用 interface{}。
type Value struct {
	kind Kind
	i    int64
	f    float64
	s    string
}

func IntValue(v int64) Value {
	return Value{kind: KindInt, i: v}
}

func FloatValue(v float64) Value {
	return Value{kind: KindFloat, f: v}
}

func StringValue(v string) Value {
	return Value{kind: KindString, s: v}
}

func HandleValue(v string) Value {
	return Value{kind: KindHandle, s: v}
}

func (v Value) Kind() Kind {
	return v.kind
}

func (v Value) Int() int64 {
	return v.i
}

func (v Value) Float() float64 {
	return v.f
}

// Str 返回字符串形态的值，数值形态会被格式化
func (v Value) Str() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'f', 6, 64)
	default:
		return v.s
	}
}

// IsEmpty 判断字符串形态的值是否为空（用于必填校验与回填）
func (v Value) IsEmpty() bool {
	switch v.kind {
	case KindString, KindHandle:
		return v.s == ""
	default:
		return false
	}
}

// Fields 是写出守卫与访问器看到的实体视图
type Fields interface {
	Field(name string) Value
}
