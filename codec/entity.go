package codec

import (
	"github.com/zooyer/dxfcodec/schema"
)

// BinaryChunk 是一条二进制图形数据记录（组码 310），
// 内容是 DXF 自身的十六进制编码，本库按不透明字符串处理。
type BinaryChunk struct {
	Data string
}

// ObjectID 是对象 ID 链上的一条记录（组码 330/340/350/360），
// 保留实际出现的组码以区分四种指针关系。
type ObjectID struct {
	Code   int
	Handle string
}

// Entity 是一条解码后的实体记录：按字段表初始化的槽位值、
// 文件顺序的二进制块序列与对象 ID 序列，
// 以及容器层面把同类实体串起来的 next 链接。
type Entity struct {
	sch    *schema.Schema
	Handle int64 // 组码 5 的句柄，-1 表示写出时省略该标签

	fields map[string]schema.Value

	Chunks    []BinaryChunk
	ObjectIDs []ObjectID

	next *Entity
}

// NewEntity 创建一条空记录，所有槽位取字段表声明的默认值
func NewEntity(sch *schema.Schema) *Entity {
	e := &Entity{
		sch:    sch,
		fields: make(map[string]schema.Value, len(sch.Slots)),
	}
	for _, slot := range sch.Slots {
		switch slot.Kind {
		case schema.KindChunk, schema.KindHandleChain:
			// 链式槽位没有标量默认值
		default:
			e.fields[slot.Name] = slot.Default
		}
	}
	return e
}

// Type 返回实体类型名
func (e *Entity) Type() string {
	return e.sch.TypeName
}

// Schema 返回实体的字段表
func (e *Entity) Schema() *schema.Schema {
	return e.sch
}

// Field 按槽位名取值，实现 schema.Fields
func (e *Entity) Field(name string) schema.Value {
	return e.fields[name]
}

// SetField 按槽位名设值
func (e *Entity) SetField(name string, v schema.Value) {
	e.fields[name] = v
}

// Float 取浮点槽位值的便捷方法
func (e *Entity) Float(name string) float64 {
	return e.fields[name].Float()
}

// Int 取整数槽位值的便捷方法
func (e *Entity) Int(name string) int64 {
	return e.fields[name].Int()
}

// Str 取字符串槽位值的便捷方法
func (e *Entity) Str(name string) string {
	return e.fields[name].Str()
}

// Next 返回链表上的后继实体
func (e *Entity) Next() *Entity {
	return e.next
}
