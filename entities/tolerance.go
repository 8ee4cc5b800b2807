package entities

import (
	"github.com/zooyer/dxfcodec/codec"
	"github.com/zooyer/dxfcodec/core"
	"github.com/zooyer/dxfcodec/schema"
)

const TypeTolerance = "TOLERANCE"

// 组码 3 的标注样式名是硬性前置条件：AutoCAD 没有样式渲染不了公差，
// 缺了整条记录被拒绝而不是回填默认值。
func init() {
	schema.Register(&schema.Schema{
		TypeName:   TypeTolerance,
		MinVersion: core.R13,
		Required:   []string{"dimstyle"},
		Slots: slots(
			baseSlots(),
			[]*schema.FieldSlot{
				{Name: "subclass_fcf", Code: 100, Ordinal: 2, Kind: schema.KindString, Default: schema.StringValue("AcDbFcf"), MinVersion: core.R13},
				{Name: "dimstyle", Code: 3, Kind: schema.KindString},
			},
			pointSlots("insertion", 10, core.Point{}),
			[]*schema.FieldSlot{
				{Name: "text", Code: 1, Kind: schema.KindString},
			},
			pointSlots("direction", 11, core.Point{X: 1}),
		),
	})
}

// Tolerance 是 TOLERANCE 记录的类型化视图
type Tolerance struct {
	*codec.Entity
}

func AsTolerance(e *codec.Entity) (*Tolerance, bool) {
	if e == nil || e.Type() != TypeTolerance {
		return nil, false
	}
	return &Tolerance{Entity: e}, true
}

func (t *Tolerance) DimStyle() string {
	return t.Str("dimstyle")
}

func (t *Tolerance) Text() string {
	return t.Str("text")
}

func (t *Tolerance) Insertion() core.Point {
	return point(t.Entity, "insertion")
}

func (t *Tolerance) Direction() core.Point {
	return point(t.Entity, "direction")
}
