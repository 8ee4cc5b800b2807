package entities

import (
	"github.com/zooyer/dxfcodec/codec"
	"github.com/zooyer/dxfcodec/core"
	"github.com/zooyer/dxfcodec/schema"
)

const TypeXline = "XLINE"

// XLINE 与 RAY 同构，只是线名与子类标记不同
func init() {
	schema.Register(&schema.Schema{
		TypeName:   TypeXline,
		MinVersion: core.R13,
		Slots: slots(
			baseSlots(),
			[]*schema.FieldSlot{
				{Name: "subclass_xline", Code: 100, Ordinal: 2, Kind: schema.KindString, Default: schema.StringValue("AcDbXline"), MinVersion: core.R13},
			},
			pointSlots("start", 10, core.Point{}),
			pointSlots("direction", 11, core.Point{X: 1}),
		),
	})
}

// Xline 是 XLINE 记录的类型化视图
type Xline struct {
	*codec.Entity
}

func AsXline(e *codec.Entity) (*Xline, bool) {
	if e == nil || e.Type() != TypeXline {
		return nil, false
	}
	return &Xline{Entity: e}, true
}

func (x *Xline) Start() core.Point {
	return point(x.Entity, "start")
}

func (x *Xline) Direction() core.Point {
	return point(x.Entity, "direction")
}
