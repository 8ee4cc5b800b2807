package entities

import (
	"github.com/zooyer/dxfcodec/codec"
	"github.com/zooyer/dxfcodec/core"
	"github.com/zooyer/dxfcodec/schema"
)

const TypeUcs = "UCS"

// UCS 是表记录不是图元，没有 AcDbEntity 公共段
func init() {
	schema.Register(&schema.Schema{
		TypeName:   TypeUcs,
		MinVersion: core.R10,
		Slots: slots(
			[]*schema.FieldSlot{
				{Name: "handle", Code: 5, Kind: schema.KindHandle},
				{Name: "subclass", Code: 100, Ordinal: 1, Kind: schema.KindString, Default: schema.StringValue("AcDbSymbolTableRecord"), MinVersion: core.R13},
				{Name: "subclass_ucs", Code: 100, Ordinal: 2, Kind: schema.KindString, Default: schema.StringValue("AcDbUCSTableRecord"), MinVersion: core.R13},
				{Name: "name", Code: 2, Kind: schema.KindString},
				{Name: "flags", Code: 70, Kind: schema.KindInt},
			},
			pointSlots("origin", 10, core.Point{}),
			pointSlots("x_axis", 11, core.Point{X: 1}),
			pointSlots("y_axis", 12, core.Point{Y: 1}),
		),
	})
}

// Ucs 是 UCS 表记录的类型化视图
type Ucs struct {
	*codec.Entity
}

func AsUcs(e *codec.Entity) (*Ucs, bool) {
	if e == nil || e.Type() != TypeUcs {
		return nil, false
	}
	return &Ucs{Entity: e}, true
}

func (u *Ucs) Name() string {
	return u.Str("name")
}

func (u *Ucs) Origin() core.Point {
	return point(u.Entity, "origin")
}

func (u *Ucs) XAxis() core.Point {
	return point(u.Entity, "x_axis")
}

func (u *Ucs) YAxis() core.Point {
	return point(u.Entity, "y_axis")
}
