package entities

import (
	"github.com/zooyer/dxfcodec/codec"
	"github.com/zooyer/dxfcodec/core"
	"github.com/zooyer/dxfcodec/schema"
)

const TypeRay = "RAY"

func init() {
	schema.Register(&schema.Schema{
		TypeName:   TypeRay,
		MinVersion: core.R13,
		Slots: slots(
			baseSlots(),
			[]*schema.FieldSlot{
				{Name: "subclass_ray", Code: 100, Ordinal: 2, Kind: schema.KindString, Default: schema.StringValue("AcDbRay"), MinVersion: core.R13},
			},
			pointSlots("start", 10, core.Point{}),
			pointSlots("direction", 11, core.Point{X: 1}),
		),
	})
}

// Ray 是 RAY 记录的类型化视图
type Ray struct {
	*codec.Entity
}

func AsRay(e *codec.Entity) (*Ray, bool) {
	if e == nil || e.Type() != TypeRay {
		return nil, false
	}
	return &Ray{Entity: e}, true
}

func (r *Ray) Start() core.Point {
	return point(r.Entity, "start")
}

func (r *Ray) Direction() core.Point {
	return point(r.Entity, "direction")
}
