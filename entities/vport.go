package entities

import (
	"github.com/zooyer/dxfcodec/codec"
	"github.com/zooyer/dxfcodec/core"
	"github.com/zooyer/dxfcodec/schema"
)

const TypeVport = "VPORT"

func init() {
	schema.Register(&schema.Schema{
		TypeName:   TypeVport,
		MinVersion: core.R10,
		Slots: slots(
			[]*schema.FieldSlot{
				{Name: "handle", Code: 5, Kind: schema.KindHandle},
				{Name: "subclass", Code: 100, Ordinal: 1, Kind: schema.KindString, Default: schema.StringValue("AcDbSymbolTableRecord"), MinVersion: core.R13},
				{Name: "subclass_vport", Code: 100, Ordinal: 2, Kind: schema.KindString, Default: schema.StringValue("AcDbViewportTableRecord"), MinVersion: core.R13},
				{Name: "name", Code: 2, Kind: schema.KindString},
				{Name: "flags", Code: 70, Kind: schema.KindInt},
			},
			pointSlots2D("lower_left", 10, core.Point{}),
			pointSlots2D("upper_right", 11, core.Point{X: 1, Y: 1}),
			pointSlots2D("center", 12, core.Point{}),
			pointSlots2D("snap_base", 13, core.Point{}),
			pointSlots2D("snap_spacing", 14, core.Point{X: 1, Y: 1}),
			pointSlots2D("grid_spacing", 15, core.Point{}),
			pointSlots("direction", 16, core.Point{Z: 1}),
			pointSlots("target", 17, core.Point{}),
			[]*schema.FieldSlot{
				{Name: "view_height", Code: 40, Kind: schema.KindFloat, Default: schema.FloatValue(1)},
				{Name: "aspect_ratio", Code: 41, Kind: schema.KindFloat, Default: schema.FloatValue(1)},
				{Name: "lens_length", Code: 42, Kind: schema.KindFloat, Default: schema.FloatValue(50)},
				{Name: "front_clip", Code: 43, Kind: schema.KindFloat},
				{Name: "back_clip", Code: 44, Kind: schema.KindFloat},
				{Name: "snap_angle", Code: 50, Kind: schema.KindFloat},
				{Name: "view_twist", Code: 51, Kind: schema.KindFloat},
				{Name: "view_mode", Code: 71, Kind: schema.KindInt},
				{Name: "circle_sides", Code: 72, Kind: schema.KindInt, Default: schema.IntValue(100)},
				{Name: "fast_zoom", Code: 73, Kind: schema.KindInt, Default: schema.IntValue(1)},
				{Name: "ucs_icon", Code: 74, Kind: schema.KindInt, Default: schema.IntValue(1)},
				{Name: "snap_on", Code: 75, Kind: schema.KindInt},
				{Name: "grid_on", Code: 76, Kind: schema.KindInt},
				{Name: "snap_style", Code: 77, Kind: schema.KindInt},
				{Name: "snap_isopair", Code: 78, Kind: schema.KindInt},
			},
		),
	})
}

// Vport 是 VPORT 表记录的类型化视图
type Vport struct {
	*codec.Entity
}

func AsVport(e *codec.Entity) (*Vport, bool) {
	if e == nil || e.Type() != TypeVport {
		return nil, false
	}
	return &Vport{Entity: e}, true
}

func (v *Vport) Name() string {
	return v.Str("name")
}

func (v *Vport) ViewHeight() float64 {
	return v.Float("view_height")
}

// Window 返回视口窗口的包围盒（左下角/右上角）
func (v *Vport) Window() core.BBox {
	return core.BBox{
		Min: core.Point{X: v.Float("lower_left_x"), Y: v.Float("lower_left_y")},
		Max: core.Point{X: v.Float("upper_right_x"), Y: v.Float("upper_right_y")},
	}
}
