package entities

import (
	"github.com/zooyer/dxfcodec/codec"
	"github.com/zooyer/dxfcodec/core"
	"github.com/zooyer/dxfcodec/schema"
)

const TypeLight = "LIGHT"

func init() {
	schema.Register(&schema.Schema{
		TypeName:   TypeLight,
		MinVersion: core.R2007,
		Slots: slots(
			baseSlots(),
			[]*schema.FieldSlot{
				{Name: "subclass_light", Code: 100, Ordinal: 2, Kind: schema.KindString, Default: schema.StringValue("AcDbLight"), MinVersion: core.R13},
				{Name: "version", Code: 90, Kind: schema.KindInt},
				{Name: "name", Code: 1, Kind: schema.KindString},
				{Name: "light_type", Code: 70, Kind: schema.KindInt, Default: schema.IntValue(1)},
				{Name: "status", Code: 290, Kind: schema.KindInt},
				{Name: "plot_glyph", Code: 291, Kind: schema.KindInt},
				{Name: "intensity", Code: 40, Kind: schema.KindFloat, Default: schema.FloatValue(1)},
			},
			pointSlots("position", 10, core.Point{}),
			pointSlots("target", 11, core.Point{}),
			[]*schema.FieldSlot{
				{Name: "attenuation_type", Code: 72, Kind: schema.KindInt},
				{Name: "use_attenuation_limits", Code: 292, Kind: schema.KindInt},
				{Name: "attenuation_start", Code: 41, Kind: schema.KindFloat, WriteGuard: floatNot("attenuation_start", 0)},
				{Name: "attenuation_end", Code: 42, Kind: schema.KindFloat, WriteGuard: floatNot("attenuation_end", 0)},
				{Name: "hotspot_angle", Code: 50, Kind: schema.KindFloat, WriteGuard: floatNot("hotspot_angle", 0)},
				{Name: "falloff_angle", Code: 51, Kind: schema.KindFloat, WriteGuard: floatNot("falloff_angle", 0)},
				{Name: "cast_shadows", Code: 293, Kind: schema.KindInt},
				{Name: "shadow_type", Code: 73, Kind: schema.KindInt},
				{Name: "shadow_map_size", Code: 91, Kind: schema.KindInt, WriteGuard: intNot("shadow_map_size", 0)},
				{Name: "shadow_softness", Code: 280, Kind: schema.KindInt},
			},
		),
	})
}

// Light 是 LIGHT 记录的类型化视图
type Light struct {
	*codec.Entity
}

func AsLight(e *codec.Entity) (*Light, bool) {
	if e == nil || e.Type() != TypeLight {
		return nil, false
	}
	return &Light{Entity: e}, true
}

func (l *Light) Name() string {
	return l.Str("name")
}

func (l *Light) Position() core.Point {
	return point(l.Entity, "position")
}

func (l *Light) Target() core.Point {
	return point(l.Entity, "target")
}

func (l *Light) Intensity() float64 {
	return l.Float("intensity")
}

func (l *Light) SetPosition(p core.Point) {
	setPoint(l.Entity, "position", p)
}
