package entities

import (
	"github.com/zooyer/dxfcodec/codec"
	"github.com/zooyer/dxfcodec/core"
	"github.com/zooyer/dxfcodec/schema"
)

// 写出守卫的几个构造函数：守卫判断的是"值是否还值得写"，
// 跳过的都是解码时能回填回来的默认值，不影响往返。

func strNot(name, def string) func(schema.Fields) bool {
	return func(f schema.Fields) bool { return f.Field(name).Str() != def }
}

func intNot(name string, def int64) func(schema.Fields) bool {
	return func(f schema.Fields) bool { return f.Field(name).Int() != def }
}

func floatNot(name string, def float64) func(schema.Fields) bool {
	return func(f schema.Fields) bool { return f.Field(name).Float() != def }
}

func notEmpty(name string) func(schema.Fields) bool {
	return func(f schema.Fields) bool { return !f.Field(name).IsEmpty() }
}

// baseSlots 是 AcDbEntity 公共字段，图元类实体的字段表以它开头
func baseSlots() []*schema.FieldSlot {
	return []*schema.FieldSlot{
		{Name: "handle", Code: 5, Kind: schema.KindHandle},
		{Name: "subclass", Code: 100, Ordinal: 1, Kind: schema.KindString, Default: schema.StringValue("AcDbEntity"), MinVersion: core.R13},
		{Name: "paperspace", Code: 67, Kind: schema.KindInt, MinVersion: core.R13, WriteGuard: intNot("paperspace", 0)},
		{Name: "layer", Code: 8, Kind: schema.KindString, DefaultOnEmpty: true},
		{Name: "linetype", Code: 6, Kind: schema.KindString, Default: schema.StringValue("BYLAYER"), DefaultOnEmpty: true, WriteGuard: strNot("linetype", "BYLAYER")},
		{Name: "color", Code: 62, Kind: schema.KindInt, Default: schema.IntValue(256), WriteGuard: intNot("color", 256)},
		{Name: "thickness", Code: 39, Kind: schema.KindFloat, WriteGuard: floatNot("thickness", 0)},
		{Name: "linetype_scale", Code: 48, Kind: schema.KindFloat, Default: schema.FloatValue(1), MinVersion: core.R13, WriteGuard: floatNot("linetype_scale", 1)},
	}
}

// pointSlots 生成一组坐标槽位，x/y/z 的组码相差 10，必须相邻写出
func pointSlots(name string, code int, def core.Point) []*schema.FieldSlot {
	return []*schema.FieldSlot{
		{Name: name + "_x", Code: code, Kind: schema.KindFloat, Default: schema.FloatValue(def.X)},
		{Name: name + "_y", Code: code + 10, Kind: schema.KindFloat, Default: schema.FloatValue(def.Y)},
		{Name: name + "_z", Code: code + 20, Kind: schema.KindFloat, Default: schema.FloatValue(def.Z)},
	}
}

// pointSlots2D 同 pointSlots，但只有 x/y（VPORT 的视图坐标是二维的）
func pointSlots2D(name string, code int, def core.Point) []*schema.FieldSlot {
	return []*schema.FieldSlot{
		{Name: name + "_x", Code: code, Kind: schema.KindFloat, Default: schema.FloatValue(def.X)},
		{Name: name + "_y", Code: code + 10, Kind: schema.KindFloat, Default: schema.FloatValue(def.Y)},
	}
}

// point 把三个坐标槽位组装回 core.Point
func point(e *codec.Entity, name string) core.Point {
	return core.Point{
		X: e.Float(name + "_x"),
		Y: e.Float(name + "_y"),
		Z: e.Float(name + "_z"),
	}
}

// setPoint 拆开 core.Point 写入三个坐标槽位
func setPoint(e *codec.Entity, name string, p core.Point) {
	e.SetField(name+"_x", schema.FloatValue(p.X))
	e.SetField(name+"_y", schema.FloatValue(p.Y))
	e.SetField(name+"_z", schema.FloatValue(p.Z))
}

func slots(groups ...[]*schema.FieldSlot) []*schema.FieldSlot {
	var all []*schema.FieldSlot
	for _, group := range groups {
		all = append(all, group...)
	}
	return all
}
