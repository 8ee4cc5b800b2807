package utils

import (
	"math"

	"github.com/zooyer/dxfcodec/codec"
	"github.com/zooyer/dxfcodec/core"
)

// Extend 把点并入包围盒
func Extend(box core.BBox, p core.Point) core.BBox {
	box.Min.X = math.Min(box.Min.X, p.X)
	box.Min.Y = math.Min(box.Min.Y, p.Y)
	box.Min.Z = math.Min(box.Min.Z, p.Z)
	box.Max.X = math.Max(box.Max.X, p.X)
	box.Max.Y = math.Max(box.Max.Y, p.Y)
	box.Max.Z = math.Max(box.Max.Z, p.Z)
	return box
}

// Extents 统计一批实体的图纸范围，没有坐标点时返回 false
func Extents(all []*codec.Entity) (core.BBox, bool) {
	box := core.BBox{
		Min: core.Point{X: math.MaxFloat64, Y: math.MaxFloat64, Z: math.MaxFloat64},
		Max: core.Point{X: -math.MaxFloat64, Y: -math.MaxFloat64, Z: -math.MaxFloat64},
	}

	var found bool
	for _, e := range all {
		for _, p := range EntityPoints(e) {
			box = Extend(box, p)
			found = true
		}
	}

	return box, found
}

// IsSeparate 判断两个 BBox 是否完全分离
func IsSeparate(a, b core.BBox, gap float64) bool {
	return a.Max.X+gap < b.Min.X || a.Min.X-gap > b.Max.X ||
		a.Max.Y+gap < b.Min.Y || a.Min.Y-gap > b.Max.Y
}

// InBox 判断点是否落在包围盒内（只看 XY 平面）
func InBox(box core.BBox, point core.Point) bool {
	if point.X >= box.Min.X && point.X <= box.Max.X && point.Y >= box.Min.Y && point.Y <= box.Max.Y {
		return true
	}

	return false
}
