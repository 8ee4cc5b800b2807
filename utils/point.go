package utils

import (
	"github.com/zooyer/dxfcodec/codec"
	"github.com/zooyer/dxfcodec/core"
	"github.com/zooyer/dxfcodec/entities"
)

// EntityPoints 提取实体上有几何意义的世界坐标点。
// VPORT 的窗口坐标是视图空间的，不参与图纸范围统计。
func EntityPoints(e *codec.Entity) []core.Point {
	switch e.Type() {
	case entities.TypeLight:
		light, _ := entities.AsLight(e)
		return []core.Point{light.Position(), light.Target()}
	case entities.TypeTolerance:
		tolerance, _ := entities.AsTolerance(e)
		return []core.Point{tolerance.Insertion()}
	case entities.TypeRay:
		ray, _ := entities.AsRay(e)
		return []core.Point{ray.Start()}
	case entities.TypeXline:
		xline, _ := entities.AsXline(e)
		return []core.Point{xline.Start()}
	case entities.TypeUcs:
		ucs, _ := entities.AsUcs(e)
		return []core.Point{ucs.Origin()}
	}
	return nil
}
