package codec

import "github.com/zooyer/dxfcodec/core"

// Config 是解码时显式传入的约定集合，
// 不放在包级变量里，多个文件可以各用各的约定。
type Config struct {
	File            string       // 文件显示名，只用于诊断信息
	Version         core.Version // 文件头声明的 DXF 版本
	DefaultLayer    string       // 图层为空时的回填值
	DefaultLinetype string       // 线型为空时的回填值
	Comment         func(string) // 组码 999 注释的回调，nil 则记入诊断
}

// DefaultConfig 返回与 AutoCAD 自身约定一致的配置
func DefaultConfig() Config {
	return Config{
		Version:         core.R14,
		DefaultLayer:    "0",
		DefaultLinetype: "BYLAYER",
	}
}
