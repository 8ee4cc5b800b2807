package core

import (
	"github.com/cockroachdb/errors"
)

// Version 是 DXF 版本的序数，数值越大版本越新，
// 字段的版本区间判断只依赖这个序关系。
type Version int

const (
	R10   Version = 10
	R11   Version = 11
	R12   Version = 12
	R13   Version = 13
	R14   Version = 14
	R2000 Version = 15
	R2004 Version = 16
	R2007 Version = 17
	R2010 Version = 18
	R2013 Version = 19
	R2018 Version = 20
)

// VersionMax 用作字段版本区间的开区间上限
const VersionMax Version = 1<<31 - 1

// acadVer 是文件头 $ACADVER 变量值与序数的对应关系
var acadVer = map[string]Version{
	"AC1006": R10,
	"AC1009": R12, // R11 与 R12 共用同一个头
	"AC1012": R13,
	"AC1014": R14,
	"AC1015": R2000,
	"AC1018": R2004,
	"AC1021": R2007,
	"AC1024": R2010,
	"AC1027": R2013,
	"AC1032": R2018,
}

var verAcad = map[Version]string{
	R10:   "AC1006",
	R11:   "AC1009",
	R12:   "AC1009",
	R13:   "AC1012",
	R14:   "AC1014",
	R2000: "AC1015",
	R2004: "AC1018",
	R2007: "AC1021",
	R2010: "AC1024",
	R2013: "AC1027",
	R2018: "AC1032",
}

// ParseVersion 解析 $ACADVER 头变量的值（如 "AC1015"）
func ParseVersion(acad string) (Version, error) {
	if v, ok := acadVer[acad]; ok {
		return v, nil
	}
	return 0, errors.Newf("无法识别的 DXF 版本: %q", acad)
}

// String 返回版本对应的 $ACADVER 值
func (v Version) String() string {
	if s, ok := verAcad[v]; ok {
		return s
	}
	return "AC1009"
}

// AtLeast 判断版本是否不低于 min
func (v Version) AtLeast(min Version) bool {
	return v >= min
}

// In 判断版本是否落在 [min, max] 区间内
func (v Version) In(min, max Version) bool {
	return v >= min && v <= max
}
