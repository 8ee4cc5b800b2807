package schema

import (
	"github.com/cockroachdb/errors"

	"github.com/zooyer/dxfcodec/core"
)

// FieldSlot 描述实体的一个字段槽位：
// 组码、类型、默认值、版本区间以及写出守卫。
type FieldSlot struct {
	Name           string
	Code           int
	Ordinal        int // 同一组码第几次出现才命中该槽位，0 表示任意一次
	Kind           Kind
	Default        Value
	MinVersion     core.Version
	MaxVersion     core.Version
	DefaultOnEmpty bool              // 解码后为空字符串时按配置回填默认值
	Format         string            // 覆盖该槽位默认的数值格式（fmt 动词）
	WriteGuard     func(Fields) bool // 返回 false 则跳过写出，nil 表示总是写出
}

// Schema 是一种实体类型的静态字段表，注册一次，解码与编码共用。
// Slots 的顺序即写出顺序，成对的坐标组码必须相邻排列。
type Schema struct {
	TypeName   string
	ZombieName string       // 目标版本不高于 ZombieMax 时使用的替代线名
	ZombieMax  core.Version
	MinVersion core.Version // 实体整体的最低可用版本
	Slots      []*FieldSlot
	Required   []string // 硬性前置条件：这些槽位为空则整条记录被拒绝

	byCode map[int][]*FieldSlot
}

// Lookup 按组码与出现序数查找槽位。
// 先精确匹配 Ordinal，再退回任意序数的槽位；
// 组码 330 这类按位置复用的组码靠这里消歧，而不是解码器里的散落计数器。
func (s *Schema) Lookup(code, ordinal int) (*FieldSlot, bool) {
	slots := s.byCode[code]
	for _, slot := range slots {
		if slot.Ordinal == ordinal {
			return slot, true
		}
	}
	for _, slot := range slots {
		if slot.Ordinal == 0 {
			return slot, true
		}
	}
	return nil, false
}

// EmissionOrder 返回写出顺序的槽位序列
func (s *Schema) EmissionOrder() []*FieldSlot {
	return s.Slots
}

// WireName 返回目标版本下的线名（ACAD_PROXY_ENTITY 在 R13 及以下写作 ACAD_ZOMBIE_ENTITY）
func (s *Schema) WireName(target core.Version) string {
	if s.ZombieName != "" && target <= s.ZombieMax {
		return s.ZombieName
	}
	return s.TypeName
}

func (s *Schema) buildIndex() {
	s.byCode = make(map[int][]*FieldSlot, len(s.Slots))
	for _, slot := range s.Slots {
		if slot.MaxVersion == 0 {
			slot.MaxVersion = core.VersionMax
		}
		if slot.MinVersion == 0 {
			slot.MinVersion = core.R10
		}
		// 未显式声明默认值时，零值 Value 的形态是整数，
		// 字符串槽位的空值会被渲染成 "0"，必填校验与回填全被绕过，
		// 这里按槽位类型归一化默认值的形态
		if slot.Default.kind != slot.Kind {
			switch slot.Kind {
			case KindString:
				slot.Default = StringValue(slot.Default.s)
			case KindHandle:
				slot.Default = HandleValue(slot.Default.s)
			case KindFloat:
				slot.Default = FloatValue(slot.Default.f)
			}
		}
		s.byCode[slot.Code] = append(s.byCode[slot.Code], slot)
	}
}

var registry = map[string]*Schema{}

// Register 注册实体类型的字段表，允许以后动态扩展新的实体类型。
// 应当在 init 中调用，重复注册视为编程错误。
func Register(s *Schema) {
	if _, ok := registry[s.TypeName]; ok {
		panic(errors.Newf("实体类型重复注册: %s", s.TypeName))
	}
	s.buildIndex()
	registry[s.TypeName] = s
	if s.ZombieName != "" {
		registry[s.ZombieName] = s
	}
}

// Get 根据实体名称查找字段表（替代线名也能命中）
func Get(typeName string) (*Schema, bool) {
	s, ok := registry[typeName]
	return s, ok
}

// Types 返回所有已注册的实体类型名（不含替代线名）
func Types() []string {
	var names []string
	for name, s := range registry {
		if name == s.TypeName {
			names = append(names, name)
		}
	}
	return names
}
