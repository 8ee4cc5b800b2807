package codec

import (
	"fmt"

	"github.com/zooyer/dxfcodec/core"
	"github.com/zooyer/dxfcodec/schema"
)

// Encoder 按字段表的写出顺序把实体序列化回标签序列，
// 版本门控只在这里生效：解码放任自流，写出必须守规矩。
type Encoder struct {
	target core.Version
	strict bool
	diags  []Diagnostic
}

// NewEncoder 创建面向目标版本的编码器。
// strict 模式下目标版本低于实体最低版本直接报 VersionError，
// 否则照常写出并记一条版本诊断，由调用方决定告警还是中止。
func NewEncoder(target core.Version, strict bool) *Encoder {
	return &Encoder{
		target: target,
		strict: strict,
	}
}

// Diagnostics 返回累计的诊断信息
func (en *Encoder) Diagnostics() []Diagnostic {
	return en.diags
}

// Encode 把一条实体写成标签序列，首个标签是版本相关的 "0/线名"
func (en *Encoder) Encode(entity *Entity) ([]core.Tag, error) {
	sch := entity.Schema()

	if en.target < sch.MinVersion {
		if en.strict {
			return nil, &VersionError{Type: sch.TypeName, Target: en.target, Min: sch.MinVersion}
		}
		en.diags = append(en.diags, Diagnostic{
			Kind:   DiagVersionMismatch,
			Entity: sch.TypeName,
			Detail: fmt.Sprintf("目标版本 %s 低于实体最低版本 %s，仍按原样写出", en.target, sch.MinVersion),
		})
	}

	var (
		tags      = []core.Tag{core.StringTag(0, sch.WireName(en.target))}
		chunkDone bool
		chainDone bool
	)

	for _, slot := range sch.EmissionOrder() {
		if !en.target.In(slot.MinVersion, slot.MaxVersion) {
			continue
		}
		if slot.WriteGuard != nil && !slot.WriteGuard(entity) {
			continue
		}

		switch slot.Kind {
		case schema.KindChunk:
			// 链式槽位整条展开一次，340/350/360 的查找槽位不再重复
			if chunkDone {
				continue
			}
			chunkDone = true
			for _, chunk := range entity.Chunks {
				tags = append(tags, core.StringTag(slot.Code, chunk.Data))
			}

		case schema.KindHandleChain:
			if chainDone {
				continue
			}
			chainDone = true
			for _, oid := range entity.ObjectIDs {
				tags = append(tags, core.StringTag(oid.Code, oid.Handle))
			}

		case schema.KindHandle:
			if slot.Code == 5 {
				// -1 哨兵：不写出句柄标签
				if entity.Handle == -1 {
					continue
				}
				tags = append(tags, core.HandleTag(5, entity.Handle))
				continue
			}
			tags = append(tags, core.StringTag(slot.Code, entity.Field(slot.Name).Str()))

		case schema.KindInt:
			if slot.Format != "" {
				tags = append(tags, core.StringTag(slot.Code, fmt.Sprintf(slot.Format, entity.Int(slot.Name))))
				continue
			}
			tags = append(tags, core.IntTag(slot.Code, entity.Int(slot.Name)))

		case schema.KindFloat:
			if slot.Format != "" {
				tags = append(tags, core.StringTag(slot.Code, fmt.Sprintf(slot.Format, entity.Float(slot.Name))))
				continue
			}
			tags = append(tags, core.FloatTag(slot.Code, entity.Float(slot.Name)))

		case schema.KindString:
			tags = append(tags, core.StringTag(slot.Code, entity.Str(slot.Name)))
		}
	}

	return tags, nil
}
