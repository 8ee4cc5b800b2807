package codec

import (
	"github.com/cockroachdb/errors"

	"github.com/zooyer/dxfcodec/core"
	"github.com/zooyer/dxfcodec/schema"
)

// Decoder 驱动扫描器，把标签流解码成实体记录。
// 格式错误与未知组码只记诊断不中断，这是 DXF 生态的惯例：
// 第三方导出的文件里总有私货。
type Decoder struct {
	scanner *core.Scanner
	cfg     Config
	diags   []Diagnostic
}

func NewDecoder(scanner *core.Scanner, cfg Config) *Decoder {
	if cfg.DefaultLayer == "" {
		cfg.DefaultLayer = "0"
	}
	if cfg.DefaultLinetype == "" {
		cfg.DefaultLinetype = "BYLAYER"
	}
	return &Decoder{
		scanner: scanner,
		cfg:     cfg,
	}
}

// Scanner 返回底层扫描器，外层分发器靠它读区段标记
func (d *Decoder) Scanner() *core.Scanner {
	return d.scanner
}

// Diagnostics 返回累计的诊断信息
func (d *Decoder) Diagnostics() []Diagnostic {
	return d.diags
}

// Decode 从当前位置解码一条实体记录，直到下一个组码 0。
// 调用约定与实体分发一致：进入时 LastTag 是本实体的 "0/线名"，
// 返回时 LastTag 停在终止的组码 0 上，留给外层分发器。
func (d *Decoder) Decode(sch *schema.Schema) (*Entity, error) {
	var (
		entity = NewEntity(sch)
		seen   = make(map[int]int) // 每个组码各自计数，序数消歧靠它
	)

	for {
		tag := d.scanner.LastTag
		if tag.Code != 0 {
			d.dispatch(entity, tag, seen)
		}
		if !d.scanner.Next() {
			if err := d.scanner.Err(); err != nil {
				return nil, errors.Wrapf(err, "%s: 解析 %s 中断", d.cfg.File, sch.TypeName)
			}
			break
		}
		if d.scanner.LastTag.Code == 0 {
			break
		}
	}

	// 硬性前置条件：必填槽位为空则整条记录被拒绝
	for _, name := range sch.Required {
		if entity.Field(name).IsEmpty() {
			return nil, &ValidationError{Type: sch.TypeName, Field: name}
		}
	}

	d.backfill(entity)

	return entity, nil
}

func (d *Decoder) dispatch(entity *Entity, tag core.Tag, seen map[int]int) {
	if tag.Code == 999 {
		// 注释必须透出，参考实现是直接打印
		if d.cfg.Comment != nil {
			d.cfg.Comment(tag.Value)
		} else {
			d.diags = append(d.diags, d.diag(DiagComment, entity, tag, tag.Value))
		}
		return
	}

	seen[tag.Code]++

	slot, ok := entity.sch.Lookup(tag.Code, seen[tag.Code])
	if !ok {
		d.diags = append(d.diags, d.diag(DiagUnrecognizedTag, entity, tag, "该实体类型不使用此组码"))
		return
	}

	// 超出声明版本区间的标签照常解码，很多文件的版本头是骗人的
	if !d.cfg.Version.In(slot.MinVersion, slot.MaxVersion) {
		d.diags = append(d.diags, d.diag(DiagVersionMismatch, entity, tag, "组码超出声明版本的有效区间"))
	}

	switch slot.Kind {
	case schema.KindChunk:
		data := tag.Value
		if len(data) > core.MaxChunkLength {
			// 256 是格式的硬性上限
			d.diags = append(d.diags, d.diag(DiagMalformedTag, entity, tag, "二进制块超长，已截断"))
			data = data[:core.MaxChunkLength]
		}
		entity.Chunks = append(entity.Chunks, BinaryChunk{Data: data})

	case schema.KindHandleChain:
		// 记录实际出现的组码，写出时原样还原
		entity.ObjectIDs = append(entity.ObjectIDs, ObjectID{Code: tag.Code, Handle: tag.AsString()})

	case schema.KindInt:
		v, err := tag.AsInt()
		if err != nil {
			d.diags = append(d.diags, d.diag(DiagMalformedTag, entity, tag, "不是合法整数"))
			return
		}
		entity.SetField(slot.Name, schema.IntValue(v))

	case schema.KindFloat:
		v, err := tag.AsFloat()
		if err != nil {
			d.diags = append(d.diags, d.diag(DiagMalformedTag, entity, tag, "不是合法浮点数"))
			return
		}
		entity.SetField(slot.Name, schema.FloatValue(v))

	case schema.KindHandle:
		if slot.Code == 5 {
			// 实体自身的句柄解析为数值，-1 哨兵留给调用方
			v, err := tag.AsHandle()
			if err != nil {
				d.diags = append(d.diags, d.diag(DiagMalformedTag, entity, tag, "不是合法句柄"))
				return
			}
			entity.Handle = v
			return
		}
		entity.SetField(slot.Name, schema.HandleValue(tag.AsString()))

	case schema.KindString:
		entity.SetField(slot.Name, schema.StringValue(tag.AsString()))
	}
}

// backfill 对声明了空值回填的槽位应用配置默认值，重复执行结果不变
func (d *Decoder) backfill(entity *Entity) {
	for _, slot := range entity.sch.Slots {
		if !slot.DefaultOnEmpty || !entity.Field(slot.Name).IsEmpty() {
			continue
		}
		switch slot.Code {
		case 8:
			entity.SetField(slot.Name, schema.StringValue(d.cfg.DefaultLayer))
		case 6:
			entity.SetField(slot.Name, schema.StringValue(d.cfg.DefaultLinetype))
		default:
			entity.SetField(slot.Name, slot.Default)
		}
	}
}

func (d *Decoder) diag(kind DiagKind, entity *Entity, tag core.Tag, detail string) Diagnostic {
	return Diagnostic{
		Kind:   kind,
		Entity: entity.Type(),
		File:   d.cfg.File,
		Line:   d.scanner.Line(),
		Code:   tag.Code,
		Value:  tag.Value,
		Detail: detail,
	}
}
