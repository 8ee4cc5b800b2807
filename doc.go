package dxf

import (
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/zooyer/dxfcodec/codec"
	"github.com/zooyer/dxfcodec/core"
	"github.com/zooyer/dxfcodec/entities"
	"github.com/zooyer/dxfcodec/schema"
)

// Document 持有一份图纸里本库认识的全部记录：
// TABLES 区段的表记录与 ENTITIES 区段的实体，各自按类型挂成链表。
type Document struct {
	File        string
	Version     core.Version
	Tables      map[string]*codec.List // 表名(UCS/VPORT) -> 记录链表
	Entities    map[string]*codec.List // 实体类型 -> 记录链表
	Comments    []string
	Diagnostics []codec.Diagnostic
}

// tableNames 是本库解析的表及其写出顺序
var tableNames = []string{entities.TypeVport, entities.TypeUcs}

func NewDocument() *Document {
	return &Document{
		Version:  core.R14,
		Tables:   make(map[string]*codec.List),
		Entities: make(map[string]*codec.List),
	}
}

// List 返回指定实体类型的链表，没有则为空链表
func (d *Document) List(typeName string) *codec.List {
	if list, ok := d.Entities[typeName]; ok {
		return list
	}
	if list, ok := d.Tables[typeName]; ok {
		return list
	}
	return &codec.List{}
}

// Append 按类型把实体挂到对应链表上，表记录进 Tables，其余进 Entities
func (d *Document) Append(entity *codec.Entity) error {
	group := d.Entities
	for _, name := range tableNames {
		if entity.Type() == name {
			group = d.Tables
		}
	}
	list, ok := group[entity.Type()]
	if !ok {
		list = &codec.List{}
		group[entity.Type()] = list
	}
	return list.Append(entity)
}

func (d *Document) parseHeader(scanner *core.Scanner) {
	for scanner.Next() {
		tag := scanner.LastTag
		if tag.Code == 0 && strings.ToUpper(tag.Value) == "ENDSEC" {
			break
		}
		if tag.Code == 9 && strings.ToUpper(tag.AsString()) == "$ACADVER" {
			if !scanner.Next() {
				break
			}
			if version, err := core.ParseVersion(scanner.LastTag.AsString()); err == nil {
				d.Version = version
			}
		}
	}
}

func (d *Document) parseTables(dec *codec.Decoder) error {
	scanner := dec.Scanner()
	for scanner.Next() {
		tag := scanner.LastTag
		if tag.Code == 0 && strings.ToUpper(tag.Value) == "ENDSEC" {
			break
		}
		if tag.Code == 0 && strings.ToUpper(tag.Value) == "TABLE" {
			if !scanner.Next() {
				break
			}
			tableName := strings.ToUpper(scanner.LastTag.AsString())
			for _, name := range tableNames {
				if tableName == name {
					if err := d.parseTable(dec, name); err != nil {
						return err
					}
				}
			}
		}
	}
	return scanner.Err()
}

func (d *Document) parseTable(dec *codec.Decoder, name string) error {
	scanner := dec.Scanner()
	for {
		tag := scanner.LastTag
		if tag.Code == 0 && strings.ToUpper(tag.Value) == "ENDTAB" {
			break
		}
		if tag.Code == 0 && strings.ToUpper(tag.Value) == name {
			sch, _ := schema.Get(name)
			line := scanner.Line()
			if err := d.decodeOne(dec, sch); err != nil {
				return err
			}
			if scanner.Line() == line {
				// 流在记录中途结束
				break
			}
			// Decode 已停在下一个 0 标签，直接进入下一次判断
			continue
		}
		if !scanner.Next() {
			return scanner.Err()
		}
	}
	return nil
}

func (d *Document) parseEntities(dec *codec.Decoder) error {
	scanner := dec.Scanner()
	for {
		tag := scanner.LastTag
		if tag.Code == 0 && strings.ToUpper(tag.Value) == "ENDSEC" {
			break
		}
		if tag.Code == 0 {
			name := strings.ToUpper(tag.Value)
			if sch, ok := schema.Get(name); ok {
				line := scanner.Line()
				if err := d.decodeOne(dec, sch); err != nil {
					return err
				}
				if scanner.Line() == line {
					break
				}
				continue
			}
			// 未注册的实体类型跳过整条记录，记诊断不中断
			d.Diagnostics = append(d.Diagnostics, codec.Diagnostic{
				Kind:   codec.DiagUnknownEntity,
				Entity: name,
				File:   d.File,
				Line:   scanner.Line(),
				Detail: "跳过未注册的实体类型",
			})
		}
		if !scanner.Next() {
			return scanner.Err()
		}
	}
	return nil
}

// decodeOne 解码一条记录；未过校验的记录只记诊断，整个文件继续
func (d *Document) decodeOne(dec *codec.Decoder, sch *schema.Schema) error {
	entity, err := dec.Decode(sch)
	if err != nil {
		var invalid *codec.ValidationError
		if errors.As(err, &invalid) {
			d.Diagnostics = append(d.Diagnostics, codec.Diagnostic{
				Kind:   codec.DiagRejectedRecord,
				Entity: sch.TypeName,
				File:   d.File,
				Line:   dec.Scanner().Line(),
				Detail: invalid.Error(),
			})
			return nil
		}
		return err
	}
	return d.Append(entity)
}

// Open 打开并解析一个 DXF 文件
func Open(filename string) (doc *Document, err error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "打开 %s 失败", filename)
	}

	defer func() {
		if e := file.Close(); e != nil && err == nil {
			err = e
		}
	}()

	doc, err = Load(file)
	if doc != nil {
		doc.File = filepath.Base(filename)
	}

	return
}

// Load 从字符流解析一份图纸。区段必须顺序处理：
// 后面的记录依赖文件头声明的版本，解码器在读完 HEADER 后才创建。
func Load(reader io.Reader) (*Document, error) {
	var (
		scanner  = core.NewScanner(reader)
		document = NewDocument()
	)

	cfg := codec.DefaultConfig()
	cfg.Comment = func(comment string) {
		document.Comments = append(document.Comments, comment)
	}

	for scanner.Next() {
		tag := scanner.LastTag
		if tag.Code == 999 {
			// 区段之间的注释也要透出
			cfg.Comment(tag.Value)
			continue
		}
		if tag.Code == 0 && strings.ToUpper(tag.Value) == "SECTION" {
			if !scanner.Next() {
				break
			}

			cfg.Version = document.Version
			dec := codec.NewDecoder(scanner, cfg)

			var err error
			switch strings.ToUpper(scanner.LastTag.AsString()) {
			case "HEADER":
				document.parseHeader(scanner)
			case "TABLES":
				err = document.parseTables(dec)
			case "ENTITIES":
				err = document.parseEntities(dec)
			}
			if err != nil {
				return document, err
			}

			document.Diagnostics = append(document.Diagnostics, dec.Diagnostics()...)
		}
	}

	return document, scanner.Err()
}

// Save 按目标版本把文档重新序列化到字符流。
// strict 为真时版本不够的实体让整个写出失败，否则只记诊断继续。
func (d *Document) Save(w io.Writer, target core.Version, strict bool) error {
	var (
		writer = core.NewWriter(w)
		enc    = codec.NewEncoder(target, strict)
	)

	// HEADER
	head := []core.Tag{
		core.StringTag(0, "SECTION"),
		core.StringTag(2, "HEADER"),
		core.StringTag(9, "$ACADVER"),
		core.StringTag(1, target.String()),
		core.StringTag(0, "ENDSEC"),
	}
	if err := writer.WriteAll(head); err != nil {
		return err
	}

	// TABLES
	if err := writer.WriteAll([]core.Tag{
		core.StringTag(0, "SECTION"),
		core.StringTag(2, "TABLES"),
	}); err != nil {
		return err
	}
	for _, name := range tableNames {
		list, ok := d.Tables[name]
		if !ok || list.Len() == 0 {
			continue
		}
		if err := writer.WriteAll([]core.Tag{
			core.StringTag(0, "TABLE"),
			core.StringTag(2, name),
			core.IntTag(70, int64(list.Len())),
		}); err != nil {
			return err
		}
		if err := d.saveList(writer, enc, list); err != nil {
			return err
		}
		if err := writer.Write(core.StringTag(0, "ENDTAB")); err != nil {
			return err
		}
	}
	if err := writer.Write(core.StringTag(0, "ENDSEC")); err != nil {
		return err
	}

	// ENTITIES
	if err := writer.WriteAll([]core.Tag{
		core.StringTag(0, "SECTION"),
		core.StringTag(2, "ENTITIES"),
	}); err != nil {
		return err
	}
	for _, typeName := range entityOrder(d.Entities) {
		if err := d.saveList(writer, enc, d.Entities[typeName]); err != nil {
			return err
		}
	}
	if err := writer.Write(core.StringTag(0, "ENDSEC")); err != nil {
		return err
	}

	if err := writer.Write(core.StringTag(0, "EOF")); err != nil {
		return err
	}

	d.Diagnostics = append(d.Diagnostics, enc.Diagnostics()...)

	return writer.Flush()
}

func (d *Document) saveList(writer *core.Writer, enc *codec.Encoder, list *codec.List) error {
	for entity := list.Head(); entity != nil; entity = entity.Next() {
		tags, err := enc.Encode(entity)
		if err != nil {
			return err
		}
		if err = writer.WriteAll(tags); err != nil {
			return err
		}
	}
	return nil
}

// entityOrder 固定写出顺序，保证同一份文档两次写出字节一致
func entityOrder(lists map[string]*codec.List) []string {
	names := make([]string, 0, len(lists))
	for name := range lists {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
