package entities

import (
	"github.com/zooyer/dxfcodec/codec"
	"github.com/zooyer/dxfcodec/core"
	"github.com/zooyer/dxfcodec/schema"
)

// TypeProxy 的线名是版本相关的：R13 及以下写作 ACAD_ZOMBIE_ENTITY，
// R14 起写作 ACAD_PROXY_ENTITY，内存结构完全相同。
const (
	TypeProxy  = "ACAD_PROXY_ENTITY"
	TypeZombie = "ACAD_ZOMBIE_ENTITY"
)

// 组码 330 按出现位置复用：第 1 次是字典属主，第 2 次是对象属主，
// 第 3 次起进对象 ID 链；340/350/360 任何一次出现都进链。
// 序数规则由字段表声明，解码器里没有共享计数器。
func init() {
	schema.Register(&schema.Schema{
		TypeName:   TypeProxy,
		ZombieName: TypeZombie,
		ZombieMax:  core.R13,
		MinVersion: core.R13,
		Slots: slots(
			baseSlots(),
			[]*schema.FieldSlot{
				{Name: "subclass_proxy", Code: 100, Ordinal: 2, Kind: schema.KindString, Default: schema.StringValue("AcDbProxyEntity"), MinVersion: core.R13},
				{Name: "proxy_class", Code: 90, Kind: schema.KindInt, Default: schema.IntValue(498), MinVersion: core.R13},
				{Name: "application_class", Code: 91, Kind: schema.KindInt, Default: schema.IntValue(500), MinVersion: core.R13},
				{Name: "graphics_size", Code: 92, Kind: schema.KindInt, MinVersion: core.R13, WriteGuard: intNot("graphics_size", 0)},
				{Name: "graphics_data", Code: 310, Kind: schema.KindChunk, MinVersion: core.R13},
				{Name: "entity_size", Code: 93, Kind: schema.KindInt, MinVersion: core.R13, WriteGuard: intNot("entity_size", 0)},
				{Name: "dictionary_owner_soft", Code: 330, Ordinal: 1, Kind: schema.KindHandle, MinVersion: core.R14, WriteGuard: notEmpty("dictionary_owner_soft")},
				{Name: "object_owner_soft", Code: 330, Ordinal: 2, Kind: schema.KindHandle, MinVersion: core.R2000, WriteGuard: notEmpty("object_owner_soft")},
				{Name: "object_ids", Code: 330, Kind: schema.KindHandleChain, MinVersion: core.R13},
				{Name: "object_ids_hard_owner", Code: 340, Kind: schema.KindHandleChain, MinVersion: core.R13},
				{Name: "object_ids_soft_pointer", Code: 350, Kind: schema.KindHandleChain, MinVersion: core.R13},
				{Name: "object_ids_hard_pointer", Code: 360, Kind: schema.KindHandleChain, MinVersion: core.R13},
				{Name: "drawing_format", Code: 95, Kind: schema.KindInt, MinVersion: core.R2000, WriteGuard: intNot("drawing_format", 0)},
				{Name: "custom_data_format", Code: 70, Kind: schema.KindInt, MinVersion: core.R2000, WriteGuard: intNot("custom_data_format", 0)},
			},
		),
	})
}

// Proxy 是 ACAD_PROXY_ENTITY 记录的类型化视图
type Proxy struct {
	*codec.Entity
}

// AsProxy 把通用记录转成 Proxy 视图
func AsProxy(e *codec.Entity) (*Proxy, bool) {
	if e == nil || e.Type() != TypeProxy {
		return nil, false
	}
	return &Proxy{Entity: e}, true
}

func (p *Proxy) DictionaryOwner() string {
	return p.Str("dictionary_owner_soft")
}

func (p *Proxy) ObjectOwner() string {
	return p.Str("object_owner_soft")
}

// GraphicsData 返回文件顺序的二进制块序列
func (p *Proxy) GraphicsData() []codec.BinaryChunk {
	return p.Chunks
}

// ObjectIDChain 返回对象 ID 链，节点上保留着实际出现的组码
func (p *Proxy) ObjectIDChain() []codec.ObjectID {
	return p.ObjectIDs
}
