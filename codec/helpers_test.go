package codec

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zooyer/dxfcodec/core"
	"github.com/zooyer/dxfcodec/schema"
)

// WIDGET 是引擎测试专用的字段表，覆盖所有槽位类型与守卫形态，
// 不和 entities 包注册的真实类型搅在一起。
var widgetSchema = &schema.Schema{
	TypeName:   "WIDGET",
	ZombieName: "OLDWIDGET",
	ZombieMax:  core.R13,
	MinVersion: core.R12,
	Slots: []*schema.FieldSlot{
		{Name: "handle", Code: 5, Kind: schema.KindHandle},
		{Name: "layer", Code: 8, Kind: schema.KindString, DefaultOnEmpty: true},
		{Name: "linetype", Code: 6, Kind: schema.KindString, Default: schema.StringValue("BYLAYER"), DefaultOnEmpty: true,
			WriteGuard: func(f schema.Fields) bool { return f.Field("linetype").Str() != "BYLAYER" }},
		{Name: "count", Code: 70, Kind: schema.KindInt, Default: schema.IntValue(7)},
		{Name: "height", Code: 40, Kind: schema.KindFloat, Default: schema.FloatValue(1.5)},
		{Name: "modern", Code: 90, Kind: schema.KindInt, MinVersion: core.R2000},
		{Name: "owner_a", Code: 330, Ordinal: 1, Kind: schema.KindHandle,
			WriteGuard: func(f schema.Fields) bool { return !f.Field("owner_a").IsEmpty() }},
		{Name: "owner_b", Code: 330, Ordinal: 2, Kind: schema.KindHandle,
			WriteGuard: func(f schema.Fields) bool { return !f.Field("owner_b").IsEmpty() }},
		{Name: "chunks", Code: 310, Kind: schema.KindChunk},
		{Name: "chain", Code: 330, Kind: schema.KindHandleChain},
		{Name: "chain_350", Code: 350, Kind: schema.KindHandleChain},
		{Name: "chain_360", Code: 360, Kind: schema.KindHandleChain},
	},
}

func init() {
	schema.Register(widgetSchema)
}

// decodeText 按实体分发的调用约定解码一段标签流
func decodeText(t *testing.T, cfg Config, text string) (*Entity, *Decoder, error) {
	t.Helper()

	scanner := core.NewScanner(strings.NewReader(text))
	require.True(t, scanner.Next(), "至少要有一组标签")

	dec := NewDecoder(scanner, cfg)
	entity, err := dec.Decode(widgetSchema)

	return entity, dec, err
}

func mustDecode(t *testing.T, cfg Config, text string) (*Entity, *Decoder) {
	t.Helper()

	entity, dec, err := decodeText(t, cfg, text)
	require.NoError(t, err)
	require.NotNil(t, entity)

	return entity, dec
}
