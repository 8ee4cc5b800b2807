package codec

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zooyer/dxfcodec/core"
	"github.com/zooyer/dxfcodec/schema"
)

// GADGET 用来验证硬性前置条件与回填，和 WIDGET 互不干扰
var gadgetSchema = &schema.Schema{
	TypeName: "GADGET",
	Required: []string{"style"},
	Slots: []*schema.FieldSlot{
		{Name: "layer", Code: 8, Kind: schema.KindString, DefaultOnEmpty: true},
		{Name: "style", Code: 3, Kind: schema.KindString},
	},
}

func init() {
	schema.Register(gadgetSchema)
}

func decodeGadget(t *testing.T, cfg Config, text string) (*Entity, error) {
	t.Helper()

	scanner := core.NewScanner(strings.NewReader(text))
	require.True(t, scanner.Next(), "至少要有一组标签")

	return NewDecoder(scanner, cfg).Decode(gadgetSchema)
}

func TestDecoder_Scalars(t *testing.T) {
	entity, dec := mustDecode(t, DefaultConfig(),
		"0\nWIDGET\n5\n2A\n8\nWALL\n70\n42\n40\n3.25\n0\nENDSEC\n")

	assert.Empty(t, dec.Diagnostics())
	assert.Equal(t, int64(0x2A), entity.Handle)
	assert.Equal(t, "WALL", entity.Str("layer"))
	assert.Equal(t, int64(42), entity.Int("count"))
	assert.Equal(t, 3.25, entity.Float("height"))
	// 没出现的槽位保持默认值
	assert.Equal(t, "BYLAYER", entity.Str("linetype"))
}

func TestDecoder_MalformedTag(t *testing.T) {
	// 值解析失败只记诊断，槽位保留默认值，解码继续
	entity, dec := mustDecode(t, DefaultConfig(),
		"0\nWIDGET\n70\nabc\n40\n3.25\n0\nENDSEC\n")

	require.Len(t, dec.Diagnostics(), 1)
	assert.Equal(t, DiagMalformedTag, dec.Diagnostics()[0].Kind)
	assert.Equal(t, 70, dec.Diagnostics()[0].Code)
	assert.Equal(t, int64(7), entity.Int("count"), "失败的槽位保留默认值")
	assert.Equal(t, 3.25, entity.Float("height"), "后面的标签照常解码")
}

func TestDecoder_UnrecognizedTag(t *testing.T) {
	entity, dec := mustDecode(t, DefaultConfig(),
		"0\nWIDGET\n62\n5\n70\n9\n0\nENDSEC\n")

	require.Len(t, dec.Diagnostics(), 1)
	assert.Equal(t, DiagUnrecognizedTag, dec.Diagnostics()[0].Kind)
	assert.Equal(t, 62, dec.Diagnostics()[0].Code)
	assert.Equal(t, int64(9), entity.Int("count"))
}

func TestDecoder_BackfillIdempotent(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DefaultLayer = "0"

	// 图层缺失，回填为 "0"
	entity, _ := mustDecode(t, cfg, "0\nWIDGET\n70\n1\n0\nENDSEC\n")
	assert.Equal(t, "0", entity.Str("layer"))

	// 已归一化的流再解码一遍，结果不变
	entity, _ = mustDecode(t, cfg, "0\nWIDGET\n8\n0\n70\n1\n0\nENDSEC\n")
	assert.Equal(t, "0", entity.Str("layer"))
}

func TestDecoder_RequiredField(t *testing.T) {
	// 必填槽位缺失时整条记录被拒绝，而不是带着 "0" 之类的假值通过
	_, err := decodeGadget(t, DefaultConfig(), "0\nGADGET\n8\nWALL\n0\nEOF\n")

	var invalid *ValidationError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "GADGET", invalid.Type)
	assert.Equal(t, "style", invalid.Field)

	// 新建记录的字符串槽位初始必须是真正的空串
	entity := NewEntity(gadgetSchema)
	assert.True(t, entity.Field("style").IsEmpty())
	assert.Equal(t, "", entity.Str("style"))
}

func TestDecoder_BackfillCustomLayer(t *testing.T) {
	// 回填用的是配置里的默认图层，不是恰好同形的 "0"
	cfg := DefaultConfig()
	cfg.DefaultLayer = "FLOOR"

	entity, err := decodeGadget(t, cfg, "0\nGADGET\n3\nISO-25\n0\nEOF\n")
	require.NoError(t, err)
	assert.Equal(t, "FLOOR", entity.Str("layer"))
}

func TestDecoder_Comment(t *testing.T) {
	var comments []string
	cfg := DefaultConfig()
	cfg.Comment = func(s string) { comments = append(comments, s) }

	mustDecode(t, cfg, "0\nWIDGET\n999\n这是一条注释\n70\n1\n0\nENDSEC\n")
	assert.Equal(t, []string{"这是一条注释"}, comments)

	// 没有回调时注释进诊断，不会被悄悄丢掉
	_, dec := mustDecode(t, DefaultConfig(), "0\nWIDGET\n999\nhello\n0\nENDSEC\n")
	require.Len(t, dec.Diagnostics(), 1)
	assert.Equal(t, DiagComment, dec.Diagnostics()[0].Kind)
}

func TestDecoder_VersionMismatch(t *testing.T) {
	// 声明 R14 的文件里出现 R2000 起才有的组码：照常解码，记一条版本诊断
	cfg := DefaultConfig()
	cfg.Version = core.R14

	entity, dec := mustDecode(t, cfg, "0\nWIDGET\n90\n123\n0\nENDSEC\n")

	require.Len(t, dec.Diagnostics(), 1)
	assert.Equal(t, DiagVersionMismatch, dec.Diagnostics()[0].Kind)
	assert.Equal(t, int64(123), entity.Int("modern"), "版本不符的值也要收下，很多文件的版本头是骗人的")
}

func TestDecoder_ChunkChain(t *testing.T) {
	entity, dec := mustDecode(t, DefaultConfig(),
		"0\nWIDGET\n310\nAABB\n310\nCCDD\n310\nEEFF\n0\nENDSEC\n")

	assert.Empty(t, dec.Diagnostics())
	require.Len(t, entity.Chunks, 3)
	assert.Equal(t, "AABB", entity.Chunks[0].Data)
	assert.Equal(t, "CCDD", entity.Chunks[1].Data)
	assert.Equal(t, "EEFF", entity.Chunks[2].Data)
}

func TestDecoder_ChunkOverlong(t *testing.T) {
	// 超过 256 的二进制块被截断并记诊断，扫描器不抢先裁剪
	long := strings.Repeat("AB", 150)
	entity, dec := mustDecode(t, DefaultConfig(),
		"0\nWIDGET\n310\n"+long+"\n0\nENDSEC\n")

	require.Len(t, dec.Diagnostics(), 1)
	assert.Equal(t, DiagMalformedTag, dec.Diagnostics()[0].Kind)
	require.Len(t, entity.Chunks, 1)
	assert.Len(t, entity.Chunks[0].Data, core.MaxChunkLength)
}

func TestDecoder_OrdinalDisambiguation(t *testing.T) {
	// 第 1 个 330 是字典属主，第 2 个是对象属主，
	// 第 3 个起进对象 ID 链；350 任何一次出现都进链
	entity, _ := mustDecode(t, DefaultConfig(),
		"0\nWIDGET\n330\nA1\n330\nB2\n330\nC3\n350\nD4\n330\nE5\n0\nENDSEC\n")

	assert.Equal(t, "A1", entity.Str("owner_a"))
	assert.Equal(t, "B2", entity.Str("owner_b"))

	require.Len(t, entity.ObjectIDs, 3)
	assert.Equal(t, ObjectID{Code: 330, Handle: "C3"}, entity.ObjectIDs[0])
	assert.Equal(t, ObjectID{Code: 350, Handle: "D4"}, entity.ObjectIDs[1])
	assert.Equal(t, ObjectID{Code: 330, Handle: "E5"}, entity.ObjectIDs[2])
}

func TestDecoder_StopsAtTerminator(t *testing.T) {
	_, dec := mustDecode(t, DefaultConfig(), "0\nWIDGET\n70\n1\n0\nWIDGET\n70\n2\n0\nEOF\n")

	// 终止的 0 标签留给外层分发器
	assert.Equal(t, 0, dec.Scanner().LastTag.Code)
	assert.Equal(t, "WIDGET", dec.Scanner().LastTag.Value)

	next, err := dec.Decode(widgetSchema)
	require.NoError(t, err)
	assert.Equal(t, int64(2), next.Int("count"))
}
