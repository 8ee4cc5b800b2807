package dxf

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zooyer/dxfcodec/codec"
	"github.com/zooyer/dxfcodec/core"
	"github.com/zooyer/dxfcodec/entities"
)

const sampleDXF = `999
由测试生成
0
SECTION
2
HEADER
9
$ACADVER
1
AC1021
0
ENDSEC
0
SECTION
2
TABLES
0
TABLE
2
VPORT
70
1
0
VPORT
2
*ACTIVE
11
297.0
21
210.0
40
210.0
0
ENDTAB
0
TABLE
2
UCS
70
1
0
UCS
2
立面
10
5.0
20
6.0
30
0.0
0
ENDTAB
0
ENDSEC
0
SECTION
2
ENTITIES
0
LINE
8
0
10
0.0
20
0.0
11
1.0
21
1.0
0
LIGHT
5
2A
1
主灯
10
1.0
20
2.0
30
3.0
0
TOLERANCE
3
ISO-25
10
3.0
20
4.0
30
0.0
0
TOLERANCE
8
BAD
10
0.0
20
0.0
30
0.0
0
ENDSEC
0
EOF
`

func TestLoad(t *testing.T) {
	doc, err := Load(strings.NewReader(sampleDXF))
	require.NoError(t, err)

	assert.Equal(t, core.R2007, doc.Version)
	assert.Equal(t, []string{"由测试生成"}, doc.Comments)

	// LINE 不在本库的类型集合里，跳过并记一条诊断
	assert.Equal(t, 1, doc.List(entities.TypeVport).Len())
	assert.Equal(t, 1, doc.List(entities.TypeUcs).Len())
	assert.Equal(t, 1, doc.List(entities.TypeLight).Len())
	assert.Equal(t, 1, doc.List(entities.TypeTolerance).Len())

	light, ok := entities.AsLight(doc.List(entities.TypeLight).Head())
	require.True(t, ok)
	assert.Equal(t, "主灯", light.Name())
	assert.Equal(t, core.Point{X: 1, Y: 2, Z: 3}, light.Position())

	// 缺标注样式的 TOLERANCE 整条被丢弃，只留一条诊断；
	// 未注册的 LINE 也要有迹可查
	var rejected, unknown int
	for _, diag := range doc.Diagnostics {
		switch diag.Kind {
		case codec.DiagRejectedRecord:
			rejected++
			assert.Equal(t, entities.TypeTolerance, diag.Entity)
		case codec.DiagUnknownEntity:
			unknown++
			assert.Equal(t, "LINE", diag.Entity)
		}
	}
	assert.Equal(t, 1, rejected)
	assert.Equal(t, 1, unknown)
}

func TestSaveReload(t *testing.T) {
	doc, err := Load(strings.NewReader(sampleDXF))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, doc.Save(&buf, core.R2007, true))
	assert.Contains(t, buf.String(), "$ACADVER")
	assert.Contains(t, buf.String(), "AC1021")

	reloaded, err := Load(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)

	assert.Equal(t, core.R2007, reloaded.Version)
	assert.Equal(t, 1, reloaded.List(entities.TypeVport).Len())
	assert.Equal(t, 1, reloaded.List(entities.TypeUcs).Len())
	assert.Equal(t, 1, reloaded.List(entities.TypeLight).Len())
	assert.Equal(t, 1, reloaded.List(entities.TypeTolerance).Len())

	light, ok := entities.AsLight(reloaded.List(entities.TypeLight).Head())
	require.True(t, ok)
	assert.Equal(t, "主灯", light.Name())
	assert.Equal(t, core.Point{X: 1, Y: 2, Z: 3}, light.Position())
	assert.Equal(t, int64(0x2A), light.Handle)

	tolerance, ok := entities.AsTolerance(reloaded.List(entities.TypeTolerance).Head())
	require.True(t, ok)
	assert.Equal(t, "ISO-25", tolerance.DimStyle())

	// 再写一遍应当逐字节稳定
	var again bytes.Buffer
	require.NoError(t, reloaded.Save(&again, core.R2007, true))
	assert.Equal(t, buf.String(), again.String())
}

func TestSaveStrictVersion(t *testing.T) {
	doc, err := Load(strings.NewReader(sampleDXF))
	require.NoError(t, err)

	// LIGHT 要 R2007，严格模式下按 R14 写出整体失败
	var buf bytes.Buffer
	err = doc.Save(&buf, core.R14, true)
	var ve *codec.VersionError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, entities.TypeLight, ve.Type)

	// 宽松模式照常写出，记版本诊断
	buf.Reset()
	require.NoError(t, doc.Save(&buf, core.R14, false))
	var mismatch int
	for _, diag := range doc.Diagnostics {
		if diag.Kind == codec.DiagVersionMismatch {
			mismatch++
		}
	}
	assert.NotZero(t, mismatch)
	assert.Contains(t, buf.String(), "LIGHT")
}
