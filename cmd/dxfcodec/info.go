package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/zooyer/golib/xmath"
	"github.com/zooyer/golib/xos"

	dxf "github.com/zooyer/dxfcodec"
	"github.com/zooyer/dxfcodec/codec"
	"github.com/zooyer/dxfcodec/utils"
)

type infoCommand struct {
	report string
}

func newInfoCommand() *cobra.Command {
	c := &infoCommand{}

	cmd := &cobra.Command{
		Use:   "info <文件.dxf>",
		Short: "解析图纸并输出版本、记录统计、注释与诊断信息",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(args[0])
		},
	}

	cmd.Flags().StringVar(&c.report, "report", "", "统计结果追加写入的文件")

	return cmd
}

func (c *infoCommand) run(filename string) error {
	doc, err := dxf.Open(filename)
	if err != nil {
		return err
	}

	var lines []string
	lines = append(lines, fmt.Sprintf("文件: %s", doc.File))
	lines = append(lines, fmt.Sprintf("版本: %s", doc.Version))

	// 记录统计，固定顺序保证两次输出一致
	var (
		names []string
		all   []*codec.Entity
	)
	for name := range doc.Tables {
		names = append(names, name)
	}
	for name := range doc.Entities {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		list := doc.List(name)
		lines = append(lines, fmt.Sprintf("%s: %d 条", name, list.Len()))
		all = append(all, list.All()...)
	}

	// 注释原样回显，与参考行为一致
	for _, comment := range doc.Comments {
		lines = append(lines, "注释: "+comment)
	}

	if box, ok := utils.Extents(all); ok {
		if xmath.Equal(box.Min.X, box.Max.X, 0) && xmath.Equal(box.Min.Y, box.Max.Y, 0) {
			lines = append(lines, fmt.Sprintf("范围: 单点 (%.2f, %.2f)", box.Min.X, box.Min.Y))
		} else {
			lines = append(lines, fmt.Sprintf("范围: (%.2f, %.2f) - (%.2f, %.2f)",
				box.Min.X, box.Min.Y, box.Max.X, box.Max.Y))
		}
	}

	for _, diag := range doc.Diagnostics {
		lines = append(lines, diag.String())
	}

	stat := strings.Join(lines, "\n") + "\n"
	fmt.Print(stat)

	if c.report != "" {
		if err = xos.AppendFile(c.report, []byte(stat), 0644); err != nil {
			return err
		}
	}

	return nil
}
