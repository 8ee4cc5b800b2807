package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	dxf "github.com/zooyer/dxfcodec"
	"github.com/zooyer/dxfcodec/core"
)

type convertCommand struct {
	output  string
	version string
	strict  bool
}

func newConvertCommand() *cobra.Command {
	c := &convertCommand{
		version: "R2000",
	}

	cmd := &cobra.Command{
		Use:   "convert <文件.dxf>",
		Short: "按目标版本重新写出图纸",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(args[0])
		},
	}

	cmd.Flags().StringVar(&c.output, "output", "", "输出文件")
	cmd.Flags().StringVar(&c.version, "version", c.version, "目标版本(R10..R2018 或 AC1015 这类头变量值)")
	cmd.Flags().BoolVar(&c.strict, "strict", false, "版本不够的实体让写出失败而不是告警")

	cmd.MarkFlagRequired("output")

	return cmd
}

var targetNames = map[string]core.Version{
	"R10":   core.R10,
	"R11":   core.R11,
	"R12":   core.R12,
	"R13":   core.R13,
	"R14":   core.R14,
	"R2000": core.R2000,
	"R2004": core.R2004,
	"R2007": core.R2007,
	"R2010": core.R2010,
	"R2013": core.R2013,
	"R2018": core.R2018,
}

func parseTarget(name string) (core.Version, error) {
	if v, ok := targetNames[strings.ToUpper(name)]; ok {
		return v, nil
	}
	if v, err := core.ParseVersion(strings.ToUpper(name)); err == nil {
		return v, nil
	}
	return 0, errors.Newf("无法识别的目标版本: %q", name)
}

func (c *convertCommand) run(filename string) error {
	target, err := parseTarget(c.version)
	if err != nil {
		return err
	}

	doc, err := dxf.Open(filename)
	if err != nil {
		return err
	}

	file, err := os.Create(c.output)
	if err != nil {
		return errors.Wrapf(err, "创建 %s 失败", c.output)
	}
	defer file.Close()

	if err = doc.Save(file, target, c.strict); err != nil {
		return err
	}

	for _, diag := range doc.Diagnostics {
		fmt.Println(diag.String())
	}
	fmt.Printf("已按 %s 写出到 %s\n", target, c.output)

	return nil
}
