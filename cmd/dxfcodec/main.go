package main

import (
	"fmt"
	"os"

	"github.com/ncruces/zenity"
	"github.com/spf13/cobra"
	"github.com/zooyer/golib/xos"
)

func main() {
	root := &cobra.Command{
		Use:           "dxfcodec",
		Short:         "DXF 标签流编解码工具",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newInfoCommand(),
		newConvertCommand(),
	)

	// 双击或无参数启动：弹文件选择框跑 info，退出前暂停让人看到输出
	if len(os.Args) < 2 {
		defer xos.PauseExit()

		filename, err := zenity.SelectFile(
			zenity.Title("选择 DXF 文件"),
			zenity.FileFilters{
				{Name: "DXF 图纸", Patterns: []string{"*.dxf"}, CaseFold: true},
			},
		)
		if err != nil {
			fmt.Println("未选择文件:", err)
			return
		}

		root.SetArgs([]string{"info", filename})
		if err = root.Execute(); err != nil {
			fmt.Println(err)
		}
		return
	}

	if err := root.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
