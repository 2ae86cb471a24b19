// ip4ctl 是 ip4kit 库的命令行消费方，用于快速查询 IPv4
// 地址信息和做子网规划计算。
//
// 用法:
//
//	ip4ctl [全局选项] <命令> [命令参数]
//
// 全局选项:
//
//	--csv   以 CSV 格式输出（供报表管道消费）
//
// 命令:
//
//	info <addr>                     查看地址的八位段、十六进制、二进制与分类
//	range <cidr>                    查看块的网络/广播地址与可用主机范围
//	subnet split <cidr> <newbits>   把块拆分为指定前缀长度的子网
//	subnet summarize <cidr>...      计算覆盖全部输入块的最小单一块
//	help                            显示帮助信息
//
// 退出码:
//
//	0: 命令执行成功
//	1: 计算失败（非法地址、越界算术等）
//	2: 参数错误（缺少参数、未知命令等）
//
// 示例:
//
//	ip4ctl info 192.168.1.1
//	ip4ctl range 10.0.0.0/8
//	ip4ctl subnet split 192.168.1.0/24 26
//	ip4ctl --csv subnet split 192.168.1.0/24 26
//	ip4ctl subnet summarize 192.168.0.0/24 192.168.1.0/24
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

// 版本信息（可通过 -ldflags 注入）。
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
)

func main() {
	os.Exit(run())
}

// createApp 创建 CLI 应用。
func createApp() *cli.Command {
	return &cli.Command{
		Name:    "ip4ctl",
		Usage:   "IPv4 地址与子网规划命令行工具",
		Version: fmt.Sprintf("%s (commit: %s)", Version, GitCommit),
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "csv",
				Usage: "以 CSV 格式输出",
			},
		},
		Commands:       createCommands(),
		DefaultCommand: "help",
		// 设计决策: 禁止 urfave/cli 直接调用 os.Exit，
		// 由 run() 统一处理退出码映射，确保与文档退出码契约一致。
		ExitErrHandler: func(_ context.Context, _ *cli.Command, err error) {
			if _, ok := err.(cli.ExitCoder); ok {
				fmt.Fprintln(os.Stderr, err)
			}
		},
	}
}

func run() int {
	app := createApp()
	if err := app.Run(context.Background(), os.Args); err != nil {
		var usageErr *usageError
		if errors.As(err, &usageErr) {
			fmt.Fprintf(os.Stderr, "参数错误: %v\n", usageErr)
			return 2
		}
		if _, ok := err.(cli.ExitCoder); ok {
			// ExitErrHandler 已输出错误详情，此处仅设置退出码
			return 2
		}
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		return 1
	}
	return 0
}
