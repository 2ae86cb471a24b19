package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/ip4kit/pkg/util/xip4"
)

// usageError 表示调用方参数错误（缺少参数、参数格式非法等），
// 与计算失败区分开，由 run() 映射为退出码 2。
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

// 创建所有子命令。
func createCommands() []*cli.Command {
	return []*cli.Command{
		createInfoCommand(),
		createRangeCommand(),
		createSubnetCommand(),
	}
}

// createInfoCommand 创建 info 子命令。
func createInfoCommand() *cli.Command {
	return &cli.Command{
		Name:      "info",
		Aliases:   []string{"i"},
		Usage:     "查看地址的八位段、十六进制、二进制与分类",
		ArgsUsage: "<addr>",
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return &usageError{msg: "info 命令需要恰好一个地址参数"}
			}
			return cmdInfo(os.Stdout, cmd.Args().First(), cmd.Bool("csv"))
		},
	}
}

// createRangeCommand 创建 range 子命令。
func createRangeCommand() *cli.Command {
	return &cli.Command{
		Name:      "range",
		Aliases:   []string{"r"},
		Usage:     "查看块的网络/广播地址与可用主机范围",
		ArgsUsage: "<cidr>",
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return &usageError{msg: "range 命令需要恰好一个 CIDR 参数"}
			}
			return cmdRange(os.Stdout, cmd.Args().First(), cmd.Bool("csv"))
		},
	}
}

// createSubnetCommand 创建 subnet 子命令组。
func createSubnetCommand() *cli.Command {
	return &cli.Command{
		Name:    "subnet",
		Aliases: []string{"s"},
		Usage:   "子网规划计算",
		Commands: []*cli.Command{
			{
				Name:      "split",
				Usage:     "把块拆分为指定前缀长度的子网",
				ArgsUsage: "<cidr> <newbits>",
				Action: func(_ context.Context, cmd *cli.Command) error {
					if cmd.Args().Len() != 2 {
						return &usageError{msg: "split 命令需要 <cidr> 和 <newbits> 两个参数"}
					}
					newBits, err := strconv.Atoi(cmd.Args().Get(1))
					if err != nil {
						return &usageError{msg: fmt.Sprintf("newbits 必须是整数: %q", cmd.Args().Get(1))}
					}
					return cmdSplit(os.Stdout, cmd.Args().First(), newBits, cmd.Bool("csv"))
				},
			},
			{
				Name:      "summarize",
				Usage:     "计算覆盖全部输入块的最小单一块",
				ArgsUsage: "<cidr> <cidr>...",
				Action: func(_ context.Context, cmd *cli.Command) error {
					if cmd.Args().Len() < 2 {
						return &usageError{msg: "summarize 命令至少需要两个 CIDR 参数"}
					}
					return cmdSummarize(os.Stdout, cmd.Args().Slice(), cmd.Bool("csv"))
				},
			},
		},
	}
}

// cmdInfo 输出单个地址的完整画像。
func cmdInfo(w io.Writer, arg string, asCSV bool) error {
	ip, err := xip4.ParseAddr(arg)
	if err != nil {
		return fmt.Errorf("解析地址失败: %w", err)
	}

	c := xip4.ClassifyAll(ip)
	kind := xip4.MulticastType(ip)

	if asCSV {
		cw := csv.NewWriter(w)
		records := [][]string{
			{"address", "hex", "binary", "category", "multicast_kind", "global_unicast"},
			{
				ip.String(),
				fmt.Sprintf("0x%08X", ip.Uint32()),
				ip.Binary(),
				c.Category.String(),
				kind.String(),
				strconv.FormatBool(xip4.IsGlobalUnicast(ip)),
			},
		}
		if err := cw.WriteAll(records); err != nil {
			return fmt.Errorf("写入 CSV 失败: %w", err)
		}
		return nil
	}

	fmt.Fprintf(w, "地址:     %s\n", ip)
	fmt.Fprintf(w, "八位段:   %v\n", ip.Octets())
	fmt.Fprintf(w, "全长格式: %s\n", ip.FullString())
	fmt.Fprintf(w, "十六进制: 0x%08X\n", ip.Uint32())
	fmt.Fprintf(w, "二进制:   %s\n", ip.Binary())
	fmt.Fprintf(w, "分类:     %s\n", c.Category)
	if kind != xip4.NotMulticast {
		fmt.Fprintf(w, "多播类型: %s\n", kind)
	}
	fmt.Fprintf(w, "全局单播: %v\n", xip4.IsGlobalUnicast(ip))
	return nil
}

// cmdRange 输出块的边界地址与容量。
func cmdRange(w io.Writer, arg string, asCSV bool) error {
	p, err := xip4.ParsePrefix(arg)
	if err != nil {
		return fmt.Errorf("解析 CIDR 失败: %w", err)
	}

	if asCSV {
		cw := csv.NewWriter(w)
		records := [][]string{
			{"cidr", "network", "broadcast", "first_host", "last_host", "usable_hosts", "total_addrs"},
			{
				p.String(),
				p.Network().String(),
				p.Broadcast().String(),
				p.FirstHost().String(),
				p.LastHost().String(),
				strconv.FormatUint(p.HostCount(), 10),
				strconv.FormatUint(p.AddrCount(), 10),
			},
		}
		if err := cw.WriteAll(records); err != nil {
			return fmt.Errorf("写入 CSV 失败: %w", err)
		}
		return nil
	}

	mask, _ := xip4.MaskFromPrefix(p.Bits())
	fmt.Fprintf(w, "CIDR:     %s\n", p)
	fmt.Fprintf(w, "掩码:     %s\n", xip4.FormatMask(mask))
	fmt.Fprintf(w, "网络地址: %s\n", p.Network())
	fmt.Fprintf(w, "广播地址: %s\n", p.Broadcast())
	fmt.Fprintf(w, "首主机:   %s\n", p.FirstHost())
	fmt.Fprintf(w, "末主机:   %s\n", p.LastHost())
	fmt.Fprintf(w, "可用主机: %d\n", p.HostCount())
	fmt.Fprintf(w, "总地址数: %d\n", p.AddrCount())
	return nil
}

// cmdSplit 输出块拆分结果。
func cmdSplit(w io.Writer, arg string, newBits int, asCSV bool) error {
	p, err := xip4.ParsePrefix(arg)
	if err != nil {
		return fmt.Errorf("解析 CIDR 失败: %w", err)
	}

	subnets, err := p.Split(newBits)
	if err != nil {
		return fmt.Errorf("拆分失败: %w", err)
	}

	if asCSV {
		cw := csv.NewWriter(w)
		if err := cw.Write([]string{"cidr", "network", "broadcast", "usable_hosts"}); err != nil {
			return fmt.Errorf("写入 CSV 失败: %w", err)
		}
		for _, s := range subnets {
			record := []string{
				s.String(),
				s.Network().String(),
				s.Broadcast().String(),
				strconv.FormatUint(s.HostCount(), 10),
			}
			if err := cw.Write(record); err != nil {
				return fmt.Errorf("写入 CSV 失败: %w", err)
			}
		}
		cw.Flush()
		return cw.Error()
	}

	for _, s := range subnets {
		fmt.Fprintln(w, s)
	}
	return nil
}

// cmdSummarize 输出覆盖全部输入块的最小单一块。
func cmdSummarize(w io.Writer, args []string, asCSV bool) error {
	prefixes := make([]xip4.Prefix, 0, len(args))
	for _, arg := range args {
		p, err := xip4.ParsePrefix(arg)
		if err != nil {
			return fmt.Errorf("解析 CIDR %q 失败: %w", arg, err)
		}
		prefixes = append(prefixes, p)
	}

	covering, err := xip4.Summarize(prefixes)
	if err != nil {
		return fmt.Errorf("汇总失败: %w", err)
	}

	if asCSV {
		cw := csv.NewWriter(w)
		records := [][]string{
			{"summary", "network", "broadcast", "total_addrs"},
			{
				covering.String(),
				covering.Network().String(),
				covering.Broadcast().String(),
				strconv.FormatUint(covering.AddrCount(), 10),
			},
		}
		if err := cw.WriteAll(records); err != nil {
			return fmt.Errorf("写入 CSV 失败: %w", err)
		}
		return nil
	}

	fmt.Fprintln(w, covering)
	return nil
}
