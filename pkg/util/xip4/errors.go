package xip4

import "errors"

var (
	// ErrInvalidAddress 表示字符串未通过点分十进制语法校验。
	// 具体原因（非法字符/段数错误/非法八位段/越界/前导零）
	// 通过 %w 包装附加，测试和调用方可按子串匹配。
	ErrInvalidAddress = errors.New("xip4: invalid IPv4 address")

	// ErrInvalidMask 表示子网掩码不连续（1 位游程中存在 0 洞）。
	ErrInvalidMask = errors.New("xip4: non-contiguous subnet mask")

	// ErrInvalidPrefix 表示前缀长度超出 [0,32]，或 CIDR 字符串格式非法。
	ErrInvalidPrefix = errors.New("xip4: invalid CIDR prefix")

	// ErrInvalidArgument 表示结构性误用：八位段数组长度错误、
	// 八位段/位位置越界、拆分前缀不递增等。
	ErrInvalidArgument = errors.New("xip4: invalid argument")

	// ErrInvalidRange 表示地址范围非法（起点大于终点）。
	ErrInvalidRange = errors.New("xip4: invalid address range")

	// ErrOverflow 表示地址算术结果越出 [0, 2^32-1]，
	// 运算拒绝回绕而直接报错。
	ErrOverflow = errors.New("xip4: address arithmetic out of range")

	// ErrSplitTooLarge 表示子网拆分会一次性物化过多结果，
	// 请改用 [Prefix.Subnets] 惰性遍历。
	ErrSplitTooLarge = errors.New("xip4: subnet split too large to materialize")
)
