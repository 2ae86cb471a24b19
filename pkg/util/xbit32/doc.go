// Package xbit32 提供 32 位无符号整数的位操作工具库。
//
// xbit32 基于 Go 标准库 [math/bits] 构建，补充了带边界校验的
// 位段提取/写入、前导掩码生成和单比特访问函数，
// 是 xip4 地址算术引擎的底层依赖。
//
// # 核心功能
//
//   - bits.go: 位段提取 [Extract] / 写入 [Insert]，单比特访问 [Bit] / [SetBit] / [ClearBit] / [ToggleBit]
//   - mask.go: 前导掩码 [LeadingMask]、尾随掩码 [TrailingMask]
//   - count.go: 置位计数 [OnesCount]，前导/尾随 1 和 0 的游程计数
//
// # 快速示例
//
// 提取 IPv4 地址的第二个八位段：
//
//	v, _ := xbit32.Extract(0xC0A80101, 16, 23) // 0xA8 (168)
//
// 生成 /24 子网掩码：
//
//	mask, _ := xbit32.LeadingMask(24) // 0xFFFFFF00
//
// # 设计决策
//
//   - 越界的位位置/位宽参数一律返回错误，绝不静默截断到合法范围。
//     位运算错误通常意味着调用方的算术 bug，静默掩盖只会让故障下移。
//   - 计数函数直接委托 [math/bits]（单指令级并行位计数），
//     不做前置校验：它们对全部 uint32 输入都是全函数。
//   - 按位与/或/异或/取反不提供函数包装：Go 的 uint32 运算符
//     本身就是无符号语义，^v 不存在符号扩展问题。
//
// # 错误处理
//
// 预定义错误变量支持 errors.Is 判断：
//
//	_, err := xbit32.Extract(v, 8, 40)
//	if errors.Is(err, xbit32.ErrInvalidRange) {
//	    // 处理越界的位区间
//	}
package xbit32
