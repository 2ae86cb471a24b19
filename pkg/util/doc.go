// Package util 提供通用工具相关的子包。
//
// 子包列表：
//   - xbit32: 32 位无符号整数的位域操作原语，掩码构造与位计数
//   - xip4: IPv4 地址工具库，校验、解析、格式化、分类与 CIDR 子网算术
//
// 设计原则：
//   - 纯计算、零 I/O，所有操作对全部输入有确定行为
//   - 非法输入通过哨兵错误报告，支持 errors.Is 判别
//   - 与 net/netip + go4.org/netipx 生态互操作
package util
