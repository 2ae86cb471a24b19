// Package xip4 提供 IPv4 地址的表示、解析、格式化、分类
// 与子网算术工具库。
//
// xip4 是纯内存计算库：无网络 I/O、无持久化、无共享可变状态，
// 所有类型都是不可变值类型，线程安全是自动成立的。
// 核心表示是 [Addr]——IPv4 地址的 32 位无符号整数编码
// （最高位字节对应点分十进制第一段），全部掩码运算、
// 算术和分类都在这一表示上进行，字符串只出现在输入输出边界。
//
// # 核心功能
//
//   - addr.go: [Addr] 类型、八位段分解/组合、[Addr.WithOctet]
//   - parse.go: 严格点分十进制校验 [Validate] / [ParseAddr]、
//     带品牌的已校验字符串类型 [DottedQuad]
//   - format.go: 规范格式化 [Addr.String]、全长格式 [Addr.FullString]、
//     宽松解析 [ParseFull]、规范化 [Normalize]
//   - convert.go: 数值编码 [AddrFromInt]、二进制串编码 [ParseBinary] /
//     [Addr.Binary]、带溢出检查的地址算术 [Addr.Add]
//   - mask.go: 前缀长度 ⇄ 掩码互转 [MaskFromPrefix] / [PrefixFromMask]、
//     连续性校验 [IsContiguousMask]、掩码文本解析 [ParseMask]
//   - prefix.go / subnet.go: CIDR 块类型 [Prefix]：网络/广播地址、
//     可用主机范围、拆分 [Prefix.Split]、汇总 [Summarize]、
//     包含关系 [Prefix.SubsetOf]、相邻块 [Prefix.Next] / [Prefix.Prev]
//   - classify.go / multicast.go: 分类引擎 [Classify]（十类标签、
//     固定优先级）与多播子类型 [MulticastType]
//   - ranges.go: [netip.Addr] / [netipx.IPRange] 互操作、
//     区间 ⇄ CIDR 块分解、块合并 [MergePrefixes]
//   - wire.go: [WirePrefix] / [WireRange] JSON/BSON/YAML 序列化结构
//
// # 快速示例
//
// 解析、分类与格式化：
//
//	ip, _ := xip4.ParseAddr("192.168.1.1")
//	fmt.Printf("%#x\n", ip.Uint32())      // 0xc0a80101
//	fmt.Println(xip4.Classify(ip))        // private
//	fmt.Println(ip.FullString())          // 192.168.001.001
//
// 子网算术：
//
//	p, _ := xip4.ParsePrefix("192.168.1.0/24")
//	fmt.Println(p.Broadcast())            // 192.168.1.255
//	subnets, _ := p.Split(26)             // 4 个 /26
//
// # 校验与分类的分界
//
// [Validate] 只做语法校验：字符集、段数、取值范围、前导零。
// 0.0.0.0、255.255.255.255 和 D/E 类地址都是语法合法的——
// 它们的网络语义由 [Classify] 裁决。若校验阶段就拒绝这些地址，
// 分类引擎将永远观察不到 Broadcast/Reserved/Multicast 类别。
//
// # 分类优先级
//
// IANA 特殊用途段存在重叠（文档/基准/共享段是历史保留空间的子集），
// [Classify] 按固定顺序返回首个命中：
// Private → Loopback → Link-local → Multicast → Broadcast →
// Documentation → Benchmarking → Shared → Reserved → Public。
// 优先级集中在一张判定表（categoryRules）里，作为单元整体测试。
//
// # 错误处理
//
// 预定义错误变量支持 errors.Is 判断；校验错误附带具体原因子串：
//
//	_, err := xip4.ParseAddr("192.168.01.1")
//	errors.Is(err, xip4.ErrInvalidAddress)          // true
//	strings.Contains(err.Error(), "leading zeros")  // true
//
// 所有越界输入立即报错，绝不静默钳制或截断；
// 地址空间边界上的算术（[Addr.Add]、[Prefix.Next] 等）
// 返回 [ErrOverflow] 而非回绕。
//
// # 与 netip 生态互操作
//
// 消费方已持有 [netip.Addr] / [netip.Prefix] 时，可经
// [AddrFromNetIP] / [PrefixFromNetIP] 无损转入，
// 或经 [Addr.NetIP] / [Prefix.NetIPPrefix] 转出；
// 区间合并与分解（[MergePrefixes]、[RangePrefixes]）
// 由 [go4.org/netipx] 的 IPSet 实现保证正确性。
package xip4
