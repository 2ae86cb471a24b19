package xip4

import (
	"fmt"
	"strconv"
	"strings"
)

// Prefix 是规范 CIDR 块：网络地址加前缀长度。
// 构造时主机位一律清零，每个存活实例都满足 addr == addr AND mask。
// 不可变值类型，可直接比较。
type Prefix struct {
	addr Addr
	bits int
}

// PrefixFrom 构造 CIDR 块。ip 的主机位被掩码清零（规范化）。
// bits 超出 [0,32] 时返回 [ErrInvalidPrefix]。
func PrefixFrom(ip Addr, bits int) (Prefix, error) {
	mask, err := MaskFromPrefix(bits)
	if err != nil {
		return Prefix{}, err
	}
	return Prefix{addr: Addr(ip.Uint32() & mask), bits: bits}, nil
}

// MustPrefixFrom 是 [PrefixFrom] 的 panic 版本，仅用于测试和常量初始化。
func MustPrefixFrom(ip Addr, bits int) Prefix {
	p, err := PrefixFrom(ip, bits)
	if err != nil {
		panic(err)
	}
	return p
}

// ParsePrefix 解析 CIDR 字符串（如 "192.168.1.0/24"）。
// 地址部分经 [ParseAddr] 严格校验；主机位非零的输入被容忍，
// 解析时立即应用掩码规范化为网络地址。
// 缺少 '/'、前缀长度非十进制整数或越界时返回 [ErrInvalidPrefix]。
func ParsePrefix(s string) (Prefix, error) {
	idx := strings.LastIndexByte(s, '/')
	if idx < 0 {
		return Prefix{}, fmt.Errorf("%w: missing '/' in %q", ErrInvalidPrefix, s)
	}
	ip, err := ParseAddr(s[:idx])
	if err != nil {
		return Prefix{}, err
	}
	bitsStr := s[idx+1:]
	bits, err := strconv.Atoi(bitsStr)
	if err != nil {
		return Prefix{}, fmt.Errorf("%w: invalid prefix length %q", ErrInvalidPrefix, bitsStr)
	}
	return PrefixFrom(ip, bits)
}

// MustParsePrefix 是 [ParsePrefix] 的 panic 版本，仅用于测试和常量初始化。
func MustParsePrefix(s string) Prefix {
	p, err := ParsePrefix(s)
	if err != nil {
		panic(err)
	}
	return p
}

// Addr 返回块的网络地址（主机位恒为零）。
func (p Prefix) Addr() Addr {
	return p.addr
}

// Bits 返回前缀长度。
func (p Prefix) Bits() int {
	return p.bits
}

// Mask 返回块的子网掩码。
func (p Prefix) Mask() uint32 {
	// bits 在构造时已校验，此处不可能失败
	mask, _ := MaskFromPrefix(p.bits)
	return mask
}

// String 返回 "网络地址/前缀长度" 形式的文本。
func (p Prefix) String() string {
	return p.addr.String() + "/" + strconv.Itoa(p.bits)
}

// Network 返回网络地址：ip AND mask。
// 对规范块恒等于 [Prefix.Addr]。
func (p Prefix) Network() Addr {
	return Addr(p.addr.Uint32() & p.Mask())
}

// Broadcast 返回广播地址：ip OR NOT mask。
// /32 块的广播地址即网络地址本身。
func (p Prefix) Broadcast() Addr {
	return Addr(p.addr.Uint32() | ^p.Mask())
}

// AddrCount 返回块内地址总数（2^(32-bits)，含网络与广播地址）。
func (p Prefix) AddrCount() uint64 {
	return 1 << uint(32-p.bits)
}

// HostCount 返回块内可用主机数：
//   - bits <= 30: 2^(32-bits) - 2（扣除网络地址和广播地址）
//   - /31: 2（RFC 3021 点对点链路，两个地址都可用，不保留广播）
//   - /32: 1（单主机路由）
func (p Prefix) HostCount() uint64 {
	switch {
	case p.bits >= 32:
		return 1
	case p.bits == 31:
		return 2
	default:
		return p.AddrCount() - 2
	}
}

// FirstHost 返回第一个可用主机地址。
// 一般为网络地址 +1；/31 和 /32 无保留地址，直接返回网络地址。
func (p Prefix) FirstHost() Addr {
	if p.bits >= 31 {
		return p.Network()
	}
	return p.Network() + 1
}

// LastHost 返回最后一个可用主机地址。
// 一般为广播地址 -1；/31 和 /32 无保留地址，直接返回广播地址。
func (p Prefix) LastHost() Addr {
	if p.bits >= 31 {
		return p.Broadcast()
	}
	return p.Broadcast() - 1
}

// Contains 报告 ip 是否落在块的地址范围内。
func (p Prefix) Contains(ip Addr) bool {
	return ip.Uint32()&p.Mask() == p.addr.Uint32()
}

// Overlaps 报告两个块的地址范围是否相交。
// 较短前缀的块包含较长前缀的块即为相交。
func (p Prefix) Overlaps(o Prefix) bool {
	if p.bits <= o.bits {
		return o.addr.Uint32()&p.Mask() == p.addr.Uint32()
	}
	return p.addr.Uint32()&o.Mask() == o.addr.Uint32()
}
