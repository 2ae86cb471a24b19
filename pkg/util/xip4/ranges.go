package xip4

import (
	"encoding/binary"
	"fmt"
	"net/netip"

	"go4.org/netipx"
)

// NetIP 返回地址的 [netip.Addr] 表示，供 netip 生态的消费方直接使用。
func (a Addr) NetIP() netip.Addr {
	return netip.AddrFrom4(a.Octets())
}

// AddrFromNetIP 从 [netip.Addr] 转换。
// 接受纯 IPv4 和 IPv4-mapped IPv6（统一去映射）；
// 其余地址返回 (0, false)。
func AddrFromNetIP(addr netip.Addr) (Addr, bool) {
	if !addr.Is4() && !addr.Is4In6() {
		return 0, false
	}
	b := addr.Unmap().As4()
	return Addr(binary.BigEndian.Uint32(b[:])), true
}

// NetIPPrefix 返回块的 [netip.Prefix] 表示。
func (p Prefix) NetIPPrefix() netip.Prefix {
	return netip.PrefixFrom(p.addr.NetIP(), p.bits)
}

// PrefixFromNetIP 从 [netip.Prefix] 转换，主机位被规范化清零。
// 非 IPv4 前缀返回零值和 false。
func PrefixFromNetIP(p netip.Prefix) (Prefix, bool) {
	addr, ok := AddrFromNetIP(p.Addr())
	if !ok || p.Bits() < 0 {
		return Prefix{}, false
	}
	out, err := PrefixFrom(addr, p.Bits())
	if err != nil {
		return Prefix{}, false
	}
	return out, true
}

// IPRange 返回块覆盖的 [netipx.IPRange]（网络地址到广播地址）。
func (p Prefix) IPRange() netipx.IPRange {
	return netipx.IPRangeFrom(p.Network().NetIP(), p.Broadcast().NetIP())
}

// MergePrefixes 合并重叠和相邻的块，返回等价的最小规范块集合。
// 结果已排序且互不重叠。内部经 [netipx.IPSetBuilder] 实现，
// 与自研区间合并相比由库保证正确性。
// 空切片或 nil 返回 (nil, nil)。
func MergePrefixes(prefixes []Prefix) ([]Prefix, error) {
	if len(prefixes) == 0 {
		return nil, nil
	}
	var b netipx.IPSetBuilder
	for _, p := range prefixes {
		b.AddPrefix(p.NetIPPrefix())
	}
	set, err := b.IPSet()
	if err != nil {
		return nil, fmt.Errorf("merge prefixes: %w", err)
	}
	merged := set.Prefixes()
	out := make([]Prefix, 0, len(merged))
	for _, np := range merged {
		p, ok := PrefixFromNetIP(np)
		if !ok {
			return nil, fmt.Errorf("%w: unexpected non-IPv4 prefix %s", ErrInvalidRange, np)
		}
		out = append(out, p)
	}
	return out, nil
}

// RangePrefixes 把任意地址区间 [from, to] 精确分解为最少数量的 CIDR 块。
// from > to 时返回 [ErrInvalidRange]。
//
// 示例：192.168.1.1-192.168.1.100 分解为
// 192.168.1.1/32、192.168.1.2/31、...（精确覆盖，无多余地址）。
func RangePrefixes(from, to Addr) ([]Prefix, error) {
	if from > to {
		return nil, fmt.Errorf("%w: start %s > end %s", ErrInvalidRange, from, to)
	}
	r := netipx.IPRangeFrom(from.NetIP(), to.NetIP())
	nps := r.Prefixes()
	out := make([]Prefix, 0, len(nps))
	for _, np := range nps {
		p, ok := PrefixFromNetIP(np)
		if !ok {
			return nil, fmt.Errorf("%w: unexpected non-IPv4 prefix %s", ErrInvalidRange, np)
		}
		out = append(out, p)
	}
	return out, nil
}

// RangePrefix 尝试把区间 [from, to] 表示为单个 CIDR 块。
// 仅当区间恰好对齐一个块（如 192.168.1.0-192.168.1.255 对应 /24）
// 时返回该块和 true，否则返回零值和 false。
func RangePrefix(from, to Addr) (Prefix, bool) {
	if from > to {
		return Prefix{}, false
	}
	r := netipx.IPRangeFrom(from.NetIP(), to.NetIP())
	np, ok := r.Prefix()
	if !ok {
		return Prefix{}, false
	}
	return PrefixFromNetIP(np)
}
