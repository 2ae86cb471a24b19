package xip4

import (
	"fmt"
	"iter"

	"github.com/omeyang/ip4kit/pkg/util/xbit32"
)

// maxSplitResults 是 [Prefix.Split] 一次性物化的子网数量上限。
// 超限的拆分（如 /0 → /32 的 2^32 个子网）必须走 [Prefix.Subnets]
// 惰性遍历，避免吞掉整个堆。
const maxSplitResults = 1 << 16

// Split 将块拆分为若干个 newBits 前缀的连续子网。
// newBits <= 当前前缀或 > 32 时返回 [ErrInvalidArgument]；
// 结果数量超过 65536 时返回 [ErrSplitTooLarge]（改用 [Prefix.Subnets]）。
//
// 示例：192.168.1.0/24 按 26 拆分得到
// 192.168.1.0/26、192.168.1.64/26、192.168.1.128/26、192.168.1.192/26。
func (p Prefix) Split(newBits int) ([]Prefix, error) {
	if err := p.checkSplit(newBits); err != nil {
		return nil, err
	}
	count := uint64(1) << uint(newBits-p.bits)
	if count > maxSplitResults {
		return nil, fmt.Errorf("%w: %d subnets (limit %d), use Subnets for lazy iteration",
			ErrSplitTooLarge, count, maxSplitResults)
	}
	size := Addr(1) << uint(32-newBits)
	out := make([]Prefix, 0, count)
	network := p.Network()
	for i := uint64(0); i < count; i++ {
		out = append(out, Prefix{addr: network, bits: newBits})
		network += size
	}
	return out, nil
}

// Subnets 返回按 newBits 拆分的惰性迭代器，不预先物化结果。
// 参数非法时返回错误；迭代本身不会失败。
func (p Prefix) Subnets(newBits int) (iter.Seq[Prefix], error) {
	if err := p.checkSplit(newBits); err != nil {
		return nil, err
	}
	count := uint64(1) << uint(newBits-p.bits)
	size := Addr(1) << uint(32-newBits)
	network := p.Network()
	return func(yield func(Prefix) bool) {
		n := network
		for i := uint64(0); i < count; i++ {
			if !yield(Prefix{addr: n, bits: newBits}) {
				return
			}
			n += size
		}
	}, nil
}

// checkSplit 校验拆分参数：新前缀必须严格长于当前前缀且不超过 32。
func (p Prefix) checkSplit(newBits int) error {
	if newBits <= p.bits {
		return fmt.Errorf("%w: new prefix %d must be longer than current prefix %d",
			ErrInvalidArgument, newBits, p.bits)
	}
	if newBits > 32 {
		return fmt.Errorf("%w: new prefix %d exceeds 32", ErrInvalidArgument, newBits)
	}
	return nil
}

// Summarize 返回覆盖所有输入块的最小单一 CIDR 块。
// 少于 2 个输入时返回 [ErrInvalidArgument]。
//
// 算法：取全体端点的最小网络地址和最大广播地址，异或得差异位，
// 公共前缀长度 = 32 - 差异的二进制位长，再把最小地址对齐到掩码边界。
// 注意结果是覆盖块而非精确聚合：可能包含输入集合之外的地址。
func Summarize(prefixes []Prefix) (Prefix, error) {
	if len(prefixes) < 2 {
		return Prefix{}, fmt.Errorf("%w: summarization needs at least 2 subnets, got %d",
			ErrInvalidArgument, len(prefixes))
	}
	lo := prefixes[0].Network().Uint32()
	hi := prefixes[0].Broadcast().Uint32()
	for _, p := range prefixes[1:] {
		if n := p.Network().Uint32(); n < lo {
			lo = n
		}
		if b := p.Broadcast().Uint32(); b > hi {
			hi = b
		}
	}
	bits := 32 - xbit32.Len(lo^hi)
	return PrefixFrom(Addr(lo), bits)
}

// SubsetOf 报告 p 是否为 o 的真子网。
// 判定是严格的：前缀长度必须严格大于 o（相同前缀的块互不为子网，
// 包括块与其自身），且 p 的网络按 o 的掩码收缩后与 o 的网络一致。
func (p Prefix) SubsetOf(o Prefix) bool {
	if p.bits <= o.bits {
		return false
	}
	return p.addr.Uint32()&o.Mask() == o.addr.Uint32()
}

// Next 返回地址空间中紧随其后的同尺寸块。
// 越过 255.255.255.255 时返回 [ErrOverflow]，绝不回绕。
func (p Prefix) Next() (Prefix, error) {
	size := p.AddrCount()
	n := uint64(p.Network().Uint32()) + size
	if n > 0xFFFFFFFF {
		return Prefix{}, fmt.Errorf("%w: no subnet after %s", ErrOverflow, p)
	}
	return Prefix{addr: Addr(n), bits: p.bits}, nil
}

// Prev 返回地址空间中紧邻其前的同尺寸块。
// 越过 0.0.0.0 时返回 [ErrOverflow]，绝不回绕。
func (p Prefix) Prev() (Prefix, error) {
	size := p.AddrCount()
	n := uint64(p.Network().Uint32())
	if n < size {
		return Prefix{}, fmt.Errorf("%w: no subnet before %s", ErrOverflow, p)
	}
	return Prefix{addr: Addr(n - size), bits: p.bits}, nil
}
