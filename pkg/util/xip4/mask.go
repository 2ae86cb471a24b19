package xip4

import (
	"fmt"

	"github.com/omeyang/ip4kit/pkg/util/xbit32"
)

// MaskFromPrefix 返回前缀长度 bits 对应的子网掩码。
// bits 超出 [0,32] 时返回 [ErrInvalidPrefix]。
// MaskFromPrefix(24) == 0xFFFFFF00。
func MaskFromPrefix(bits int) (uint32, error) {
	mask, err := xbit32.LeadingMask(bits)
	if err != nil {
		return 0, fmt.Errorf("%w: prefix length %d outside [0, 32]", ErrInvalidPrefix, bits)
	}
	return mask, nil
}

// PrefixFromMask 从子网掩码推导前缀长度。
// 掩码必须连续（前缀全 1 后缀全 0）：先数前导 1，
// 再重建掩码逐位比对，不一致即存在 0 洞，返回 [ErrInvalidMask]。
//
// PrefixFromMask(0xFFFFFF00) == 24；PrefixFromMask(0xFFFF00FF) 报错。
func PrefixFromMask(mask uint32) (int, error) {
	bits := xbit32.LeadingOnes(mask)
	rebuilt, err := xbit32.LeadingMask(bits)
	if err != nil {
		return 0, err
	}
	if rebuilt != mask {
		return 0, fmt.Errorf("%w: %#08x", ErrInvalidMask, mask)
	}
	return bits, nil
}

// IsContiguousMask 报告 mask 是否为合法的连续子网掩码。
// 连续性判据：取反后加 1 必须是 2 的幂，
// 即 inv&(inv+1) == 0（全 0 掩码和全 1 掩码都满足）。
func IsContiguousMask(mask uint32) bool {
	inv := ^mask
	return inv&(inv+1) == 0
}

// ParseMask 解析点分十进制形式的子网掩码（如 "255.255.255.0"）。
// 语法校验与 [ParseAddr] 相同；语法合法但不连续的掩码
// （如 "255.0.255.0"）返回 [ErrInvalidMask]。
func ParseMask(s string) (uint32, error) {
	a, err := ParseAddr(s)
	if err != nil {
		return 0, err
	}
	mask := a.Uint32()
	if !IsContiguousMask(mask) {
		return 0, fmt.Errorf("%w: %s", ErrInvalidMask, s)
	}
	return mask, nil
}

// FormatMask 返回掩码的点分十进制文本。
// 不做连续性校验：任意 32 位值都有合法渲染。
func FormatMask(mask uint32) string {
	return Addr(mask).String()
}
