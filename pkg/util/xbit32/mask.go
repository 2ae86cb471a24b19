package xbit32

import "fmt"

// LeadingMask 返回高 n 位为 1、其余位为 0 的掩码。
// n 超出 [0,32] 时返回 [ErrInvalidWidth]。
//
// LeadingMask(0) == 0，LeadingMask(32) == 0xFFFFFFFF。
// 这是 IPv4 子网掩码的位模式：LeadingMask(24) == 0xFFFFFF00。
func LeadingMask(n int) (uint32, error) {
	if n < 0 || n > 32 {
		return 0, fmt.Errorf("%w: leading mask width %d outside [0, 32]", ErrInvalidWidth, n)
	}
	if n == 0 {
		// 避免 uint32 移位 32 位的未定义语义
		return 0, nil
	}
	return ^uint32(0) << uint(32-n), nil
}

// TrailingMask 返回低 n 位为 1、其余位为 0 的掩码。
// n 超出 [0,32] 时返回 [ErrInvalidWidth]。
//
// TrailingMask(n) 恰为 LeadingMask(32-n) 的按位取反，
// 对应 CIDR 块的主机位（通配）掩码：TrailingMask(8) == 0x000000FF。
func TrailingMask(n int) (uint32, error) {
	if n < 0 || n > 32 {
		return 0, fmt.Errorf("%w: trailing mask width %d outside [0, 32]", ErrInvalidWidth, n)
	}
	if n == 32 {
		return ^uint32(0), nil
	}
	return 1<<uint(n) - 1, nil
}
