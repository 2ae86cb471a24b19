package xip4

import "fmt"

// AddrFromInt 从带符号整数构造地址。
// v 超出 [0, 2^32-1] 时返回 [ErrInvalidArgument]，绝不截断高位。
func AddrFromInt(v int64) (Addr, error) {
	if v < 0 {
		return 0, fmt.Errorf("%w: numeric address %d is negative", ErrInvalidArgument, v)
	}
	if v > 0xFFFFFFFF {
		return 0, fmt.Errorf("%w: numeric address %d exceeds 0xFFFFFFFF", ErrInvalidArgument, v)
	}
	return Addr(v), nil
}

// Binary 返回地址的 32 字符二进制字符串表示（最高位在前）。
// 与 [ParseBinary] 构成往返。
func (a Addr) Binary() string {
	var buf [32]byte
	for i := 0; i < 32; i++ {
		if a>>uint(31-i)&1 == 1 {
			buf[i] = '1'
		} else {
			buf[i] = '0'
		}
	}
	return string(buf[:])
}

// ParseBinary 解析 32 字符二进制字符串为地址。
// 长度不为 32，或含有 '0'/'1' 以外字符时返回 [ErrInvalidArgument]。
func ParseBinary(s string) (Addr, error) {
	if len(s) != 32 {
		return 0, fmt.Errorf("%w: binary string must be exactly 32 characters, got %d", ErrInvalidArgument, len(s))
	}
	var v uint32
	for i := 0; i < 32; i++ {
		switch s[i] {
		case '1':
			v = v<<1 | 1
		case '0':
			v <<= 1
		default:
			return 0, fmt.Errorf("%w: binary string has invalid character %q at position %d", ErrInvalidArgument, s[i], i)
		}
	}
	return Addr(v), nil
}

// Add 对地址做带符号算术：delta 为负时等价于减法。
// 结果越出 [0, 2^32-1] 时返回 [ErrOverflow]，绝不回绕。
func (a Addr) Add(delta int64) (Addr, error) {
	v := uint64(a.Uint32())
	if delta >= 0 {
		d := uint64(delta)
		if d > uint64(^uint32(0))-v {
			return 0, fmt.Errorf("%w: %s + %d exceeds 255.255.255.255", ErrOverflow, a, delta)
		}
		return Addr(v + d), nil
	}
	d := uint64(-delta)
	if d > v {
		return 0, fmt.Errorf("%w: %s %d goes below 0.0.0.0", ErrOverflow, a, delta)
	}
	return Addr(v - d), nil
}
