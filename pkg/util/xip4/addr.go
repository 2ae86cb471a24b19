package xip4

import (
	"fmt"

	"github.com/omeyang/ip4kit/pkg/util/xbit32"
)

// Addr 是 IPv4 地址的规范 32 位无符号整数编码：
// 字节 0（最高位字节）对应点分十进制的第一段，字节 3 对应第四段。
// 所有掩码运算、算术和分类都在此表示上进行，绝不回头重新解析字符串。
//
// Addr 是不可变值类型，可直接比较、可作 map key。
type Addr uint32

// AddrFrom4 从 4 字节数组组合地址。全函数，不会失败：
// byte 类型已保证每段在 [0,255] 内。
func AddrFrom4(b [4]byte) Addr {
	return Addr(uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3]))
}

// AddrFromOctets 从八位段切片组合地址。
// 段数不等于 4，或任一段超出 [0,255] 时返回 [ErrInvalidArgument]，
// 绝不静默截断或补零。
func AddrFromOctets(octets []int) (Addr, error) {
	if len(octets) != 4 {
		return 0, fmt.Errorf("%w: need exactly 4 octets, got %d", ErrInvalidArgument, len(octets))
	}
	var b [4]byte
	for i, o := range octets {
		if o < 0 || o > 255 {
			return 0, fmt.Errorf("%w: octet %d value %d outside [0, 255]", ErrInvalidArgument, i, o)
		}
		b[i] = byte(o)
	}
	return AddrFrom4(b), nil
}

// Octets 返回地址的 4 个八位段，索引 0 为点分十进制的第一段。
func (a Addr) Octets() [4]byte {
	return [4]byte{byte(a >> 24), byte(a >> 16), byte(a >> 8), byte(a)}
}

// Octet 返回第 pos 个八位段（pos 0 为第一段）。
// pos 超出 [0,3] 时返回 [ErrInvalidArgument]。
func (a Addr) Octet(pos int) (uint8, error) {
	if pos < 0 || pos > 3 {
		return 0, fmt.Errorf("%w: octet position %d outside [0, 3]", ErrInvalidArgument, pos)
	}
	start := (3 - pos) * 8
	v, err := xbit32.Extract(uint32(a), start, start+7)
	if err != nil {
		return 0, err
	}
	return uint8(v), nil
}

// WithOctet 返回将第 pos 个八位段替换为 val 的新地址，其余三段逐位不变。
// pos 超出 [0,3] 或 val 超出 [0,255] 时返回 [ErrInvalidArgument]。
func (a Addr) WithOctet(pos, val int) (Addr, error) {
	if pos < 0 || pos > 3 {
		return 0, fmt.Errorf("%w: octet position %d outside [0, 3]", ErrInvalidArgument, pos)
	}
	if val < 0 || val > 255 {
		return 0, fmt.Errorf("%w: octet value %d outside [0, 255]", ErrInvalidArgument, val)
	}
	start := (3 - pos) * 8
	v, err := xbit32.Insert(uint32(a), start, start+7, uint32(val))
	if err != nil {
		return 0, err
	}
	return Addr(v), nil
}

// Uint32 返回地址的 32 位无符号整数值（网络字节序语义）。
func (a Addr) Uint32() uint32 {
	return uint32(a)
}

// Version 返回地址的 IP 版本，恒为 [V4]。
func (a Addr) Version() Version {
	return V4
}

// Compare 按数值比较两个地址：a < b 返回 -1，相等返回 0，a > b 返回 1。
func (a Addr) Compare(b Addr) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Less 报告 a 是否严格小于 b。
func (a Addr) Less(b Addr) bool {
	return a < b
}
