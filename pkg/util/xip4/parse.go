package xip4

import (
	"fmt"
	"strconv"
	"strings"
)

// Validate 对 s 做单遍点分十进制语法校验。
// 校验顺序固定，保证错误信息确定可复现：
//
//  1. 字符集：仅允许 ASCII 数字和 '.'，违例报 "invalid character"
//  2. 段数：按 '.' 拆分后必须恰为 4 段，违例报 "must have exactly 4 octets"
//  3. 每段必须是可解析的十进制整数（空段非法），违例报 "invalid octet"
//  4. 每段取值必须在 [0,255]，违例报 "octet out of range"
//  5. 每段长度大于 1 时首字符不得为 '0'，违例报 "leading zeros"
//
// 设计决策: 本函数只做语法校验。0.0.0.0、255.255.255.255、D/E 类地址
// 都是语法合法的，网络语义归分类引擎（classify.go）管；
// 否则 [Classify] 永远观察不到 Broadcast/Reserved 等类别。
func Validate(s string) error {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && c != '.' {
			return fmt.Errorf("%w: invalid character %q at position %d", ErrInvalidAddress, c, i)
		}
	}

	parts := strings.Split(s, ".")
	if len(parts) != 4 {
		return fmt.Errorf("%w: must have exactly 4 octets, got %d", ErrInvalidAddress, len(parts))
	}

	for i, part := range parts {
		if part == "" {
			return fmt.Errorf("%w: invalid octet %d: empty", ErrInvalidAddress, i)
		}
		v, err := strconv.ParseUint(part, 10, 64)
		if err != nil || v > 255 {
			return fmt.Errorf("%w: octet %d out of range: %q", ErrInvalidAddress, i, part)
		}
		if len(part) > 1 && part[0] == '0' {
			return fmt.Errorf("%w: octet %d has leading zeros: %q", ErrInvalidAddress, i, part)
		}
	}
	return nil
}

// ParseAddr 解析规范点分十进制字符串为 [Addr]。
// 先经 [Validate]，失败时原样返回其错误；
// 成功后直接按段组合，不做冗余的二次范围检查。
func ParseAddr(s string) (Addr, error) {
	if err := Validate(s); err != nil {
		return 0, err
	}
	var b [4]byte
	idx := 0
	for i := 0; i < 4; i++ {
		v := 0
		for idx < len(s) && s[idx] != '.' {
			v = v*10 + int(s[idx]-'0')
			idx++
		}
		idx++ // 跳过 '.'
		b[i] = byte(v)
	}
	return AddrFrom4(b), nil
}

// MustParseAddr 是 [ParseAddr] 的 panic 版本，仅用于测试和常量初始化。
func MustParseAddr(s string) Addr {
	a, err := ParseAddr(s)
	if err != nil {
		panic(err)
	}
	return a
}

// DottedQuad 是已通过完整校验的点分十进制地址。
// 唯一的构造入口是 [ParseDotted]：每个存活实例都保证满足
// "恰 4 段、各段 [0,255]、无前导零、无空白" 的不变量。
//
// 设计决策: 用带未导出字段的结构体而非 string 新类型实现，
// 因为 Go 的类型转换可以绕过 string 新类型的构造函数，
// 而未导出字段使包外无法伪造实例，不变量在唯一构造点强制成立。
type DottedQuad struct {
	s string
	a Addr
}

// ParseDotted 校验并构造 [DottedQuad]。
// s 必须是规范形式（无前导零、无空白），否则返回 [ErrInvalidAddress]。
func ParseDotted(s string) (DottedQuad, error) {
	a, err := ParseAddr(s)
	if err != nil {
		return DottedQuad{}, err
	}
	return DottedQuad{s: s, a: a}, nil
}

// String 返回规范点分十进制文本。零值返回空字符串。
func (d DottedQuad) String() string {
	return d.s
}

// Addr 返回对应的 32 位编码。
func (d DottedQuad) Addr() Addr {
	return d.a
}

// IsZero 报告 d 是否为未初始化的零值。
func (d DottedQuad) IsZero() bool {
	return d.s == ""
}
