package xip4

import (
	"fmt"
	"strconv"
	"strings"
)

// String 返回地址的规范点分十进制文本。
// 全函数：任意 32 位值都有合法渲染，绝不失败。
// 保证与 [ParseAddr] 构成往返：ParseAddr(a.String()) == a。
func (a Addr) String() string {
	b := a.Octets()
	// 手写格式化避免 fmt.Sprintf 的反射开销和额外分配。
	var buf [15]byte
	n := 0
	for i := 0; i < 4; i++ {
		if i > 0 {
			buf[n] = '.'
			n++
		}
		if b[i] >= 100 {
			buf[n] = '0' + b[i]/100
			n++
		}
		if b[i] >= 10 {
			buf[n] = '0' + (b[i]/10)%10
			n++
		}
		buf[n] = '0' + b[i]%10
		n++
	}
	return string(buf[:n])
}

// FullString 返回全长格式：每段 3 位十进制，带前导零。
// 例如 192.168.1.1 → "192.168.001.001"。
// 定长输出便于按字典序排序和对齐展示。
func (a Addr) FullString() string {
	b := a.Octets()
	var buf [15]byte
	for i := 0; i < 4; i++ {
		off := i * 4
		if i > 0 {
			buf[off-1] = '.'
		}
		buf[off+0] = '0' + b[i]/100
		buf[off+1] = '0' + (b[i]/10)%10
		buf[off+2] = '0' + b[i]%10
	}
	return string(buf[:])
}

// ParseFull 解析允许前导零的点分十进制字符串（如 "192.168.001.001"）。
// 这是 [ParseAddr] 的宽松变体，用于读取全长格式；
// 段数和取值范围仍严格校验。
func ParseFull(s string) (Addr, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 4 {
		return 0, fmt.Errorf("%w: must have exactly 4 octets, got %d", ErrInvalidAddress, len(parts))
	}
	var b [4]byte
	for i, part := range parts {
		// ParseUint 不接受 +/- 前缀和空白，无需额外字符集校验
		v, err := strconv.ParseUint(part, 10, 8)
		if err != nil {
			return 0, fmt.Errorf("%w: invalid octet %q", ErrInvalidAddress, part)
		}
		b[i] = byte(v)
	}
	return AddrFrom4(b), nil
}

// Normalize 将任意可解析的点分十进制字符串规范化：
// 宽松解析（容忍前导零）后重新格式化为规范形式。
// 例如 "192.168.001.001" → "192.168.1.1"。
func Normalize(s string) (string, error) {
	a, err := ParseFull(s)
	if err != nil {
		return "", err
	}
	return a.String(), nil
}
