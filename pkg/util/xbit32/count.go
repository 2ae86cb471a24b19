package xbit32

import "math/bits"

// OnesCount 返回 v 中置位（1 比特）的数量。
// 委托 [bits.OnesCount32]，amd64/arm64 上编译为单条 popcount 指令。
// OnesCount(0xFFFFFFFF) == 32。
func OnesCount(v uint32) int {
	return bits.OnesCount32(v)
}

// LeadingOnes 返回从第 31 位（最高位）起连续 1 的数量。
// 用于从子网掩码推导前缀长度：LeadingOnes(0xFFFFFF00) == 24。
func LeadingOnes(v uint32) int {
	return bits.LeadingZeros32(^v)
}

// LeadingZeros 返回从第 31 位（最高位）起连续 0 的数量。
func LeadingZeros(v uint32) int {
	return bits.LeadingZeros32(v)
}

// TrailingOnes 返回从第 0 位（最低位）起连续 1 的数量。
func TrailingOnes(v uint32) int {
	return bits.TrailingZeros32(^v)
}

// TrailingZeros 返回从第 0 位（最低位）起连续 0 的数量。
// TrailingZeros(0) == 32。
func TrailingZeros(v uint32) int {
	return bits.TrailingZeros32(v)
}

// Len 返回表示 v 所需的最少位数（最高置位的位置 + 1）。
// Len(0) == 0。用于 CIDR 汇总时计算公共前缀长度。
func Len(v uint32) int {
	return bits.Len32(v)
}
