package xbit32

import "fmt"

// Extract 返回 v 中 [start, end] 闭区间的位段，右对齐到最低位。
// 位编号从 0（最低位）到 31（最高位）。
// start > end 或任一边界超出 [0,31] 时返回 [ErrInvalidRange]。
//
// 示例：
//
//	Extract(0xC0A80101, 24, 31) // 0xC0, nil
func Extract(v uint32, start, end int) (uint32, error) {
	if err := checkRange(start, end); err != nil {
		return 0, err
	}
	width := end - start + 1
	if width == 32 {
		return v, nil
	}
	return (v >> uint(start)) & (1<<uint(width) - 1), nil
}

// Insert 将 field 写入 v 的 [start, end] 闭区间，返回新值，其余位不变。
// start > end 或任一边界超出 [0,31] 时返回 [ErrInvalidRange]；
// field 超出 end-start+1 位可表示的范围时返回 [ErrInvalidWidth]，
// 绝不静默截断 field。
func Insert(v uint32, start, end int, field uint32) (uint32, error) {
	if err := checkRange(start, end); err != nil {
		return 0, err
	}
	width := end - start + 1
	if width < 32 && field > 1<<uint(width)-1 {
		return 0, fmt.Errorf("%w: field %#x does not fit in %d bits", ErrInvalidWidth, field, width)
	}
	if width == 32 {
		return field, nil
	}
	mask := uint32(1<<uint(width)-1) << uint(start)
	return v&^mask | field<<uint(start), nil
}

// Bit 返回 v 的第 pos 位是否为 1。
// pos 超出 [0,31] 时返回 [ErrInvalidPosition]。
func Bit(v uint32, pos int) (bool, error) {
	if err := checkPosition(pos); err != nil {
		return false, err
	}
	return v>>uint(pos)&1 == 1, nil
}

// SetBit 返回将 v 的第 pos 位置 1 后的新值。
// pos 超出 [0,31] 时返回 [ErrInvalidPosition]。
func SetBit(v uint32, pos int) (uint32, error) {
	if err := checkPosition(pos); err != nil {
		return 0, err
	}
	return v | 1<<uint(pos), nil
}

// ClearBit 返回将 v 的第 pos 位清 0 后的新值。
// pos 超出 [0,31] 时返回 [ErrInvalidPosition]。
func ClearBit(v uint32, pos int) (uint32, error) {
	if err := checkPosition(pos); err != nil {
		return 0, err
	}
	return v &^ (1 << uint(pos)), nil
}

// ToggleBit 返回将 v 的第 pos 位取反后的新值。
// pos 超出 [0,31] 时返回 [ErrInvalidPosition]。
func ToggleBit(v uint32, pos int) (uint32, error) {
	if err := checkPosition(pos); err != nil {
		return 0, err
	}
	return v ^ 1<<uint(pos), nil
}

// checkRange 校验 [start, end] 是否为合法位区间。
func checkRange(start, end int) error {
	if start < 0 || start > 31 || end < 0 || end > 31 {
		return fmt.Errorf("%w: [%d, %d] outside [0, 31]", ErrInvalidRange, start, end)
	}
	if start > end {
		return fmt.Errorf("%w: start %d > end %d", ErrInvalidRange, start, end)
	}
	return nil
}

// checkPosition 校验单个位位置是否在 [0,31] 内。
func checkPosition(pos int) error {
	if pos < 0 || pos > 31 {
		return fmt.Errorf("%w: %d outside [0, 31]", ErrInvalidPosition, pos)
	}
	return nil
}
