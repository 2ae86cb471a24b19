package xbit32

import "errors"

var (
	// ErrInvalidRange 表示位区间越界（start > end 或超出 [0,31]）。
	ErrInvalidRange = errors.New("xbit32: bit range out of bounds")

	// ErrInvalidWidth 表示位宽超出 [0,32]，或字段值超出目标位宽。
	ErrInvalidWidth = errors.New("xbit32: bit width out of range")

	// ErrInvalidPosition 表示单个位位置超出 [0,31]。
	ErrInvalidPosition = errors.New("xbit32: bit position out of range")
)
