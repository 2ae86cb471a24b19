package xip4

import "fmt"

// WirePrefix 是 CIDR 块的序列化格式，
// JSON/BSON/YAML 标签为 {"network":"...","bits":N}。
type WirePrefix struct {
	Network string `json:"network" bson:"network" yaml:"network"`
	Bits    int    `json:"bits" bson:"bits" yaml:"bits"`
}

// WirePrefixFrom 从 [Prefix] 创建 WirePrefix。
func WirePrefixFrom(p Prefix) WirePrefix {
	return WirePrefix{Network: p.Addr().String(), Bits: p.Bits()}
}

// ToPrefix 将 WirePrefix 转换回 [Prefix]。
// 反序列化得到的字段未经校验，这里重新走完整构造路径，
// 主机位非零的网络地址会被规范化。
func (w WirePrefix) ToPrefix() (Prefix, error) {
	ip, err := ParseAddr(w.Network)
	if err != nil {
		return Prefix{}, err
	}
	return PrefixFrom(ip, w.Bits)
}

// String 返回 "网络地址/前缀长度" 形式的文本。
func (w WirePrefix) String() string {
	return fmt.Sprintf("%s/%d", w.Network, w.Bits)
}

// IsZero 报告 w 是否为零值。
func (w WirePrefix) IsZero() bool {
	return w.Network == "" && w.Bits == 0
}

// WireRange 是任意地址区间的序列化格式，
// JSON/BSON/YAML 标签为 {"start":"...","end":"..."}。
// 用于不对齐 CIDR 边界的主机范围。
type WireRange struct {
	Start string `json:"start" bson:"start" yaml:"start"`
	End   string `json:"end" bson:"end" yaml:"end"`
}

// WireRangeFrom 从起止地址创建 WireRange。
// from > to 时返回 [ErrInvalidRange]。
func WireRangeFrom(from, to Addr) (WireRange, error) {
	if from > to {
		return WireRange{}, fmt.Errorf("%w: start %s > end %s", ErrInvalidRange, from, to)
	}
	return WireRange{Start: from.String(), End: to.String()}, nil
}

// ToAddrs 将 WireRange 转换回起止地址对。
// 两端都经严格语法校验，且起点不得大于终点。
func (w WireRange) ToAddrs() (from, to Addr, err error) {
	from, err = ParseAddr(w.Start)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid range start: %w", err)
	}
	to, err = ParseAddr(w.End)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid range end: %w", err)
	}
	if from > to {
		return 0, 0, fmt.Errorf("%w: start %s > end %s", ErrInvalidRange, from, to)
	}
	return from, to, nil
}

// String 返回 "start-end" 形式的文本；起止相同时只返回单个地址。
func (w WireRange) String() string {
	if w.Start == w.End {
		return w.Start
	}
	if w.Start == "" {
		return w.End
	}
	if w.End == "" {
		return w.Start
	}
	return w.Start + "-" + w.End
}

// IsZero 报告 w 是否为零值。
func (w WireRange) IsZero() bool {
	return w.Start == "" && w.End == ""
}
