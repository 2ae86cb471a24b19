package xip4

// MulticastKind 是多播地址的子类型，按首八位段划分。
type MulticastKind uint8

const (
	// NotMulticast 表示地址不在 224.0.0.0/4 内。
	NotMulticast MulticastKind = iota
	// MulticastWellKnown 表示知名多播（224.x.x.x，本地网络控制块等）。
	MulticastWellKnown
	// MulticastTransient 表示临时多播（225–231.x.x.x）。
	MulticastTransient
	// MulticastSourceSpecific 表示源特定多播（232–235.x.x.x）。
	MulticastSourceSpecific
	// MulticastGLOP 表示 GLOP 编址（236–237.x.x.x，AS 号映射）。
	MulticastGLOP
	// MulticastUnicastPrefix 表示基于单播前缀的多播（仅 238.0.0.0/24）。
	MulticastUnicastPrefix
	// MulticastAdminScoped 表示管理作用域多播（239.x.x.x, RFC 2365）。
	MulticastAdminScoped
	// MulticastReserved 表示多播空间内未归入以上子类的保留段。
	MulticastReserved
)

// String 返回多播子类型的字符串表示。
func (k MulticastKind) String() string {
	switch k {
	case MulticastWellKnown:
		return "Well-Known Multicast"
	case MulticastTransient:
		return "Transient Multicast"
	case MulticastSourceSpecific:
		return "Source-Specific Multicast"
	case MulticastGLOP:
		return "GLOP Multicast"
	case MulticastUnicastPrefix:
		return "Unicast-Prefix-based Multicast"
	case MulticastAdminScoped:
		return "Administratively-Scoped Multicast"
	case MulticastReserved:
		return "Reserved Multicast"
	default:
		return "Not Multicast"
	}
}

// MulticastType 返回多播地址的子类型。
// 仅对 Classify == Multicast 的地址有定义；
// 非多播输入返回 [NotMulticast]，不报错。
//
// 238.x.x.x 段只有 238.0.0.0/24 是基于单播前缀的多播，
// 该 /24 之外的 238 段地址归入保留。
func MulticastType(ip Addr) MulticastKind {
	if !IsMulticast(ip) {
		return NotMulticast
	}
	switch first := uint8(ip.Uint32() >> 24); {
	case first == 224:
		return MulticastWellKnown
	case first >= 225 && first <= 231:
		return MulticastTransient
	case first >= 232 && first <= 235:
		return MulticastSourceSpecific
	case first >= 236 && first <= 237:
		return MulticastGLOP
	case first == 238:
		// 仅 238.0.0.0/24
		if ip.Uint32()&0xFFFFFF00 == 0xEE000000 {
			return MulticastUnicastPrefix
		}
		return MulticastReserved
	case first == 239:
		return MulticastAdminScoped
	default:
		return MulticastReserved
	}
}
