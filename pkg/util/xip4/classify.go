package xip4

// Category 是地址的权威分类标签。
// 多个谓词可能同时命中（如文档地址也落在历史保留空间内），
// 但 [Classify] 按固定优先级只返回一个标签。
type Category uint8

const (
	// CategoryPublic 表示公网可路由的全局单播地址（兜底类别）。
	CategoryPublic Category = iota
	// CategoryPrivate 表示 RFC 1918 私有地址。
	CategoryPrivate
	// CategoryLoopback 表示环回地址（127.0.0.0/8）。
	CategoryLoopback
	// CategoryLinkLocal 表示链路本地地址（169.254.0.0/16, APIPA）。
	CategoryLinkLocal
	// CategoryMulticast 表示多播地址（224.0.0.0/4, D 类）。
	CategoryMulticast
	// CategoryBroadcast 表示有限广播地址（255.255.255.255）。
	CategoryBroadcast
	// CategoryDocumentation 表示文档专用地址（TEST-NET-1/2/3）。
	CategoryDocumentation
	// CategoryBenchmarking 表示基准测试地址（198.18.0.0/15, RFC 2544）。
	CategoryBenchmarking
	// CategoryShared 表示共享地址空间（100.64.0.0/10, CGNAT, RFC 6598）。
	CategoryShared
	// CategoryReserved 表示保留地址（0.0.0.0/8、192.0.0.0/24、240.0.0.0/4）。
	CategoryReserved
)

// String 返回分类标签的字符串表示。
func (c Category) String() string {
	switch c {
	case CategoryPrivate:
		return "private"
	case CategoryLoopback:
		return "loopback"
	case CategoryLinkLocal:
		return "link-local"
	case CategoryMulticast:
		return "multicast"
	case CategoryBroadcast:
		return "broadcast"
	case CategoryDocumentation:
		return "documentation"
	case CategoryBenchmarking:
		return "benchmarking"
	case CategoryShared:
		return "shared-address"
	case CategoryReserved:
		return "reserved"
	case CategoryPublic:
		return "public"
	default:
		return "unknown"
	}
}

// IANA 特殊用途地址段边界（含两端）。
const (
	private8Lo  = 0x0A000000 // 10.0.0.0/8
	private8Hi  = 0x0AFFFFFF
	private12Lo = 0xAC100000 // 172.16.0.0/12
	private12Hi = 0xAC1FFFFF
	private16Lo = 0xC0A80000 // 192.168.0.0/16
	private16Hi = 0xC0A8FFFF

	loopbackLo = 0x7F000000 // 127.0.0.0/8
	loopbackHi = 0x7FFFFFFF

	linkLocalLo = 0xA9FE0000 // 169.254.0.0/16
	linkLocalHi = 0xA9FEFFFF

	multicastLo = 0xE0000000 // 224.0.0.0/4
	multicastHi = 0xEFFFFFFF

	broadcastAddr = 0xFFFFFFFF // 255.255.255.255/32

	testNet1Lo = 0xC0000200 // 192.0.2.0/24 (TEST-NET-1)
	testNet1Hi = 0xC00002FF
	testNet2Lo = 0xC6336400 // 198.51.100.0/24 (TEST-NET-2)
	testNet2Hi = 0xC63364FF
	testNet3Lo = 0xCB007100 // 203.0.113.0/24 (TEST-NET-3)
	testNet3Hi = 0xCB0071FF

	benchmarkLo = 0xC6120000 // 198.18.0.0/15 (RFC 2544)
	benchmarkHi = 0xC613FFFF

	sharedLo = 0x64400000 // 100.64.0.0/10 (RFC 6598)
	sharedHi = 0x647FFFFF

	thisNetLo   = 0x00000000 // 0.0.0.0/8 ("this network")
	thisNetHi   = 0x00FFFFFF
	ietfProtoLo = 0xC0000000 // 192.0.0.0/24 (IETF Protocol Assignments)
	ietfProtoHi = 0xC00000FF
	classELo    = 0xF0000000 // 240.0.0.0/4 (Class E)
	classEHi    = 0xFFFFFFFF
)

// inRange 检查 v 是否在 [lo, hi] 范围内。
func inRange(v, lo, hi uint32) bool {
	return v >= lo && v <= hi
}

// IsPrivate 报告 ip 是否为 RFC 1918 私有地址
// （10.0.0.0/8、172.16.0.0/12、192.168.0.0/16）。
func IsPrivate(ip Addr) bool {
	v := ip.Uint32()
	return inRange(v, private8Lo, private8Hi) ||
		inRange(v, private12Lo, private12Hi) ||
		inRange(v, private16Lo, private16Hi)
}

// IsLoopback 报告 ip 是否为环回地址（127.0.0.0/8）。
func IsLoopback(ip Addr) bool {
	return inRange(ip.Uint32(), loopbackLo, loopbackHi)
}

// IsLinkLocal 报告 ip 是否为链路本地地址（169.254.0.0/16）。
func IsLinkLocal(ip Addr) bool {
	return inRange(ip.Uint32(), linkLocalLo, linkLocalHi)
}

// IsMulticast 报告 ip 是否为多播地址（224.0.0.0/4）。
func IsMulticast(ip Addr) bool {
	return inRange(ip.Uint32(), multicastLo, multicastHi)
}

// IsBroadcast 报告 ip 是否为有限广播地址（255.255.255.255）。
func IsBroadcast(ip Addr) bool {
	return ip.Uint32() == broadcastAddr
}

// IsDocumentation 报告 ip 是否为文档专用地址
// （TEST-NET-1 192.0.2.0/24、TEST-NET-2 198.51.100.0/24、
// TEST-NET-3 203.0.113.0/24）。
func IsDocumentation(ip Addr) bool {
	v := ip.Uint32()
	return inRange(v, testNet1Lo, testNet1Hi) ||
		inRange(v, testNet2Lo, testNet2Hi) ||
		inRange(v, testNet3Lo, testNet3Hi)
}

// IsBenchmark 报告 ip 是否为基准测试地址（198.18.0.0/15, RFC 2544）。
func IsBenchmark(ip Addr) bool {
	return inRange(ip.Uint32(), benchmarkLo, benchmarkHi)
}

// IsSharedAddress 报告 ip 是否为共享地址空间
// （100.64.0.0/10，运营商级 NAT，RFC 6598）。
func IsSharedAddress(ip Addr) bool {
	return inRange(ip.Uint32(), sharedLo, sharedHi)
}

// IsReserved 报告 ip 是否为保留地址：
// 0.0.0.0/8（"本网络"）、192.0.0.0/24（IETF 协议分配）
// 或 240.0.0.0/4（E 类）。
// 有限广播地址 255.255.255.255 不计入，用 [IsBroadcast] 判断。
func IsReserved(ip Addr) bool {
	v := ip.Uint32()
	if v == broadcastAddr {
		return false
	}
	return inRange(v, thisNetLo, thisNetHi) ||
		inRange(v, ietfProtoLo, ietfProtoHi) ||
		inRange(v, classELo, classEHi)
}

// categoryRules 是 [Classify] 的有序判定表，自上而下首个命中即为结果。
//
// 设计决策: 重叠范围的优先级集中在这一张表里，而不是散落在
// 各调用点的 if 链中——文档/基准/共享地址段是历史保留空间的子集，
// 语义更特殊，必须排在宽泛的 Reserved 之前，否则永远不可达。
var categoryRules = [...]struct {
	match func(Addr) bool
	cat   Category
}{
	{IsPrivate, CategoryPrivate},
	{IsLoopback, CategoryLoopback},
	{IsLinkLocal, CategoryLinkLocal},
	{IsMulticast, CategoryMulticast},
	{IsBroadcast, CategoryBroadcast},
	{IsDocumentation, CategoryDocumentation},
	{IsBenchmark, CategoryBenchmarking},
	{IsSharedAddress, CategoryShared},
	{IsReserved, CategoryReserved},
}

// Classify 返回地址的权威分类标签。
// 优先级：Private → Loopback → Link-local → Multicast → Broadcast →
// Documentation → Benchmarking → Shared → Reserved → Public（兜底）。
func Classify(ip Addr) Category {
	for _, r := range categoryRules {
		if r.match(ip) {
			return r.cat
		}
	}
	return CategoryPublic
}

// IsGlobalUnicast 报告 ip 是否为公网全局单播地址，
// 即不落入任何特殊用途段：Classify(ip) == CategoryPublic。
func IsGlobalUnicast(ip Addr) bool {
	return Classify(ip) == CategoryPublic
}

// Classification 是一次 [ClassifyAll] 调用产出的完整分类快照。
// 谓词字段彼此不互斥（例如文档地址同时满足 IsReserved 的历史口径），
// Category 字段给出按优先级裁决后的唯一标签。
type Classification struct {
	// Category 是按优先级裁决的权威标签。
	Category Category

	// Version 是 IP 版本，恒为 V4。
	Version Version

	// IsPrivate 表示是否为 RFC 1918 私有地址。
	IsPrivate bool

	// IsLoopback 表示是否为环回地址。
	IsLoopback bool

	// IsLinkLocal 表示是否为链路本地地址。
	IsLinkLocal bool

	// IsMulticast 表示是否为多播地址。
	IsMulticast bool

	// IsBroadcast 表示是否为有限广播地址。
	IsBroadcast bool

	// IsDocumentation 表示是否为文档专用地址。
	IsDocumentation bool

	// IsBenchmark 表示是否为基准测试地址。
	IsBenchmark bool

	// IsSharedAddress 表示是否为共享地址空间（CGNAT）。
	IsSharedAddress bool

	// IsReserved 表示是否为保留地址。
	IsReserved bool

	// IsGlobalUnicast 表示是否为公网全局单播地址。
	IsGlobalUnicast bool

	// MulticastKind 是多播子类型；非多播地址为 NotMulticast。
	MulticastKind MulticastKind
}

// ClassifyAll 一次调用填充全部分类信息。
func ClassifyAll(ip Addr) Classification {
	cat := Classify(ip)
	return Classification{
		Category:        cat,
		Version:         ip.Version(),
		IsPrivate:       IsPrivate(ip),
		IsLoopback:      IsLoopback(ip),
		IsLinkLocal:     IsLinkLocal(ip),
		IsMulticast:     IsMulticast(ip),
		IsBroadcast:     IsBroadcast(ip),
		IsDocumentation: IsDocumentation(ip),
		IsBenchmark:     IsBenchmark(ip),
		IsSharedAddress: IsSharedAddress(ip),
		IsReserved:      IsReserved(ip),
		IsGlobalUnicast: cat == CategoryPublic,
		MulticastKind:   MulticastType(ip),
	}
}
