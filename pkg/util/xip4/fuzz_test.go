package xip4

import (
	"strings"
	"testing"
)

// =============================================================================
// 点分十进制往返模糊测试
// =============================================================================

func FuzzParseFormatRoundTrip(f *testing.F) {
	f.Add("192.168.1.1")
	f.Add("0.0.0.0")
	f.Add("255.255.255.255")
	f.Add("1..2.3")
	f.Add("192.168.01.1")
	f.Add(" 10.0.0.1")

	f.Fuzz(func(t *testing.T, s string) {
		a, err := ParseAddr(s)
		if err != nil {
			return
		}
		// 解析成功意味着 s 已是规范形式，格式化必须逐字还原
		if got := a.String(); got != s {
			t.Errorf("canonical round-trip mismatch: %q → %#x → %q", s, a.Uint32(), got)
		}
	})
}

func FuzzFormatParseRoundTrip(f *testing.F) {
	f.Add(uint32(0))
	f.Add(uint32(0xC0A80101))
	f.Add(uint32(0xFFFFFFFF))

	f.Fuzz(func(t *testing.T, v uint32) {
		a := Addr(v)
		got, err := ParseAddr(a.String())
		if err != nil {
			t.Fatalf("ParseAddr(%q) failed: %v", a.String(), err)
		}
		if got != a {
			t.Errorf("round-trip mismatch: %#x → %q → %#x", v, a.String(), got.Uint32())
		}

		// 全长格式与二进制格式的往返
		full, err := ParseFull(a.FullString())
		if err != nil || full != a {
			t.Errorf("full round-trip mismatch: %#x → %q → %#x (%v)", v, a.FullString(), full.Uint32(), err)
		}
		bin, err := ParseBinary(a.Binary())
		if err != nil || bin != a {
			t.Errorf("binary round-trip mismatch: %#x → %q (%v)", v, a.Binary(), err)
		}
	})
}

// =============================================================================
// 校验器与宽松解析器一致性模糊测试
// =============================================================================

func FuzzValidateConsistency(f *testing.F) {
	f.Add("10.0.0.1")
	f.Add("300.1.2.3")
	f.Add("a.b.c.d")
	f.Add("1.2.3.4.5")

	f.Fuzz(func(t *testing.T, s string) {
		err := Validate(s)
		_, perr := ParseAddr(s)
		if (err == nil) != (perr == nil) {
			t.Fatalf("Validate and ParseAddr disagree on %q: %v vs %v", s, err, perr)
		}
		if err == nil {
			// 严格合法的输入，宽松解析器必须同样接受且结果一致
			strict, _ := ParseAddr(s)
			lenient, lerr := ParseFull(s)
			if lerr != nil || lenient != strict {
				t.Errorf("ParseFull disagrees on canonical %q: %v", s, lerr)
			}
		}
	})
}

// =============================================================================
// 分类全覆盖模糊测试
// =============================================================================

func FuzzClassifyTotal(f *testing.F) {
	f.Add(uint32(0))
	f.Add(uint32(0x0A000001))
	f.Add(uint32(0xE0000001))
	f.Add(uint32(0xFFFFFFFF))

	f.Fuzz(func(t *testing.T, v uint32) {
		ip := Addr(v)
		cat := Classify(ip)
		if cat.String() == "unknown" {
			t.Fatalf("Classify(%s) produced an unknown category", ip)
		}
		// 多播子类型与权威标签一致
		if (MulticastType(ip) != NotMulticast) != (cat == CategoryMulticast) {
			t.Errorf("MulticastType and Classify disagree on %s (cat=%s)", ip, cat)
		}
	})
}

// =============================================================================
// 掩码连续性模糊测试
// =============================================================================

func FuzzPrefixFromMask(f *testing.F) {
	f.Add(uint32(0xFFFFFF00))
	f.Add(uint32(0xFFFF00FF))
	f.Add(uint32(0))

	f.Fuzz(func(t *testing.T, mask uint32) {
		bits, err := PrefixFromMask(mask)
		if err != nil {
			if IsContiguousMask(mask) {
				t.Fatalf("PrefixFromMask rejected contiguous mask %#08x", mask)
			}
			return
		}
		if !IsContiguousMask(mask) {
			t.Fatalf("PrefixFromMask accepted non-contiguous mask %#08x", mask)
		}
		rebuilt, err := MaskFromPrefix(bits)
		if err != nil || rebuilt != mask {
			t.Errorf("mask round-trip mismatch: %#08x → %d → %#08x (%v)", mask, bits, rebuilt, err)
		}
		if strings.Count(Addr(mask).Binary(), "1") != bits {
			t.Errorf("prefix length %d does not match popcount of %#08x", bits, mask)
		}
	})
}
