package xbit32_test

import (
	"fmt"

	"github.com/omeyang/ip4kit/pkg/util/xbit32"
)

func ExampleExtract() {
	// 提取 192.168.1.1 (0xC0A80101) 的四个八位段
	v := uint32(0xC0A80101)
	for i := 0; i < 4; i++ {
		start := (3 - i) * 8
		octet, _ := xbit32.Extract(v, start, start+7)
		fmt.Println(octet)
	}
	// Output:
	// 192
	// 168
	// 1
	// 1
}

func ExampleLeadingMask() {
	mask, _ := xbit32.LeadingMask(24)
	fmt.Printf("%#08X\n", mask)
	fmt.Println(xbit32.OnesCount(mask))
	// Output:
	// 0XFFFFFF00
	// 24
}

func ExampleLeadingOnes() {
	fmt.Println(xbit32.LeadingOnes(0xFFFFFF00))
	fmt.Println(xbit32.LeadingOnes(0xFFFF00FF))
	// Output:
	// 24
	// 16
}
