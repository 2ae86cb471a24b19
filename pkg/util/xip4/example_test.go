package xip4_test

import (
	"encoding/json"
	"fmt"

	"github.com/omeyang/ip4kit/pkg/util/xip4"
)

func ExampleParseAddr() {
	ip, err := xip4.ParseAddr("192.168.1.1")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%#x\n", ip.Uint32())
	fmt.Println(ip.Octets())
	fmt.Println(ip.FullString())
	// Output:
	// 0xc0a80101
	// [192 168 1 1]
	// 192.168.001.001
}

func ExampleClassify() {
	for _, s := range []string{"192.168.1.1", "8.8.8.8", "224.0.0.1", "192.0.2.1"} {
		ip := xip4.MustParseAddr(s)
		fmt.Printf("%s: %s\n", s, xip4.Classify(ip))
	}
	// Output:
	// 192.168.1.1: private
	// 8.8.8.8: public
	// 224.0.0.1: multicast
	// 192.0.2.1: documentation
}

func ExampleMulticastType() {
	ip := xip4.MustParseAddr("224.0.0.1")
	fmt.Println(xip4.MulticastType(ip))
	fmt.Println(xip4.MulticastType(xip4.MustParseAddr("239.1.2.3")))
	fmt.Println(xip4.MulticastType(xip4.MustParseAddr("8.8.8.8")))
	// Output:
	// Well-Known Multicast
	// Administratively-Scoped Multicast
	// Not Multicast
}

func ExamplePrefix_Split() {
	p := xip4.MustParsePrefix("192.168.1.0/24")
	subnets, _ := p.Split(26)
	for _, s := range subnets {
		fmt.Println(s)
	}
	// Output:
	// 192.168.1.0/26
	// 192.168.1.64/26
	// 192.168.1.128/26
	// 192.168.1.192/26
}

func ExamplePrefix_hostRange() {
	p := xip4.MustParsePrefix("192.168.1.0/24")
	fmt.Println(p.Network(), p.Broadcast())
	fmt.Println(p.FirstHost(), p.LastHost())
	fmt.Println(p.HostCount())
	// Output:
	// 192.168.1.0 192.168.1.255
	// 192.168.1.1 192.168.1.254
	// 254
}

func ExampleSummarize() {
	covering, _ := xip4.Summarize([]xip4.Prefix{
		xip4.MustParsePrefix("192.168.0.0/24"),
		xip4.MustParsePrefix("192.168.1.0/24"),
	})
	fmt.Println(covering)
	// Output:
	// 192.168.0.0/23
}

func ExampleWirePrefix() {
	w := xip4.WirePrefixFrom(xip4.MustParsePrefix("10.0.0.0/8"))
	data, _ := json.Marshal(w)
	fmt.Println(string(data))
	// Output:
	// {"network":"10.0.0.0","bits":8}
}
