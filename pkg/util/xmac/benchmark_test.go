package xmac

import (
	"net"
	"testing"
)

func BenchmarkParse(b *testing.B) {
	inputs := []struct {
		name  string
		input string
	}{
		{"colon", "01:23:45:67:89:ab"},
		{"hyphen", "01-23-45-67-89-AB"},
		{"dot", "0123.4567.89ab"},
		{"bare", "0123456789ab"},
		{"invalid", "01:23-45:67:89:ab"},
	}
	for _, tc := range inputs {
		b.Run(tc.name, func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				_, _ = Parse(tc.input)
			}
		})
	}
}

func BenchmarkStdlibParseMAC(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		_, _ = net.ParseMAC("01:23:45:67:89:ab")
	}
}

func BenchmarkString(b *testing.B) {
	addr := MustParse("01:23:45:67:89:ab")
	b.ReportAllocs()
	for b.Loop() {
		_ = addr.String()
	}
}

func BenchmarkAppendText(b *testing.B) {
	addr := MustParse("01:23:45:67:89:ab")
	buf := make([]byte, 0, 64)
	b.ReportAllocs()
	for b.Loop() {
		buf, _ = addr.AppendText(buf[:0])
	}
}

func BenchmarkHash(b *testing.B) {
	addr := MustParse("01:23:45:67:89:ab")
	b.ReportAllocs()
	for b.Loop() {
		_ = addr.Hash()
	}
}

func BenchmarkCompare(b *testing.B) {
	x := MustParse("01:23:45:67:89:ab")
	y := MustParse("01:23:45:67:89:ac")
	b.ReportAllocs()
	for b.Loop() {
		_ = x.Compare(y)
	}
}

func BenchmarkMapLookup(b *testing.B) {
	m := make(map[Addr]int, 1024)
	for i, addr := range CollectN(RangeN(MustParse("02:00:00:00:00:00"), 1024), 0) {
		m[addr] = i
	}
	key := MustParse("02:00:00:00:01:ff")
	b.ReportAllocs()
	for b.Loop() {
		_ = m[key]
	}
}
