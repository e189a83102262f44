package xmac

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddr_Bits(t *testing.T) {
	tests := []struct {
		name      string
		addr      Addr
		multicast bool
		local     bool
	}{
		{"zero", AddrFrom6([6]byte{0x00, 0, 0, 0, 0, 0}), false, false},
		{"multicast_only", AddrFrom6([6]byte{0x01, 0, 0, 0, 0, 0}), true, false},
		{"local_only", AddrFrom6([6]byte{0x02, 0, 0, 0, 0, 0}), false, true},
		{"both", AddrFrom6([6]byte{0x03, 0, 0, 0, 0, 0}), true, true},
		{"broadcast", Broadcast(), true, true},
		{"ipv4_multicast", MustParse("01:00:5e:00:00:fb"), true, false},
		{"ipv6_multicast", MustParse("33:33:00:00:00:01"), true, true},
		{"universal_vendor", MustParse("00:1a:2b:3c:4d:5e"), false, false},
		{"docker", MustParse("02:42:ac:11:00:02"), false, true},
		{"high_bits_ignored", MustParse("fc:00:00:00:00:00"), false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.multicast, tt.addr.IsMulticast())
			assert.Equal(t, !tt.multicast, tt.addr.IsUnicast())
			assert.Equal(t, tt.local, tt.addr.IsLocal())
			assert.Equal(t, !tt.local, tt.addr.IsUniversal())
		})
	}
}

func TestAddr_Bits_OnlyFirstOctet(t *testing.T) {
	a := AddrFrom6([6]byte{0x00, 0xff, 0xff, 0xff, 0xff, 0xff})
	assert.False(t, a.IsMulticast())
	assert.False(t, a.IsLocal())
}
