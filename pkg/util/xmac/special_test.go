package xmac

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpecialAddrs(t *testing.T) {
	assert.Equal(t, Addr{}, Zero())
	assert.Equal(t, "00:00:00:00:00:00", Zero().String())
	assert.Equal(t, "ff:ff:ff:ff:ff:ff", Broadcast().String())
}

func TestAddr_Special(t *testing.T) {
	tests := []struct {
		name      string
		addr      Addr
		zero      bool
		broadcast bool
		usable    bool
	}{
		{"zero", Addr{}, true, false, false},
		{"parsed_zero", MustParse("0000.0000.0000"), true, false, false},
		{"broadcast", Broadcast(), false, true, false},
		{"unicast", MustParse("00:1a:2b:3c:4d:5e"), false, false, true},
		{"multicast", MustParse("01:00:5e:00:00:01"), false, false, true},
		{"almost_broadcast", MustParse("ff:ff:ff:ff:ff:fe"), false, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.zero, tt.addr.IsZero())
			assert.Equal(t, tt.broadcast, tt.addr.IsBroadcast())
			assert.Equal(t, tt.zero || tt.broadcast, tt.addr.IsSpecial())
			assert.Equal(t, tt.usable, tt.addr.IsUsable())
		})
	}
}
