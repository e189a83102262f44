package xmac

import (
	"fmt"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var canonicalPattern = regexp.MustCompile(`^[0-9a-f]{2}(:[0-9a-f]{2}){5}$`)

func TestAddr_String(t *testing.T) {
	tests := []struct {
		name string
		addr Addr
		want string
	}{
		{"zero", Addr{}, "00:00:00:00:00:00"},
		{"broadcast", Broadcast(), "ff:ff:ff:ff:ff:ff"},
		{"mixed", New(0x12, 0x34, 0x56, 0x78, 0x09, 0xab), "12:34:56:78:09:ab"},
		{"from_upper", MustParse("AA-BB-CC-DD-EE-FF"), "aa:bb:cc:dd:ee:ff"},
		{"from_dot", MustParse("0123.4567.89AB"), "01:23:45:67:89:ab"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.addr.String()
			assert.Equal(t, tt.want, got)
			assert.Len(t, got, canonicalLen)
			assert.Regexp(t, canonicalPattern, got)
		})
	}
}

func TestAddr_Stringer(t *testing.T) {
	addr := MustParse("01:23:45:67:89:ab")
	assert.Equal(t, "mac=01:23:45:67:89:ab", fmt.Sprintf("mac=%v", addr))
	assert.Equal(t, "01:23:45:67:89:ab", fmt.Sprintf("%s", addr))
	assert.Equal(t, `xmac.MustParse("01:23:45:67:89:ab")`, fmt.Sprintf("%#v", addr))
}

func TestAddr_AppendText(t *testing.T) {
	addr := MustParse("01:23:45:67:89:ab")
	got, err := addr.AppendText([]byte("mac="))
	require.NoError(t, err)
	assert.Equal(t, "mac=01:23:45:67:89:ab", string(got))
}

func TestAddr_String_RoundTrip(t *testing.T) {
	// 覆盖每个八位组的所有取值。
	for v := range 256 {
		for pos := range 6 {
			var b [6]byte
			b[pos] = byte(v)
			addr := AddrFrom6(b)
			s := addr.String()
			require.Regexp(t, canonicalPattern, s)
			back, err := Parse(s)
			require.NoError(t, err)
			require.Equal(t, addr, back)
		}
	}
}
