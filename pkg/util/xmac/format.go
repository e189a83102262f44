package xmac

const hexDigits = "0123456789abcdef"

// canonicalLen 是规范文本形式的长度：6*2 个十六进制位 + 5 个冒号。
const canonicalLen = 17

// String 返回规范文本形式：小写十六进制、冒号分隔，
// 如 01:23:45:67:89:ab。任何地址（包括零值）都输出 17 个字符。
func (a Addr) String() string {
	var buf [canonicalLen]byte
	return string(appendColon(buf[:0], a.bytes))
}

// AppendText 实现 [encoding.TextAppender]，将规范文本形式追加到 b。
func (a Addr) AppendText(b []byte) ([]byte, error) {
	return appendColon(b, a.bytes), nil
}

// GoString 实现 [fmt.GoStringer]，使 %#v 输出可直接粘贴的 Go 表达式。
func (a Addr) GoString() string {
	return `xmac.MustParse("` + a.String() + `")`
}

func appendColon(b []byte, octets [6]byte) []byte {
	for i, o := range octets {
		if i > 0 {
			b = append(b, ':')
		}
		b = append(b, hexDigits[o>>4], hexDigits[o&0x0f])
	}
	return b
}
