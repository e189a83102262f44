package xmac

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// notation 是解析时识别出的文本记法，每次 Parse 只判定一次。
type notation uint8

const (
	notationBare   notation = iota // aabbccddeeff
	notationColon                  // aa:bb:cc:dd:ee:ff
	notationHyphen                 // aa-bb-cc-dd-ee-ff
	notationDot                    // aabb.ccdd.eeff（Cisco 风格）
)

// layout 描述一种记法的分组方式。
type layout struct {
	sep      byte // 分隔符，无分隔记法为 0
	width    int  // 每组十六进制位数
	segments int  // 组数
}

var layouts = [...]layout{
	notationBare:   {sep: 0, width: 12, segments: 1},
	notationColon:  {sep: ':', width: 2, segments: 6},
	notationHyphen: {sep: '-', width: 2, segments: 6},
	notationDot:    {sep: '.', width: 4, segments: 3},
}

// Parse 解析 MAC 地址字符串。
//
// 支持的格式（十六进制大小写不敏感）：
//   - 冒号分隔：01:23:45:67:89:ab
//   - 短线分隔：01-23-45-67-89-AB
//   - 点分隔（Cisco 风格）：0123.4567.89ab
//   - 无分隔：0123456789ab
//
// 首尾空白会被忽略。第一个非十六进制字符决定整串的分隔符，
// 之后出现的其他分隔符视为 [KindInconsistentSeparator]。
// 失败时返回 [*ParseError]，不会返回部分结果。
func Parse(s string) (Addr, error) {
	p := parser{input: s}
	trimmed := strings.TrimLeftFunc(s, unicode.IsSpace)
	p.off = len(s) - len(trimmed)
	p.s = strings.TrimRightFunc(trimmed, unicode.IsSpace)
	return p.parse()
}

// MustParse 类似 [Parse]，但解析失败时 panic。
// 仅用于包级变量初始化或测试。
func MustParse(s string) Addr {
	addr, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("xmac.MustParse(%q): %v", s, err))
	}
	return addr
}

type parser struct {
	input string // 原始输入
	s     string // 去除首尾空白后的输入
	off   int    // s 在 input 中的起始偏移
}

func (p *parser) parse() (Addr, error) {
	if p.s == "" {
		return Addr{}, &ParseError{Kind: KindEmpty, Input: p.input}
	}
	n, err := p.detect()
	if err != nil {
		return Addr{}, err
	}
	if n == notationBare {
		return p.parseBare()
	}
	return p.parseSeparated(layouts[n])
}

// detect 根据第一个非十六进制字符确定记法。
func (p *parser) detect() (notation, error) {
	for i := 0; i < len(p.s); i++ {
		c := p.s[i]
		if isHex(c) {
			continue
		}
		switch c {
		case ':':
			return notationColon, nil
		case '-':
			return notationHyphen, nil
		case '.':
			return notationDot, nil
		default:
			return 0, p.charError(KindInvalidDigit, i)
		}
	}
	return notationBare, nil
}

func (p *parser) parseBare() (Addr, error) {
	if len(p.s) != 12 {
		return Addr{}, &ParseError{Kind: KindWrongLength, Input: p.input, Octets: len(p.s) / 2}
	}
	var addr Addr
	decodeHex(addr.bytes[:], p.s)
	return addr, nil
}

// parseSeparated 按 l 的分隔符逐组扫描，遇到第一个错误即返回。
func (p *parser) parseSeparated(l layout) (Addr, error) {
	var addr Addr
	perSeg := l.width / 2
	seg, start := 0, 0
	for i := 0; i <= len(p.s); i++ {
		if i < len(p.s) && p.s[i] != l.sep {
			c := p.s[i]
			switch {
			case isHex(c):
			case c == ':' || c == '-' || c == '.':
				return Addr{}, p.charError(KindInconsistentSeparator, i)
			default:
				return Addr{}, p.charError(KindInvalidDigit, i)
			}
			continue
		}
		if i-start != l.width {
			return Addr{}, &ParseError{Kind: KindSegmentWidth, Input: p.input, Pos: p.off + start}
		}
		if seg < l.segments {
			decodeHex(addr.bytes[seg*perSeg:(seg+1)*perSeg], p.s[start:i])
		}
		seg++
		start = i + 1
	}
	if seg != l.segments {
		return Addr{}, &ParseError{Kind: KindWrongLength, Input: p.input, Octets: seg * perSeg}
	}
	return addr, nil
}

func (p *parser) charError(kind ParseErrorKind, i int) *ParseError {
	r, _ := utf8.DecodeRuneInString(p.s[i:])
	return &ParseError{Kind: kind, Input: p.input, Pos: p.off + i, Char: r}
}

// decodeHex 将已校验的十六进制串 src 写入 dst，len(src) == 2*len(dst)。
func decodeHex(dst []byte, src string) {
	for i := range dst {
		dst[i] = hexValue(src[2*i])<<4 | hexValue(src[2*i+1])
	}
}

func isHex(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

// hexValue 返回十六进制字符的数值，调用方保证 c 合法。
func hexValue(c byte) byte {
	switch {
	case c <= '9':
		return c - '0'
	case c >= 'a':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}
