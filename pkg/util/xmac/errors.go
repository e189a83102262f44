package xmac

import (
	"errors"
	"fmt"
	"strconv"
)

// 预定义错误变量，支持 errors.Is 判断。
var (
	// ErrInvalidFormat 表示 MAC 地址文本格式无效。
	// 所有 [*ParseError] 都匹配此错误。
	ErrInvalidFormat = errors.New("xmac: invalid format")

	// ErrEmpty 表示输入为空字符串（或仅包含空白）。
	ErrEmpty = errors.New("xmac: empty input")

	// ErrInvalidDigit 表示在应为十六进制数字的位置出现了其他字符。
	ErrInvalidDigit = errors.New("xmac: invalid hex digit")

	// ErrInconsistentSeparator 表示同一输入中混用了多种分隔符。
	ErrInconsistentSeparator = errors.New("xmac: inconsistent separator")

	// ErrWrongLength 表示字符与分组均合法，但八位组总数不是 6。
	ErrWrongLength = errors.New("xmac: wrong number of octets")

	// ErrSegmentWidth 表示某个分组为空或宽度与所用记法不符。
	ErrSegmentWidth = errors.New("xmac: invalid group width")

	// ErrInvalidLength 表示字节序列长度不正确（期望 6 字节）。
	// 所有 [*LengthError] 都匹配此错误。
	ErrInvalidLength = errors.New("xmac: invalid length")

	// ErrOverflow 表示地址运算溢出（超过 ff:ff:ff:ff:ff:ff）。
	ErrOverflow = errors.New("xmac: address overflow")

	// ErrUnderflow 表示地址运算下溢（低于 00:00:00:00:00:00）。
	ErrUnderflow = errors.New("xmac: address underflow")

	// ErrOutOfRange 表示整数值超出 48 位地址空间。
	ErrOutOfRange = errors.New("xmac: value out of 48-bit range")

	// ErrNilReceiver 表示在 nil *Addr 上调用了反序列化方法。
	ErrNilReceiver = errors.New("xmac: nil receiver")

	// ErrUnsupportedType 表示 Scan、BSON 或配置解码收到了无法转换的源类型。
	ErrUnsupportedType = errors.New("xmac: unsupported source type")
)

// ParseErrorKind 标识文本解析失败的原因。
type ParseErrorKind uint8

const (
	// KindEmpty 输入为空。
	KindEmpty ParseErrorKind = iota + 1
	// KindInvalidDigit 出现非十六进制字符。
	KindInvalidDigit
	// KindInconsistentSeparator 混用分隔符。
	KindInconsistentSeparator
	// KindWrongLength 八位组数量不是 6。
	KindWrongLength
	// KindSegmentWidth 分组宽度错误。
	KindSegmentWidth
)

// String 返回错误类别的简短名称。
func (k ParseErrorKind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindInvalidDigit:
		return "invalid digit"
	case KindInconsistentSeparator:
		return "inconsistent separator"
	case KindWrongLength:
		return "wrong length"
	case KindSegmentWidth:
		return "segment width"
	default:
		return "ParseErrorKind(" + strconv.Itoa(int(k)) + ")"
	}
}

func (k ParseErrorKind) sentinel() error {
	switch k {
	case KindEmpty:
		return ErrEmpty
	case KindInvalidDigit:
		return ErrInvalidDigit
	case KindInconsistentSeparator:
		return ErrInconsistentSeparator
	case KindWrongLength:
		return ErrWrongLength
	case KindSegmentWidth:
		return ErrSegmentWidth
	default:
		return nil
	}
}

// ParseError 描述 [Parse] 无法接受的输入。
//
// 可通过 errors.As 取出具体信息，也可通过 errors.Is 与
// [ErrEmpty]、[ErrInvalidDigit]、[ErrInconsistentSeparator]、
// [ErrWrongLength]、[ErrSegmentWidth] 或 [ErrInvalidFormat] 比较。
type ParseError struct {
	// Kind 失败类别。
	Kind ParseErrorKind
	// Input 原始输入（未去除空白）。
	Input string
	// Pos 出错位置在 Input 中的字节偏移。
	// 对 KindInvalidDigit、KindInconsistentSeparator、KindSegmentWidth 有意义。
	Pos int
	// Char 出错字符，仅 KindInvalidDigit 与 KindInconsistentSeparator 设置。
	Char rune
	// Octets 观测到的八位组数量，仅 KindWrongLength 设置。
	Octets int
}

// Error 实现 error 接口。
func (e *ParseError) Error() string {
	prefix := "xmac: parse " + strconv.Quote(e.Input) + ": "
	switch e.Kind {
	case KindEmpty:
		return prefix + "empty input"
	case KindInvalidDigit:
		return prefix + fmt.Sprintf("invalid digit %q at position %d", e.Char, e.Pos)
	case KindInconsistentSeparator:
		return prefix + fmt.Sprintf("inconsistent separator %q at position %d", e.Char, e.Pos)
	case KindWrongLength:
		return prefix + fmt.Sprintf("expected 6 octets, got %d", e.Octets)
	case KindSegmentWidth:
		return prefix + fmt.Sprintf("malformed group at position %d", e.Pos)
	default:
		return prefix + e.Kind.String()
	}
}

// Unwrap 返回类别对应的哨兵错误以及 [ErrInvalidFormat]。
func (e *ParseError) Unwrap() []error {
	if s := e.Kind.sentinel(); s != nil {
		return []error{s, ErrInvalidFormat}
	}
	return []error{ErrInvalidFormat}
}

// LengthError 表示从字节序列构造地址时长度不是 6。
type LengthError struct {
	// Got 实际长度。
	Got int
}

// Error 实现 error 接口。
func (e *LengthError) Error() string {
	return "xmac: expected 6 bytes, got " + strconv.Itoa(e.Got)
}

// Unwrap 返回 [ErrInvalidLength]。
func (e *LengthError) Unwrap() error {
	return ErrInvalidLength
}
