package xmac

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// MarshalText 实现 [encoding.TextMarshaler]，输出规范文本形式。
func (a Addr) MarshalText() ([]byte, error) {
	return a.AppendText(make([]byte, 0, canonicalLen))
}

// UnmarshalText 实现 [encoding.TextUnmarshaler]，接受 [Parse] 支持的所有格式。
// 空输入返回 [ErrEmpty]（零值是合法地址，不用空串表示）。
func (a *Addr) UnmarshalText(text []byte) error {
	if a == nil {
		return ErrNilReceiver
	}
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// MarshalJSON 实现 [json.Marshaler]，输出带引号的规范文本形式。
// 规范形式只含 [0-9a-f:]，无需转义。
func (a Addr) MarshalJSON() ([]byte, error) {
	buf := make([]byte, 0, canonicalLen+2)
	buf = append(buf, '"')
	buf = appendColon(buf, a.bytes)
	return append(buf, '"'), nil
}

// UnmarshalJSON 实现 [json.Unmarshaler]。
// null 设置为零值；字符串按 [Parse] 解析。
func (a *Addr) UnmarshalJSON(data []byte) error {
	if a == nil {
		return ErrNilReceiver
	}
	if string(data) == "null" {
		*a = Addr{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}
	return a.UnmarshalText([]byte(s))
}

// MarshalBinary 实现 [encoding.BinaryMarshaler]，输出 6 个原始字节。
func (a Addr) MarshalBinary() ([]byte, error) {
	return a.AsSlice(), nil
}

// AppendBinary 实现 [encoding.BinaryAppender]。
func (a Addr) AppendBinary(b []byte) ([]byte, error) {
	return append(b, a.bytes[:]...), nil
}

// UnmarshalBinary 实现 [encoding.BinaryUnmarshaler]。
// 长度不是 6 时返回 [*LengthError]。
func (a *Addr) UnmarshalBinary(data []byte) error {
	if a == nil {
		return ErrNilReceiver
	}
	parsed, err := AddrFromSlice(data)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Value 实现 [driver.Valuer]，写入规范文本形式。
func (a Addr) Value() (driver.Value, error) {
	return a.String(), nil
}

// Scan 实现 [database/sql.Scanner]。
// 支持 nil（设置为零值）、string、[]byte（6 字节视为 BINARY(6) 原始值，其余按文本解析）。
// 文本形式最短 12 字符，不会与 6 字节二进制混淆。
func (a *Addr) Scan(src any) error {
	if a == nil {
		return ErrNilReceiver
	}
	switch v := src.(type) {
	case nil:
		*a = Addr{}
		return nil
	case string:
		return a.UnmarshalText([]byte(v))
	case []byte:
		if len(v) == 6 {
			*a = Addr{bytes: [6]byte(v)}
			return nil
		}
		return a.UnmarshalText(v)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, src)
	}
}
