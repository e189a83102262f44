package xmac

import (
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
)

var (
	_ bson.ValueMarshaler   = Addr{}
	_ bson.ValueUnmarshaler = (*Addr)(nil)
)

// MarshalBSONValue 实现 [bson.ValueMarshaler]，以 BSON string 存储规范文本形式，
// 便于在 MongoDB 中按字符串查询和建索引。
func (a Addr) MarshalBSONValue() (byte, []byte, error) {
	typ, data, err := bson.MarshalValue(a.String())
	return byte(typ), data, err
}

// UnmarshalBSONValue 实现 [bson.ValueUnmarshaler]。
// 接受 BSON string（[Parse] 支持的任意格式）、6 字节 BSON binary 和 null（设置为零值）。
func (a *Addr) UnmarshalBSONValue(typ byte, data []byte) error {
	if a == nil {
		return ErrNilReceiver
	}
	rv := bson.RawValue{Type: bson.Type(typ), Value: data}
	switch rv.Type {
	case bson.TypeNull:
		*a = Addr{}
		return nil
	case bson.TypeString:
		s, ok := rv.StringValueOK()
		if !ok {
			return fmt.Errorf("%w: malformed BSON string", ErrInvalidFormat)
		}
		return a.UnmarshalText([]byte(s))
	case bson.TypeBinary:
		_, bin, ok := rv.BinaryOK()
		if !ok {
			return fmt.Errorf("%w: malformed BSON binary", ErrInvalidFormat)
		}
		return a.UnmarshalBinary(bin)
	default:
		return fmt.Errorf("%w: BSON %s", ErrUnsupportedType, rv.Type)
	}
}
