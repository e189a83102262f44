package xmac

import (
	"fmt"
	"reflect"

	"github.com/go-viper/mapstructure/v2"
)

var addrType = reflect.TypeFor[Addr]()

// DecodeHook 返回把配置值转换为 [Addr] 的 mapstructure 钩子。
//
// 目标类型为 Addr 时，string 按 [Parse] 解析，[]byte 按 6 字节原始值处理；
// 其他目标类型原样放行。和 koanf 一起使用：
//
//	k.UnmarshalWithConf("net", &cfg, koanf.UnmarshalConf{
//	    DecoderConfig: &mapstructure.DecoderConfig{
//	        DecodeHook: mapstructure.ComposeDecodeHookFunc(
//	            xmac.DecodeHook(),
//	            mapstructure.StringToTimeDurationHookFunc(),
//	        ),
//	        Result:           &cfg,
//	        WeaklyTypedInput: true,
//	    },
//	})
func DecodeHook() mapstructure.DecodeHookFuncType {
	return func(from, to reflect.Type, data any) (any, error) {
		if to != addrType {
			return data, nil
		}
		switch v := data.(type) {
		case Addr:
			return v, nil
		case string:
			return Parse(v)
		case []byte:
			return AddrFromSlice(v)
		default:
			return nil, fmt.Errorf("%w: cannot decode %s into xmac.Addr", ErrUnsupportedType, from)
		}
	}
}

// Set 实现 [flag.Value]（以及 spf13/pflag 的 Value），按 [Parse] 解析命令行参数。
func (a *Addr) Set(s string) error {
	if a == nil {
		return ErrNilReceiver
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Type 返回 pflag 帮助信息中显示的类型名。
func (a *Addr) Type() string {
	return "mac"
}
