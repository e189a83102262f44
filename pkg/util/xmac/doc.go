// Package xmac 提供 48 位 MAC 地址（EUI-48）值类型。
//
// [Addr] 以 [6]byte 保存地址，值语义、可比较、可作为 map key，不做堆分配：
//
//   - 多格式解析：冒号、短线、点（Cisco）、无分隔符，十六进制大小写不敏感
//   - 唯一规范输出：小写冒号分隔（01:23:45:67:89:ab）
//   - 排序与哈希：[Addr.Compare] 按字节字典序，[Addr.Hash] 为确定性 xxhash64
//   - 位语义：组播位（第一字节 bit 0）、本地管理位（第一字节 bit 1）
//   - 序列化：Text/JSON/Binary/SQL/BSON，slog、flag 和 koanf 配置集成
//
// # 快速示例
//
//	addr, err := xmac.Parse("01-23-45-67-89-AB")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(addr)                 // 01:23:45:67:89:ab
//	fmt.Println(addr.IsMulticast())   // true
//
// # 有效性
//
// 任意 6 字节组合都是合法地址，包括零值 Addr{}（00:00:00:00:00:00），
// 格式约束只存在于文本层。零值与解析 "00:00:00:00:00:00" 的结果相同。
// 资产识别等业务场景应使用 [Addr.IsUsable] 排除全零与广播地址。
//
// # 错误处理
//
// 文本解析失败返回 [*ParseError]，字节长度错误返回 [*LengthError]。
// 两者都可用 errors.As 取出细节，也可用 errors.Is 与哨兵错误比较：
//
//	_, err := xmac.Parse("01:23-45:67:89:ab")
//	errors.Is(err, xmac.ErrInconsistentSeparator) // true
//	errors.Is(err, xmac.ErrInvalidFormat)         // true
//
// 设计决策: 分隔符由第一个非十六进制字符确定，整串只允许这一种分隔符。
// 解析前会去除首尾空白，错误中的位置是原始输入中的字节偏移。
package xmac
