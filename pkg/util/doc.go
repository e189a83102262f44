// Package util 提供通用工具相关的子包。
//
// 子包列表：
//   - xmac: MAC 地址（EUI-48）值类型，多格式解析、规范输出、排序哈希、序列化
//
// 设计原则：
//   - 值类型优先，零堆分配
//   - 错误可用 errors.Is / errors.As 判断
//   - 与标准库接口（fmt、encoding、database/sql、log/slog、flag）直接组合
package util
