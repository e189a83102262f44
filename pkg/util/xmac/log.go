package xmac

import "log/slog"

// LogValue 实现 [slog.LogValuer]，日志中输出规范文本形式。
func (a Addr) LogValue() slog.Value {
	return slog.StringValue(a.String())
}

// Attr 返回以 key 为键的 [slog.Attr]。
//
//	logger.Info("lease granted", xmac.Attr("mac", addr))
func Attr(key string, a Addr) slog.Attr {
	return slog.Any(key, a)
}
