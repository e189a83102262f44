package xmac

// Zero 返回全零地址 00:00:00:00:00:00，与零值 Addr{} 相同。
func Zero() Addr { return Addr{} }

// Broadcast 返回广播地址 ff:ff:ff:ff:ff:ff。
func Broadcast() Addr { return fromUint48(maxUint48) }

// IsZero 报告 a 是否为全零地址。
func (a Addr) IsZero() bool {
	return a == Addr{}
}

// IsBroadcast 报告 a 是否为广播地址。
func (a Addr) IsBroadcast() bool {
	return a == Broadcast()
}

// IsSpecial 报告 a 是否为全零或广播地址。
func (a Addr) IsSpecial() bool {
	return a.IsZero() || a.IsBroadcast()
}

// IsUsable 报告 a 是否可用于资产识别等业务场景，即非全零、非广播。
//
//	addr, err := xmac.Parse(macStr)
//	if err != nil || !addr.IsUsable() {
//	    return nil
//	}
func (a Addr) IsUsable() bool {
	return !a.IsSpecial()
}
