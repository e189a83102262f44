package xmac

const (
	multicastBit = 0x01 // 第一字节 bit 0：I/G 位
	localBit     = 0x02 // 第一字节 bit 1：U/L 位
)

// IsMulticast 报告 a 是否为组播（组）地址，即第一字节最低位为 1。
// 广播地址也是组播地址。
func (a Addr) IsMulticast() bool {
	return a.bytes[0]&multicastBit != 0
}

// IsUnicast 报告 a 是否为单播（个体）地址，即第一字节最低位为 0。
func (a Addr) IsUnicast() bool {
	return a.bytes[0]&multicastBit == 0
}

// IsLocal 报告 a 是否为本地管理地址（LAA），即第一字节次低位为 1。
// 虚拟机、容器网卡通常使用 LAA。
func (a Addr) IsLocal() bool {
	return a.bytes[0]&localBit != 0
}

// IsUniversal 报告 a 是否为全球管理地址（UAA），即第一字节次低位为 0。
// 物理网卡出厂地址通常是 UAA。
func (a Addr) IsUniversal() bool {
	return a.bytes[0]&localBit == 0
}
