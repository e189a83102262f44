package xmac

import (
	"encoding/binary"
	"net"

	"github.com/cespare/xxhash/v2"
)

// maxUint48 是 48 位地址空间的最大值（ff:ff:ff:ff:ff:ff）。
const maxUint48 = 1<<48 - 1

// Addr 表示 48 位 MAC 地址（EUI-48/MAC-48）。
//
// Addr 是不可变值类型：
//   - 任意 6 字节组合都是合法地址，包括零值 00:00:00:00:00:00
//   - 可直接比较（==）和用作 map key
//   - 并发安全，无需加锁
//
// 使用 [Parse]、[AddrFrom6] 或 [AddrFromSlice] 创建地址：
//
//	addr, err := xmac.Parse("aa:bb:cc:dd:ee:ff")
//	addr := xmac.AddrFrom6([6]byte{0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff})
type Addr struct {
	// 固定大小数组：值语义、可比较、栈分配。
	bytes [6]byte
}

// AddrFrom6 从 6 字节数组创建 MAC 地址。
func AddrFrom6(b [6]byte) Addr {
	return Addr{bytes: b}
}

// New 从 6 个八位组创建 MAC 地址，o0 为最高位八位组。
func New(o0, o1, o2, o3, o4, o5 byte) Addr {
	return Addr{bytes: [6]byte{o0, o1, o2, o3, o4, o5}}
}

// AddrFromSlice 从字节切片创建 MAC 地址。
// 切片长度必须为 6，否则返回 [*LengthError]。
// 结果不引用 b。
func AddrFromSlice(b []byte) (Addr, error) {
	if len(b) != 6 {
		return Addr{}, &LengthError{Got: len(b)}
	}
	return Addr{bytes: [6]byte(b)}, nil
}

// FromHardwareAddr 从 [net.HardwareAddr] 创建 MAC 地址。
// 长度必须为 6 字节（不支持 EUI-64 与 IPoIB 地址）。
func FromHardwareAddr(hw net.HardwareAddr) (Addr, error) {
	return AddrFromSlice(hw)
}

// FromUint64 从整数创建 MAC 地址，按大端序取低 48 位。
// v 超过 0xffffffffffff 时返回 [ErrOutOfRange]。
func FromUint64(v uint64) (Addr, error) {
	if v > maxUint48 {
		return Addr{}, ErrOutOfRange
	}
	return fromUint48(v), nil
}

func fromUint48(v uint64) Addr {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)
	return Addr{bytes: [6]byte(buf[2:])}
}

// Bytes 返回 MAC 地址的 6 字节数组副本。
func (a Addr) Bytes() [6]byte {
	return a.bytes
}

// AsSlice 返回新分配的 6 字节切片，修改不影响原值。
func (a Addr) AsSlice() []byte {
	b := a.bytes
	return b[:]
}

// HardwareAddr 返回 [net.HardwareAddr] 表示（新分配，长度 6）。
func (a Addr) HardwareAddr() net.HardwareAddr {
	return net.HardwareAddr(a.AsSlice())
}

// Uint64 以大端序将地址转换为整数，结果不超过 0xffffffffffff。
func (a Addr) Uint64() uint64 {
	var buf [8]byte
	copy(buf[2:], a.bytes[:])
	return binary.BigEndian.Uint64(buf[:])
}

// OUI 返回组织唯一标识符（前 3 字节，IEEE 分配给厂商）。
func (a Addr) OUI() [3]byte {
	return [3]byte(a.bytes[:3])
}

// NIC 返回网卡专有部分（后 3 字节，厂商分配）。
func (a Addr) NIC() [3]byte {
	return [3]byte(a.bytes[3:])
}

// Compare 按字典序比较两个地址，第 0 个八位组最高位。
// 返回 -1 (a < b)、0 (a == b) 或 1 (a > b)，可直接用于 [slices.SortFunc]。
func (a Addr) Compare(b Addr) int {
	for i := range a.bytes {
		switch {
		case a.bytes[i] < b.bytes[i]:
			return -1
		case a.bytes[i] > b.bytes[i]:
			return 1
		}
	}
	return 0
}

// Less 报告 a 是否排在 b 之前。
func (a Addr) Less(b Addr) bool {
	return a.Compare(b) < 0
}

// Hash 返回 6 个八位组的 xxhash64 值。
//
// 结果只取决于地址字节，与 == 一致，且跨进程稳定，
// 可用于分片、一致性哈希等需要确定性哈希的场景。
// 进程内 map 直接以 Addr 作 key 即可，无需调用 Hash。
func (a Addr) Hash() uint64 {
	return xxhash.Sum64(a.bytes[:])
}

// Next 返回下一个地址（当前地址 +1）。
// a 为 ff:ff:ff:ff:ff:ff 时返回 [ErrOverflow]。
func (a Addr) Next() (Addr, error) {
	v := a.Uint64()
	if v == maxUint48 {
		return Addr{}, ErrOverflow
	}
	return fromUint48(v + 1), nil
}

// Prev 返回前一个地址（当前地址 -1）。
// a 为 00:00:00:00:00:00 时返回 [ErrUnderflow]。
func (a Addr) Prev() (Addr, error) {
	v := a.Uint64()
	if v == 0 {
		return Addr{}, ErrUnderflow
	}
	return fromUint48(v - 1), nil
}
