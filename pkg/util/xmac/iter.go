package xmac

import "iter"

// collectCap 是 [CollectN] 预分配容量的上限。
const collectCap = 1 << 20

// Range 返回从 from 到 to（包含两端）的升序迭代器。
// from > to 时返回空迭代器。
//
//	from := xmac.MustParse("00:00:00:00:00:01")
//	to := xmac.MustParse("00:00:00:00:00:05")
//	for addr := range xmac.Range(from, to) {
//	    fmt.Println(addr)
//	}
func Range(from, to Addr) iter.Seq[Addr] {
	lo, hi := from.Uint64(), to.Uint64()
	return func(yield func(Addr) bool) {
		for v := lo; v <= hi; v++ {
			if !yield(fromUint48(v)) {
				return
			}
		}
	}
}

// RangeReverse 返回从 to 到 from（包含两端）的降序迭代器。
// from > to 时返回空迭代器。
func RangeReverse(from, to Addr) iter.Seq[Addr] {
	lo, hi := from.Uint64(), to.Uint64()
	return func(yield func(Addr) bool) {
		if lo > hi {
			return
		}
		for v := hi; ; v-- {
			if !yield(fromUint48(v)) || v == lo {
				return
			}
		}
	}
}

// RangeN 返回从 start 开始的至多 n 个连续地址。
// n <= 0 时返回空迭代器；到达 ff:ff:ff:ff:ff:ff 后提前结束。
func RangeN(start Addr, n int) iter.Seq[Addr] {
	return func(yield func(Addr) bool) {
		v := start.Uint64()
		for i := 0; i < n && v <= maxUint48; i++ {
			if !yield(fromUint48(v)) {
				return
			}
			v++
		}
	}
}

// RangeCount 返回 from 到 to（包含两端）的地址数量，from > to 时返回 0。
// 最大值为 2^48，不会溢出。
func RangeCount(from, to Addr) uint64 {
	lo, hi := from.Uint64(), to.Uint64()
	if lo > hi {
		return 0
	}
	return hi - lo + 1
}

// CollectN 将 seq 中的地址收集到切片，最多 maxCount 个；maxCount <= 0 表示不限制。
// 不限制数量时也可直接使用 [slices.Collect]。
func CollectN(seq iter.Seq[Addr], maxCount int) []Addr {
	var result []Addr
	if maxCount > 0 {
		result = make([]Addr, 0, min(maxCount, collectCap))
	}
	for addr := range seq {
		if maxCount > 0 && len(result) >= maxCount {
			break
		}
		result = append(result, addr)
	}
	return result
}
