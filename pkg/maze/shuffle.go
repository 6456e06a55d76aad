package maze

import (
	"math/rand"
	"time"
)

// Rand 迷宫生成使用的随机源
// *rand.Rand 满足该接口；测试中可以注入固定序列
type Rand interface {
	// Intn 返回 [0, n) 内均匀分布的整数
	Intn(n int) int
}

// ResolveSeed 返回实际使用的种子
// seed 为 0 时使用当前时间，便于日志中记录并复现
func ResolveSeed(seed int64) int64 {
	if seed == 0 {
		return time.Now().UnixNano()
	}
	return seed
}

// NewRand 用给定种子创建随机源（种子为 0 时基于时间）
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(ResolveSeed(seed)))
}

// Shuffle 原地均匀打乱（Fisher–Yates）
//
// 从第一个下标到最后一个下标依次处理，下标 i 与 [i, n) 中随机选取的 j 交换，
// 每种排列出现的概率相同。
func Shuffle[T any](items []T, rng Rand) {
	n := len(items)
	for i := 0; i < n-1; i++ {
		j := i + rng.Intn(n-i)
		items[i], items[j] = items[j], items[i]
	}
}
