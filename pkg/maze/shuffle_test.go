package maze

import (
	"math/rand"
	"testing"
)

func TestShuffle_ZeroRandKeepsOrder(t *testing.T) {
	items := []int{1, 2, 3, 4}
	Shuffle(items, zeroRand{})

	for i, v := range items {
		if v != i+1 {
			t.Fatalf("expected identity order, got %v", items)
		}
	}
}

func TestShuffle_IsPermutation(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for trial := 0; trial < 100; trial++ {
		items := []int{0, 1, 2, 3, 4, 5, 6}
		Shuffle(items, rng)

		seen := make(map[int]bool)
		for _, v := range items {
			seen[v] = true
		}
		if len(seen) != 7 {
			t.Fatalf("shuffle lost elements: %v", items)
		}
	}
}

func TestShuffle_EmptyAndSingle(t *testing.T) {
	Shuffle([]int{}, zeroRand{})

	single := []string{"only"}
	Shuffle(single, rand.New(rand.NewSource(1)))
	if single[0] != "only" {
		t.Errorf("single element changed: %v", single)
	}
}

// TestShuffle_Uniform 4 个元素的 24 种排列出现频率近似相等
func TestShuffle_Uniform(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping statistical test in short mode")
	}

	const trials = 240000
	const expected = trials / 24
	const tolerance = expected * 6 / 100

	rng := rand.New(rand.NewSource(2024))
	counts := make(map[[4]int]int)
	for i := 0; i < trials; i++ {
		items := []int{0, 1, 2, 3}
		Shuffle(items, rng)
		counts[[4]int{items[0], items[1], items[2], items[3]}]++
	}

	if len(counts) != 24 {
		t.Fatalf("expected all 24 permutations, got %d", len(counts))
	}
	for perm, n := range counts {
		if n < expected-tolerance || n > expected+tolerance {
			t.Errorf("permutation %v appeared %d times, expected %d±%d", perm, n, expected, tolerance)
		}
	}
}

func TestResolveSeed(t *testing.T) {
	if got := ResolveSeed(42); got != 42 {
		t.Errorf("ResolveSeed(42) = %d, want 42", got)
	}
	if got := ResolveSeed(0); got == 0 {
		t.Error("ResolveSeed(0) should derive a non-zero seed")
	}
}
