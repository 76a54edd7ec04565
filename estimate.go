package rankfast

import "math/bits"

// EstimateComparisons returns an upper bound on the number of oracle
// queries Rank may issue for n items. The bound assumes every binary
// search takes its worst-case path over the largest prefix it could be
// given; actual runs come in at or under it depending on the oracle's
// answers.
func EstimateComparisons(n int) int {
	if n <= 1 {
		return 0
	}

	numPairs := n / 2
	total := numPairs + EstimateComparisons(numPairs)

	// Once the initial chain stands, each remaining element costs one
	// binary search over a prefix of the growing chain.
	for chainLen := numPairs + 1; chainLen < n; chainLen++ {
		total += ceilLog2(chainLen + 1)
	}

	return total
}

// ceilLog2 returns ceil(log2(v)), with values <= 1 mapping to 0.
func ceilLog2(v int) int {
	if v <= 1 {
		return 0
	}
	return bits.Len(uint(v - 1))
}
