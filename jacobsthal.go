package rankfast

// jacobsthalOrder returns the order in which the count pend elements of
// one recursion level should be inserted into the main chain. Pend
// element i is b_{i+2} in the classic Ford-Johnson labeling (b_1 seeds
// the chain for free). Insertion proceeds in blocks bounded by the
// Jacobsthal numbers 1, 3, 5, 11, 21, 43, ... and runs each block in
// descending label order, so every binary search covers a range of size
// 2^k - 1 and no comparison wastes information.
func jacobsthalOrder(count int) []int {
	if count == 0 {
		return nil
	}
	order := make([]int, 0, count)
	prev, curr := 1, 3
	for {
		top := curr
		if top > count+1 {
			top = count + 1
		}
		for b := top; b > prev; b-- {
			order = append(order, b-2)
		}
		if len(order) >= count {
			return order
		}
		prev, curr = curr, curr+2*prev
	}
}
