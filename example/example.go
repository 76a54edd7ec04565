package main

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/excoffierleonard/rankfast"
)

var count = 64

func main() {
	// create shuffled distinct items to rank
	items := rand.Perm(count)

	// a programmatic oracle; in an interactive program this would ask
	// a human, see cmd/rankfast
	oracle := rankfast.LessOracle(func(a, b int) bool {
		return a < b
	})

	result, err := rankfast.Rank(context.Background(), items, oracle, nil)
	if err != nil {
		fmt.Printf("err: %s\n", err.Error())
		return
	}

	for _, item := range result.Ranking {
		fmt.Printf("%d\n", item)
	}
	fmt.Printf("ranked %d items with %d comparisons (worst case %d)\n",
		count, result.Comparisons, rankfast.EstimateComparisons(count))
}
