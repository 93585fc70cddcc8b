package parallel_test

import (
	"context"
	"fmt"

	"github.com/solventlabs/solvent/parallel"
)

// ExampleMapReduce counts the even numbers in a range.
func ExampleMapReduce() {
	items := make([]int, 10)
	for i := range items {
		items[i] = i
	}
	count, err := parallel.MapReduce(context.Background(), items, 4,
		func(ctx context.Context, n int) (int, error) {
			if n%2 == 0 {
				return 1, nil
			}
			return 0, nil
		},
		func(a, b int) int { return a + b },
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(count)
	// Output:
	// 5
}

// ExampleFirstMatch finds the one candidate passing a predicate.
func ExampleFirstMatch() {
	items := []int{3, 7, 12, 19, 42, 55}
	match, err := parallel.FirstMatch(context.Background(), items, 2,
		func(ctx context.Context, n int) (int, bool, error) {
			return n, n%6 == 0, nil
		})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(match)
	// Output:
	// 42
}
