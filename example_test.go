package staticmap_test

import (
	"fmt"
	"sort"

	"github.com/llxisdsh/staticmap"
)

func Example() {
	tbl, err := staticmap.New[int64, int64](1024, -1, -1, staticmap.WithGroupSize(2))
	if err != nil {
		panic(err)
	}

	entries := []staticmap.Pair[int64, int64]{
		{Key: 1, Value: 10},
		{Key: 1, Value: 11},
		{Key: 2, Value: 20},
	}
	if err := tbl.InsertBatch(entries, staticmap.DefaultHash64[int64]); err != nil {
		panic(err)
	}

	var values []int64
	c := tbl.FindAll(1, staticmap.DefaultHash64[int64], staticmap.Equal64[int64])
	for c.Valid() {
		values = append(values, c.Value())
		if !c.Next() {
			break
		}
	}
	sort.Slice(values, func(i, j int) bool { return values[i] < values[j] })

	fmt.Println(values)
	fmt.Println(tbl.Count(2, staticmap.DefaultHash64[int64], staticmap.Equal64[int64]))
	// Output:
	// [10 11]
	// 1
}
