package pipeline_test

import (
	"fmt"

	"github.com/dblibaum/random-function-machine/chromosome"
	"github.com/dblibaum/random-function-machine/mapper"
	"github.com/dblibaum/random-function-machine/pipeline"
)

// ExampleNew builds a pipeline over a three-letter alphabet and prints the
// chromosome layout an optimizer would search over.
func ExampleNew() {
	sizes := chromosome.Sizes{
		Objects:        4,
		Types:          3,
		AttentionDepth: 2,
		AttentionWidth: 2,
		Functions:      5,
		ComputerDepth:  3,
		Outputs:        2,
	}
	p, err := pipeline.New(mapper.NewAlphabet('a', 'b', 'c'), sizes, pipeline.WithSeed(42))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, s := range p.Layout().Segments() {
		fmt.Printf("%-9s offset=%2d len=%2d genes∈[%d,%d]\n", s.Name, s.Offset, s.Len, s.Min, s.Max)
	}
	fmt.Println("total:", p.Layout().Len())
	// Output:
	// input     offset= 0 len= 3 genes∈[0,3]
	// fold      offset= 3 len=15 genes∈[0,4]
	// type      offset=18 len= 5 genes∈[0,3]
	// attention offset=23 len= 8 genes∈[0,3]
	// path      offset=31 len=24 genes∈[0,4]
	// output    offset=55 len= 4 genes∈[0,2]
	// total: 59
}
