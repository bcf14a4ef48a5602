package ttest_test

import (
	"fmt"
	"strings"

	"github.com/arloliu/tstat/table"
	"github.com/arloliu/tstat/ttest"
)

func Example() {
	data, err := table.Parse[float64](strings.NewReader("1,4\n2,6\n3,8\n"))
	if err != nil {
		panic(err)
	}

	engine, err := ttest.New(ttest.WithData(data))
	if err != nil {
		panic(err)
	}

	paired, _ := engine.T()

	_ = engine.SetType(ttest.Unpaired)
	res, _ := engine.Compute()

	fmt.Printf("paired t = %.4f\n", paired)
	fmt.Printf("unpaired t = %.4f, df = %.4f\n", res.T, res.DegreesOfFreedom)
	// Output:
	// paired t = -6.9282
	// unpaired t = 3.0984, df = 2.9412
}
