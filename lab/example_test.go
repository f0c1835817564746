package lab_test

import (
	"fmt"

	"github.com/katalvlaran/mustard/lab"
)

// ExampleDgate displaces the vacuum and undoes the displacement.
func ExampleDgate() {
	vac, err := lab.Vacuum(1)
	if err != nil {
		fmt.Println(err)
		return
	}
	d := lab.Dgate([]float64{1.5}, []float64{-0.7})

	out, _ := d.Apply(vac)
	n, _ := out.MeanPhotonNumbers()
	fmt.Printf("displaced <n> = %.2f\n", n[0])

	back, _ := d.Inverse().Apply(out)
	n, _ = back.MeanPhotonNumbers()
	fmt.Printf("restored <n> = %.2f\n", n[0])
	fmt.Println("equal:", lab.Equal(vac, back))
	// Output:
	// displaced <n> = 2.74
	// restored <n> = 0.00
	// equal: true
}

// ExampleCompareRepresentations checks one displacement in both bases.
func ExampleCompareRepresentations() {
	s, _ := lab.DisplacedSqueezed([]float64{0.1}, []float64{0}, []float64{0.2}, []float64{0.1})
	c, err := lab.CompareRepresentations(lab.Dgate([]float64{0.3}, []float64{0}), s, 40)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(c.Gate, c.Cutoff, c.Agree())
	// Output:
	// Dgate 40 true
}
