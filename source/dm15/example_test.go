package dm15_test

import (
	"fmt"

	"github.com/wfirst-sn/wfirst-phot-sim/source"
	"github.com/wfirst-sn/wfirst-phot-sim/source/dm15"
)

func exampleGrid() source.Grid {
	phase := []float64{0, 5, 10, 15}
	wave := []float64{3000, 6000, 9000, 12000}

	flux := make([][]float64, len(phase))
	for i, p := range phase {
		row := make([]float64, len(wave))
		for j, w := range wave {
			row[j] = p * w
		}
		flux[i] = row
	}

	return source.Grid{Phase: phase, Wave: wave, Flux: flux}
}

func ExampleModel_Flux() {
	g := exampleGrid()

	model, err := dm15.New(g.Phase, g.Wave, g.Flux)
	if err != nil {
		panic(err)
	}

	out := model.Flux([]float64{10}, []float64{6000, 12000})
	fmt.Printf("%.1f %.1f\n", out[0][0], out[0][1])
	// Output:
	// 61791.3 123582.5
}

func ExampleLoader() {
	provider := source.TemplateFunc(func() (source.Grid, error) {
		return exampleGrid(), nil
	})

	reg := source.NewRegistry()
	if err := reg.Register("dm15", "1.0", dm15.Loader(provider)); err != nil {
		panic(err)
	}

	model, err := reg.Load("dm15")
	if err != nil {
		panic(err)
	}

	fmt.Println(model.Name(), model.Version(), model.ParamNames())
	// Output:
	// dm15 1.0 [amplitude dm15]
}
