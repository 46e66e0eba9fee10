package cloud_test

import (
	"fmt"
	"math/rand/v2"

	"github.com/matzehuels/wordscatter/pkg/render/cloud"
	"github.com/matzehuels/wordscatter/pkg/scatter"
)

func Example() {
	rng := rand.New(rand.NewPCG(1, 1^0xdeadbeef))
	cfg := scatter.DefaultConfig()

	placements, err := scatter.Layout(rng, []string{"hello", "world"}, cfg)
	if err != nil {
		fmt.Println(err)
		return
	}

	svg := cloud.RenderSVG(placements, cfg, cloud.WithBackground("#fdf6e3"))
	fmt.Println(len(svg) > 0)
	// Output:
	// true
}
