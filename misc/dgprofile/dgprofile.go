// dgprofile creates a plot of DNA duplex free energy over a range of
// solution conditions.
package main

import (
	"flag"
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"bitbucket.org/Davydov/gotherm/thermo"
)

func main() {
	seq := flag.String("seq", "", "DNA sequence")
	vary := flag.String("vary", "temperature", "parameter to vary (temperature or salt)")
	from := flag.Float64("from", 25, "range start")
	to := flag.Float64("to", 75, "range end")
	step := flag.Float64("step", 1, "range step")
	temp := flag.Float64("t", thermo.DefaultTemperature, "fixed temperature, °C")
	salt := flag.Float64("s", thermo.DefaultSaltConc, "fixed monovalent cation concentration, M")
	out := flag.String("out", "profile.png", "output file name")
	flag.Parse()

	if *seq == "" {
		panic("no sequence (-seq)")
	}

	m, err := thermo.New(*temp, *salt)
	if err != nil {
		panic(err)
	}

	pts := make(plotter.XYs, 0)
	for x := *from; x <= *to; x += *step {
		switch *vary {
		case "temperature":
			err = m.SetTemperature(x)
		case "salt":
			err = m.SetSaltConc(x)
		default:
			panic("unknown parameter to vary: " + *vary)
		}
		if err != nil {
			panic(err)
		}
		dG, err := m.DeltaG(*seq)
		if err != nil {
			panic(err)
		}
		fmt.Println(x, dG)
		pts = append(pts, plotter.XY{X: x, Y: dG})
	}

	p := plot.New()
	p.X.Label.Text = *vary
	p.Y.Label.Text = "deltaG, kcal/mol"

	err = plotutil.AddLinePoints(p, *seq, pts)
	if err != nil {
		panic(err)
	}

	if err := p.Save(4*vg.Inch, 4*vg.Inch, *out); err != nil {
		panic(err)
	}

}
