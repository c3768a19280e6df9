package main

import (
	"log"
	"os"
	"strconv"

	plt "github.com/phil-mansfield/pyplot"

	"github.com/phil-mansfield/gowake/io"
	"github.com/phil-mansfield/gowake/wake"
)

// Plots the wake function of one plane of a wake configuration over a range
// of longitudinal separations.
func main() {
	if len(os.Args) != 6 {
		log.Fatalf(
			"Usage: $ %s wake_config plane s_max samples plot_file\n"+
				"plane is one of [ Longitudinal | Dipole | Quadrupole ].",
			os.Args[0],
		)
	}

	wakeFile, planeName := os.Args[1], os.Args[2]
	plotFile := os.Args[5]
	sMax, err := strconv.ParseFloat(os.Args[3], 64)
	if err != nil { log.Fatal(err.Error()) }
	samples, err := strconv.Atoi(os.Args[4])
	if err != nil { log.Fatal(err.Error()) }

	w, err := io.ReadWakeConfig(wakeFile)
	if err != nil { log.Fatal(err.Error()) }

	var pl *wake.Plane
	switch planeName {
	case "Longitudinal":
		pl = &w.Long
	case "Dipole":
		pl = &w.Dip
	case "Quadrupole":
		pl = &w.Quad
	default:
		log.Fatalf("Unrecognized plane '%s'.", planeName)
	}

	spos := make([]float64, samples)
	for i := range spos {
		spos[i] = sMax * float64(i) / float64(samples-1)
	}
	wakeF := pl.EvalAt(spos, 1.0)

	plt.Figure()
	plt.Plot(spos, wakeF, "b", plt.LW(2))
	plt.XLabel(`$s$ [m]`, plt.FontSize(16))
	plt.YLabel(`$W(s)$`, plt.FontSize(16))
	plt.Title(planeName)
	plt.Grid(plt.Axis("y"))
	plt.Grid(plt.Axis("x"), plt.Which("both"))
	plt.SaveFig(plotFile)
	plt.Execute()
}
