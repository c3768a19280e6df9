package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"

	"gonum.org/v1/gonum/stat"

	"github.com/phil-mansfield/gowake/bunch"
	"github.com/phil-mansfield/gowake/io"
	"github.com/phil-mansfield/gowake/thread"
)

func main() {
	var (
		wakeFile, bunchFile, outFile string
		stren, betax                 float64
		threads                      int
		exampleConfig                bool
	)

	flag.StringVar(
		&wakeFile, "Wake", "",
		"Wake configuration file. Print an example with -ExampleConfig.",
	)
	flag.StringVar(
		&bunchFile, "Bunch", "",
		"Bunch snapshot file: one particle per row, ordered head first, "+
			"with the longitudinal position in column 0 and the "+
			"transverse offset in column 1.",
	)
	flag.StringVar(
		&outFile, "Out", "",
		"File the kicked bunch is written to. If empty, only the kick "+
			"totals are reported.",
	)
	flag.Float64Var(&stren, "Strength", 1.0, "Wake strength.")
	flag.Float64Var(
		&betax, "Betax", 1.0,
		"Beta function at the kick location. Scales the transverse planes.",
	)
	flag.IntVar(
		&threads, "Threads", runtime.NumCPU(),
		"Number of threads used. Default is the number of logical cores.",
	)
	flag.BoolVar(
		&exampleConfig, "ExampleConfig", false,
		"Prints an example wake configuration file to stdout.",
	)

	flag.Parse()

	if exampleConfig {
		fmt.Println(io.ExampleWakeFile)
		return
	}

	if wakeFile == "" || bunchFile == "" {
		log.Fatalf("Usage: $ %s -Wake wake.cfg -Bunch bunch.dat", os.Args[0])
	}
	if err := thread.Set(threads); err != nil {
		log.Fatal(err.Error())
	}

	w, err := io.ReadWakeConfig(wakeFile)
	if err != nil { log.Fatal(err.Error()) }
	b, err := bunch.Read(bunchFile)
	if err != nil { log.Fatal(err.Error()) }
	log.Printf("%d particles read.", len(b.Particles))

	wl, wt, err := w.ApplyKicks(b, stren, betax)
	if err != nil { log.Fatal(err.Error()) }

	log.Printf("Longitudinal kick total: %g", wl)
	log.Printf("Transverse kick total:   %g", wt)

	de := make([]float64, len(b.Particles))
	xl := make([]float64, len(b.Particles))
	for i := range b.Particles {
		de[i] = b.Particles[i].De
		xl[i] = b.Particles[i].Xl
	}
	deMean, deStd := stat.MeanStdDev(de, nil)
	xlMean, xlStd := stat.MeanStdDev(xl, nil)
	log.Printf("de: mean %g, std dev %g", deMean, deStd)
	log.Printf("xl: mean %g, std dev %g", xlMean, xlStd)

	if outFile != "" {
		if err := writeBunch(outFile, b); err != nil {
			log.Fatal(err.Error())
		}
		log.Printf("Kicked bunch written to %s.", outFile)
	}
}

func writeBunch(fname string, b *bunch.Bunch) error {
	f, err := os.Create(fname)
	if err != nil { return err }
	defer f.Close()

	fmt.Fprintf(f, "# ss xx xl de\n")
	for i := range b.Particles {
		p := &b.Particles[i]
		_, err = fmt.Fprintf(f, "%g %g %g %g\n", p.Ss, p.Xx, p.Xl, p.De)
		if err != nil { return err }
	}
	return nil
}
