// scikit-aero: U.S. Standard Atmosphere 1976 tables from the command line.
package main

import (
	"bytes"
	"fmt"
	"math"
	"os"

	"github.com/akamensky/argparse"
	"github.com/hhkbp2/go-logging"
	"gonum.org/v1/gonum/floats"

	"github.com/jorgepiloto/scikit-aero/atmosphere"
)

func main() {
	parser := argparse.NewParser("skaero", "Computes standard atmosphere properties (temperature, pressure, density) at geopotential altitudes")

	start := parser.Float("", "start", &argparse.Options{
		Default: 0.0,
		Help:    "First altitude of the sweep [m]"})

	stop := parser.Float("", "stop", &argparse.Options{
		Default: 11000.0,
		Help:    "Last altitude of the sweep [m]"})

	step := parser.Float("", "step", &argparse.Options{
		Default: 500.0,
		Help:    "Altitude increment of the sweep [m]"})

	altitudes := parser.FloatList("a", "altitude", &argparse.Options{
		Help: "Explicit altitude [m]; repeatable, overrides the sweep"})

	filename := parser.String("o", "output", &argparse.Options{
		Default: "",
		Help:    "Output file path (default: stdout)"})

	check := parser.String("", "check", &argparse.Options{
		Default: "",
		Help:    "Validate the model against a PDAS-style reference table instead of printing one"})

	logLevel := parser.Selector("", "log", []string{"debug", "info", "warn", "error"}, &argparse.Options{
		Default: "info",
		Help:    "Log level"})

	err := parser.Parse(os.Args)
	if err != nil {
		fmt.Print(parser.Usage(err))
		os.Exit(1)
	}

	logger := logging.GetLogger("skaero")
	switch *logLevel {
	case "debug":
		logger.SetLevel(logging.LevelDebug)
	case "info":
		logger.SetLevel(logging.LevelInfo)
	case "warn":
		logger.SetLevel(logging.LevelWarn)
	case "error":
		logger.SetLevel(logging.LevelError)
	}

	if *check != "" {
		if err := checkReference(logger, *check); err != nil {
			logger.Errorf("check failed: %s", err.Error())
			os.Exit(1)
		}
		return
	}

	alt := *altitudes
	if len(alt) == 0 {
		alt = sweep(*start, *stop, *step)
	}
	logger.Debugf("evaluating %d altitudes", len(alt))

	df, err := atmosphere.CoesaTable(alt)
	if err != nil {
		logger.Errorf("%s", err.Error())
		os.Exit(1)
	}

	var buf *bytes.Buffer = bytes.NewBuffer([]byte{})
	df.ToCSV(buf)

	if *filename == "" {
		fmt.Print(buf.String())
	} else {
		logger.Infof("writing %s", *filename)
		err := os.WriteFile(*filename, buf.Bytes(), os.ModePerm)
		if err != nil {
			panic(err)
		}
	}
}

// sweep builds the inclusive altitude grid start..stop with the given step.
func sweep(start, stop, step float64) []float64 {
	if step <= 0 || stop < start {
		return []float64{start}
	}
	n := int(math.Floor((stop-start)/step)) + 1
	if n < 2 {
		return []float64{start}
	}
	alt := make([]float64, n)
	floats.Span(alt, start, start+float64(n-1)*step)
	return alt
}

// checkReference evaluates the model at every altitude of the reference
// table and logs the largest deviations found.
func checkReference(logger logging.Logger, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	rows, err := atmosphere.LoadReferenceTable(f)
	if err != nil {
		return err
	}

	var maxT, maxP, maxRho float64
	for _, row := range rows {
		_, t, p, rho, err := atmosphere.Coesa(row.AltKm * 1000.0)
		if err != nil {
			return err
		}
		maxT = math.Max(maxT, math.Abs(t-row.Temp))
		maxP = math.Max(maxP, math.Abs(p-row.Press))
		maxRho = math.Max(maxRho, math.Abs(rho-row.Dens))
	}
	logger.Infof("%d rows checked against %s", len(rows), path)
	logger.Infof("max deviation: T %.4g K, p %.4g Pa, rho %.4g kg/m3", maxT, maxP, maxRho)
	return nil
}
