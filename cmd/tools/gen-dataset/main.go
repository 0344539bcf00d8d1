// Command gen-dataset generates synthetic CSV datasets for clustering runs.
// Points are scattered near a handful of random hyperplanes, with uniform
// noise mixed in, so a run against the output should recover the planes.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"
	"strconv"
)

func main() {
	output := flag.String("o", "points.csv", "output path")
	dims := flag.Int("dims", 3, "attribute dimensions")
	planes := flag.Int("planes", 2, "number of hyperplanes")
	perPlane := flag.Int("per-plane", 50, "points per hyperplane")
	noise := flag.Int("noise", 20, "uniform noise points")
	jitter := flag.Float64("jitter", 0.5, "max distance of plane points from their plane")
	extent := flag.Float64("extent", 50, "half-width of the coordinate range")
	seed := flag.Int64("seed", 1, "random seed")
	flag.Parse()

	if *dims < 1 {
		log.Fatalf("dims must be at least 1, got %d", *dims)
	}

	rng := rand.New(rand.NewSource(*seed))

	f, err := os.Create(*output)
	if err != nil {
		log.Fatalf("failed to create output: %v", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := make([]string, *dims)
	for i := range header {
		header[i] = fmt.Sprintf("a%d", i+1)
	}
	if err := w.Write(header); err != nil {
		log.Fatalf("failed to write header: %v", err)
	}

	total := 0
	for p := 0; p < *planes; p++ {
		normal := randomUnitVector(rng, *dims)
		offset := (rng.Float64()*2 - 1) * *extent / 2

		for i := 0; i < *perPlane; i++ {
			pt := randomPoint(rng, *dims, *extent)

			// Project onto the plane, then nudge back out by up to jitter.
			dist := dot(pt, normal) - offset
			shift := dist - (rng.Float64()*2-1)**jitter
			for d := range pt {
				pt[d] -= shift * normal[d]
			}

			if err := writePoint(w, pt); err != nil {
				log.Fatalf("failed to write point: %v", err)
			}
			total++
		}
	}

	for i := 0; i < *noise; i++ {
		if err := writePoint(w, randomPoint(rng, *dims, *extent)); err != nil {
			log.Fatalf("failed to write point: %v", err)
		}
		total++
	}

	w.Flush()
	if err := w.Error(); err != nil {
		log.Fatalf("failed to flush output: %v", err)
	}
	log.Printf("wrote %d points (%d planes, %d noise) to %s", total, *planes, *noise, *output)
}

func randomPoint(rng *rand.Rand, dims int, extent float64) []float64 {
	pt := make([]float64, dims)
	for d := range pt {
		pt[d] = (rng.Float64()*2 - 1) * extent
	}
	return pt
}

func randomUnitVector(rng *rand.Rand, dims int) []float64 {
	v := make([]float64, dims)
	norm := 0.0
	for norm == 0 {
		for d := range v {
			v[d] = rng.NormFloat64()
		}
		norm = math.Sqrt(dot(v, v))
	}
	for d := range v {
		v[d] /= norm
	}
	return v
}

func dot(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

func writePoint(w *csv.Writer, pt []float64) error {
	record := make([]string, len(pt))
	for i, v := range pt {
		record[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return w.Write(record)
}
