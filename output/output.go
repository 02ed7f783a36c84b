// Package output writes solution snapshots as gnuplot-compatible indexed
// blocks. Each 1D frame is a set of "label x u" rows followed by two blank
// lines; 2D fields are "ix iy u" rows with one blank line between grid rows.
package output

import (
	"fmt"
	"io"

	"github.com/scicomp/gofdm/utils"
)

// WriteFrame writes one 1D snapshot labeled by step index.
func WriteFrame(w io.Writer, step int, x, u utils.Vector) error {
	return writeFrame(w, fmt.Sprintf("%d", step), x, u)
}

// WriteFrameAtTime writes one 1D snapshot labeled by simulation time.
func WriteFrameAtTime(w io.Writer, t float64, x, u utils.Vector) error {
	return writeFrame(w, fmt.Sprintf("%.2f", t), x, u)
}

func writeFrame(w io.Writer, label string, x, u utils.Vector) error {
	var (
		xD = x.DataP()
		uD = u.DataP()
	)
	if len(xD) != len(uD) {
		return fmt.Errorf("output: x and u lengths differ: %d != %d", len(xD), len(uD))
	}
	for i := range xD {
		if _, err := fmt.Fprintf(w, "%s %.10f %.10f\n", label, xD[i], uD[i]); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "\n\n")
	return err
}

// WriteField writes a 2D field as indexed rows, one block per grid row.
func WriteField(w io.Writer, u utils.Matrix) error {
	var (
		nr, nc = u.Dims()
	)
	for i := 0; i < nr; i++ {
		for j := 0; j < nc; j++ {
			if _, err := fmt.Fprintf(w, "%d %d %.10f\n", i, j, u.At(i, j)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
