// Package export serializes a computed trajectory as CSV rows.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// Write emits a header row followed by one (t, y) row per mesh point.
// Values use their shortest exact decimal rendering.
func Write(w io.Writer, mesh, solution []float64) error {
	if len(mesh) != len(solution) {
		return fmt.Errorf("export: mesh has %d points, solution has %d", len(mesh), len(solution))
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"t", "y(t)"}); err != nil {
		return err
	}
	for i, t := range mesh {
		row := []string{
			strconv.FormatFloat(t, 'g', -1, 64),
			strconv.FormatFloat(solution[i], 'g', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile writes the trajectory to a CSV file at path, creating or
// truncating it.
func WriteFile(path string, mesh, solution []float64) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if err := Write(f, mesh, solution); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
