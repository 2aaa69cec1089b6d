// This file is part of glbench.
//
// glbench is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// glbench is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with glbench.  If not, see <https://www.gnu.org/licenses/>.

package bench

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/jetsetilly/glbench/version"
	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"
)

// Range is the minimum, mean and maximum of a series of values.
type Range struct {
	Min  float64 `yaml:"min"`
	Mean float64 `yaml:"mean"`
	Max  float64 `yaml:"max"`
}

func newRange(v []float64) Range {
	if len(v) == 0 {
		return Range{}
	}
	r := Range{Min: math.Inf(1), Max: math.Inf(-1)}
	var sum float64
	for _, f := range v {
		r.Min = min(r.Min, f)
		r.Max = max(r.Max, f)
		sum += f
	}
	r.Mean = sum / float64(len(v))
	return r
}

// Results of a completed session.
type Results struct {
	Program    string            `yaml:"program"`
	Backend    string            `yaml:"backend"`
	Kind       string            `yaml:"kind"`
	Mode       string            `yaml:"mode"`
	Size       int               `yaml:"size"`
	Rotation   int               `yaml:"rotation"`
	SwapPolicy string            `yaml:"swap_policy"`
	Textures   string            `yaml:"textures"`
	Info       map[string]string `yaml:"info"`
	Started    time.Time         `yaml:"started"`
	Duration   float64           `yaml:"duration"`
	Frames     int               `yaml:"frames"`
	FPS        Range             `yaml:"fps"`
	MiBs       Range             `yaml:"mib_per_second"`
	Reports    []Report          `yaml:"reports"`
}

// Results returns the results of the session. Must be called before the
// session is closed.
func (s *Session) Results() Results {
	r := Results{
		Program:    version.String(),
		Backend:    s.backend.Name(),
		Kind:       s.backend.Kind().String(),
		Mode:       s.cfg.Mode().String(),
		Size:       s.cfg.Size,
		Rotation:   int(s.cfg.Rotation),
		SwapPolicy: s.cur.SwapPolicy().String(),
		Textures:   "built-in",
		Info:       make(map[string]string),
		Started:    s.started,
		Duration:   s.ended.Sub(s.started).Seconds(),
		Frames:     s.frames,
		Reports:    s.reports,
	}

	if s.cfg.TextureDir != "" {
		r.Textures = s.cfg.TextureDir
	}

	for _, p := range s.Info() {
		r.Info[p.Key] = p.Value
	}

	fps := make([]float64, 0, len(s.reports))
	mibs := make([]float64, 0, len(s.reports))
	for _, rp := range s.reports {
		fps = append(fps, rp.FPS)
		mibs = append(mibs, rp.MiBPerSecond())
	}
	r.FPS = newRange(fps)
	r.MiBs = newRange(mibs)

	return r
}

// WriteResults writes the results as a YAML document.
func WriteResults(w io.Writer, r Results) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("bench: results: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("bench: results: %w", err)
	}
	return nil
}

// ReadResults reads results written by WriteResults().
func ReadResults(rd io.Reader) (Results, error) {
	var r Results
	if err := yaml.NewDecoder(rd).Decode(&r); err != nil {
		return Results{}, fmt.Errorf("bench: results: %w", err)
	}
	return r, nil
}

// WriteSummary writes a table summarising the results.
func WriteSummary(w io.Writer, r Results) error {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"", "Min", "Mean", "Max"})

	rate := "fill rate (MiB/s)"
	if r.Mode == ModeUpload.String() {
		rate = "upload rate (MiB/s)"
	}

	table.Append([]string{"fps",
		fmt.Sprintf("%.2f", r.FPS.Min), fmt.Sprintf("%.2f", r.FPS.Mean), fmt.Sprintf("%.2f", r.FPS.Max)})
	table.Append([]string{rate,
		fmt.Sprintf("%.2f", r.MiBs.Min), fmt.Sprintf("%.2f", r.MiBs.Mean), fmt.Sprintf("%.2f", r.MiBs.Max)})
	table.SetFooter([]string{"frames", fmt.Sprintf("%d", r.Frames), "reports", fmt.Sprintf("%d", len(r.Reports))})

	table.Render()

	_, err := io.Copy(w, &buf)
	return err
}

// WriteInfo writes a table of the session's context and GL information.
func (s *Session) WriteInfo(w io.Writer) error {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Property", "Value"})
	table.Append([]string{"backend", fmt.Sprintf("%s (%s)", s.backend.Name(), s.backend.Kind())})
	for _, p := range s.Info() {
		table.Append([]string{p.Key, p.Value})
	}
	table.Render()

	_, err := io.Copy(w, &buf)
	return err
}

