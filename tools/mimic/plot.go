package mimic

import (
	"bytes"
	"image/color"
	"math"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ResidueTicks labels integer positions 1..n with the table's residue letters.
type ResidueTicks struct {
	Residues []byte
}

func (rt ResidueTicks) Ticks(min, max float64) []plot.Tick {
	var ticks []plot.Tick
	for i := int(math.Ceil(min)); i <= int(math.Floor(max)); i++ {
		if i < 1 || i > len(rt.Residues) {
			continue
		}
		ticks = append(ticks, plot.Tick{
			Value: float64(i),
			Label: string(rt.Residues[i-1]),
		})
	}
	return ticks
}

// ObservedComposition returns, in table order, the fraction of each table
// residue among the generated records (headers starting with prefix).
func ObservedComposition(table FrequencyTable, recs []OutputRecord, prefix string) []float64 {
	var counts [256]float64
	var total float64
	for _, r := range recs {
		if !strings.HasPrefix(r.Header, prefix) {
			continue
		}
		for i := 0; i < len(r.Seq); i++ {
			if IsStandard(r.Seq[i]) {
				counts[r.Seq[i]]++
				total++
			}
		}
	}
	out := make([]float64, len(table.residues))
	if total == 0 {
		return out
	}
	for i, res := range table.residues {
		out[i] = counts[res] / total
	}
	return out
}

// CompositionPlotSVG draws the frequency table against the composition
// actually observed in the generated records, as percentages.
func CompositionPlotSVG(table FrequencyTable, observed []float64) (string, error) {
	p := plot.New()
	p.Title.Text = "Amino Acid Composition"
	p.X.Label.Text = "Residue"
	p.Y.Label.Text = "Frequency (%)"
	p.Y.Min = 0
	p.X.Tick.Marker = ResidueTicks{Residues: table.Residues()}
	p.Add(plotter.NewGrid())

	expectedXY := make(plotter.XYs, len(table.weights))
	observedXY := make(plotter.XYs, len(table.weights))
	for i := range table.weights {
		expectedXY[i].X = float64(i + 1)
		expectedXY[i].Y = table.weights[i] * 100
		observedXY[i].X = float64(i + 1)
		if i < len(observed) {
			observedXY[i].Y = observed[i] * 100
		}
	}

	expLine, err := plotter.NewLine(expectedXY)
	if err != nil {
		return "", err
	}
	expLine.Color = color.RGBA{R: 255, G: 100, B: 100, A: 255}
	expLine.Width = vg.Points(2)
	expLine.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}

	obsLine, err := plotter.NewLine(observedXY)
	if err != nil {
		return "", err
	}
	obsLine.Color = color.RGBA{R: 50, G: 100, B: 200, A: 255}
	obsLine.Width = vg.Points(2)

	p.Add(expLine, obsLine)
	p.Legend.Add("Frequency table", expLine)
	p.Legend.Add("Generated", obsLine)
	p.Legend.Top = true

	var buf bytes.Buffer
	writer, err := p.WriterTo(10*vg.Inch, 4*vg.Inch, "svg")
	if err != nil {
		return "", err
	}
	if _, err := writer.WriteTo(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
