package reports

import (
	"fmt"
	"image/color"
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

type pieSlice struct {
	label string
	value float64
	color color.Color
}

// pieChart draws category shares as wedges of a full circle. The plot
// package has no pie plotter, so the wedges are built on vg paths.
type pieChart struct {
	slices []pieSlice
	total  float64
}

func (pc *pieChart) Plot(c draw.Canvas, _ *plot.Plot) {
	if pc.total <= 0 {
		return
	}

	center := vg.Point{
		X: (c.Min.X + c.Max.X) / 2,
		Y: (c.Min.Y + c.Max.Y) / 2,
	}
	radius := c.Max.X - c.Min.X
	if h := c.Max.Y - c.Min.Y; h < radius {
		radius = h
	}
	radius *= 0.4

	start := math.Pi / 2
	for _, s := range pc.slices {
		if s.value <= 0 {
			continue
		}
		sweep := 2 * math.Pi * s.value / pc.total

		var p vg.Path
		p.Move(center)
		p.Line(vg.Point{
			X: center.X + radius*vg.Length(math.Cos(start)),
			Y: center.Y + radius*vg.Length(math.Sin(start)),
		})
		p.Arc(center, radius, start, sweep)
		p.Close()

		c.SetColor(s.color)
		c.Fill(p)

		start += sweep
	}
}

// Thumbnail draws the legend swatch for one slice.
func (s pieSlice) Thumbnail(c *draw.Canvas) {
	pts := []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Min.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Min.Y},
	}
	c.FillPolygon(s.color, pts)
}

func renderPie(title string, totals []CategoryTotal, total float64, dest string) error {
	p := plot.New()
	p.Title.Text = title
	p.HideAxes()

	chart := &pieChart{total: total}
	for i, rec := range totals {
		s := pieSlice{
			label: rec.Category,
			value: rec.Amount,
			color: plotutil.Color(i),
		}
		chart.slices = append(chart.slices, s)

		share := 0.0
		if total != 0 {
			share = rec.Amount / total * 100
		}
		p.Legend.Add(fmt.Sprintf("%s (%.1f%%)", s.label, share), s)
	}
	p.Add(chart)
	p.Legend.Top = true
	p.Legend.Left = true

	return errors.Wrap(p.Save(8*vg.Inch, 6*vg.Inch, dest), "render pie chart")
}
