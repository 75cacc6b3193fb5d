package main

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"github.com/rookidroid/hexapod/components/controller"
	"github.com/rookidroid/hexapod/kinematics"
	"github.com/samber/lo"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// renderTable returns a table with one row per leg per waypoint.
func renderTable(m motion, angles []kinematics.JointAngles) string {
	t := table.NewWriter()
	t.SetTitle(m.Name)
	t.AppendHeader(table.Row{"#", "Leg", "X", "Y", "Z", "Coxa", "Femur", "Tibia"})

	for i, p := range m.Trajectory {
		for _, leg := range kinematics.Legs {
			j := angles[i][leg]
			t.AppendRow(table.Row{
				i,
				leg,
				fmt.Sprintf("%.2f", p[leg].X),
				fmt.Sprintf("%.2f", p[leg].Y),
				fmt.Sprintf("%.2f", p[leg].Z),
				fmt.Sprintf("%.2f", j.Coxa),
				fmt.Sprintf("%.2f", j.Femur),
				fmt.Sprintf("%.2f", j.Tibia),
			})
		}
		if i < len(m.Trajectory)-1 {
			t.AppendSeparator()
		}
	}

	return t.Render()
}

func renderCommands(cmds []controller.Command) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Command", "Gait", "Description"})
	for _, c := range cmds {
		g := "-"
		if c.Gait {
			g = c.Kind.String()
		}
		t.AppendRow(table.Row{c.Name, g, c.Help})
	}
	return t.Render()
}

// lut is the joint angles of one motion, as written to the C header.
type lut struct {
	Name   string
	Angles []kinematics.JointAngles
}

func (l lut) Ident() string {
	return strings.ToLower(strings.TrimSuffix(l.Name, ":"))
}

var lutTemplate = template.Must(template.New("lut").Funcs(template.FuncMap{
	"upper": strings.ToUpper,
	"deg": func(v float64) string {
		return fmt.Sprintf("%.2f", v)
	},
}).Parse(`// Joint angles (coxa, femur, tibia) in degrees, per step and leg.
// Generated by hexapod lut.

#ifndef LUT_H
#define LUT_H
{{range .}}
// {{.Name}}
#define LUT_{{upper .Ident}}_STEPS {{len .Angles}}
static const float lut_{{.Ident}}[{{len .Angles}}][6][3] = {
{{- range .Angles}}
  { {{- range $i, $j := .}}{{if $i}}, {{end}}{ {{- deg $j.Coxa}}, {{deg $j.Femur}}, {{deg $j.Tibia -}} }{{end -}} },
{{- end}}
};
{{end}}
#endif  // LUT_H
`))

// renderLUT writes the C header with the given lookup tables.
func renderLUT(w io.Writer, luts []lut) error {
	dup := lo.FindDuplicatesBy(luts, func(l lut) string {
		return l.Ident()
	})
	if len(dup) > 0 {
		return errors.Errorf("duplicate lookup table: %s", dup[0].Ident())
	}

	return lutTemplate.Execute(w, luts)
}

// renderPlot draws the path of every foot, from above (X/Y) and from the
// side (Y/Z), and saves it as an image.
func renderPlot(m motion, path string) error {
	top := plot.New()
	top.Title.Text = m.Name + " (top)"
	top.X.Label.Text = "x (mm)"
	top.Y.Label.Text = "y (mm)"

	side := plot.New()
	side.Title.Text = m.Name + " (side)"
	side.X.Label.Text = "y (mm)"
	side.Y.Label.Text = "z (mm)"

	for _, leg := range kinematics.Legs {
		xy := make(plotter.XYs, len(m.Trajectory))
		yz := make(plotter.XYs, len(m.Trajectory))
		for i, p := range m.Trajectory {
			xy[i].X, xy[i].Y = p[leg].X, p[leg].Y
			yz[i].X, yz[i].Y = p[leg].Y, p[leg].Z
		}

		c := plotutil.Color(int(leg))
		if err := addLine(top, leg.String(), xy, c); err != nil {
			return err
		}
		if err := addLine(side, leg.String(), yz, c); err != nil {
			return err
		}
	}

	const w, h = 6 * vg.Inch, 5 * vg.Inch
	img := vgimg.New(2*w, h)
	dc := draw.New(img)
	canvases := plot.Align([][]*plot.Plot{{top, side}}, draw.Tiles{Rows: 1, Cols: 2}, dc)
	top.Draw(canvases[0][0])
	side.Draw(canvases[0][1])

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = vgimg.PngCanvas{Canvas: img}.WriteTo(f)
	return errors.Wrapf(err, "while saving %s", path)
}

func addLine(p *plot.Plot, name string, pts plotter.XYs, c color.Color) error {
	l, err := plotter.NewLine(pts)
	if err != nil {
		return errors.Wrapf(err, "while plotting %s", name)
	}

	l.Color = c
	p.Add(l)
	p.Legend.Add(name, l)
	return nil
}
