// seehuhn.de/go/geotk - conversion tools for 2D geometry
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"io"

	"github.com/spf13/cobra"

	"seehuhn.de/go/geotk/convert"
	"seehuhn.de/go/geotk/flatten"
	"seehuhn.de/go/geotk/gcode"
	"seehuhn.de/go/geotk/kicad"
	"seehuhn.de/go/geotk/preview"
)

func svg2gcodeCmd(g *globalFlags) *cobra.Command {
	var steps flatten.Steps
	cmd := &cobra.Command{
		Use:   "svg2gcode CONF SVG [OUT]",
		Short: "Write G-code which mills along the paths of an SVG file",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := gcode.LoadConfig(args[0])
			if err != nil {
				return err
			}
			return withInput(cmd, args, 1, func(in io.Reader) error {
				return withOutput(cmd, args, 2, func(out io.Writer) error {
					return convert.SVGToGcode(out, in, conf, g.options(steps))
				})
			})
		},
	}
	stepFlags(cmd, &steps)
	return cmd
}

func svg2objCmd(g *globalFlags) *cobra.Command {
	var steps flatten.Steps
	cmd := &cobra.Command{
		Use:   "svg2obj SVG [OUT]",
		Short: "Convert the paths of an SVG file into the faces of an OBJ mesh",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withInput(cmd, args, 0, func(in io.Reader) error {
				return withOutput(cmd, args, 1, func(out io.Writer) error {
					return convert.SVGToOBJ(out, in, g.options(steps))
				})
			})
		},
	}
	stepFlags(cmd, &steps)
	return cmd
}

func svg2scadCmd(g *globalFlags) *cobra.Command {
	var steps flatten.Steps
	cmd := &cobra.Command{
		Use:   "svg2scad SVG [OUT]",
		Short: "Convert the paths of an SVG file into an OpenSCAD polygon",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withInput(cmd, args, 0, func(in io.Reader) error {
				return withOutput(cmd, args, 1, func(out io.Writer) error {
					return convert.SVGToSCAD(out, in, g.options(steps))
				})
			})
		},
	}
	stepFlags(cmd, &steps)
	return cmd
}

func svg2kicadCmd(g *globalFlags) *cobra.Command {
	var steps flatten.Steps
	var style kicad.TraceStyle
	cmd := &cobra.Command{
		Use:   "svg2kicad SVG PCB [OUT]",
		Short: "Replace the traces of a KiCad PCB file by the paths of an SVG file",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withInput(cmd, args, 0, func(svgIn io.Reader) error {
				return withInput(cmd, args, 1, func(pcbIn io.Reader) error {
					return withOutput(cmd, args, 2, func(out io.Writer) error {
						return convert.SVGToKicad(out, svgIn, pcbIn, style, g.options(steps))
					})
				})
			})
		},
	}
	stepFlags(cmd, &steps)
	f := cmd.Flags()
	f.Float64VarP(&style.Width, "width", "w", kicad.DefaultTraceStyle.Width, "trace width in mm")
	f.StringVarP(&style.Layer, "layer", "l", kicad.DefaultTraceStyle.Layer, "copper layer of the traces")
	f.IntVarP(&style.Net, "net", "n", kicad.DefaultTraceStyle.Net, "net number of the traces")
	return cmd
}

func svg2pngCmd(g *globalFlags) *cobra.Command {
	var steps flatten.Steps
	var popt preview.Options
	cmd := &cobra.Command{
		Use:   "svg2png SVG [OUT]",
		Short: "Render the flattened paths of an SVG file as a PNG image",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withInput(cmd, args, 0, func(in io.Reader) error {
				return withOutput(cmd, args, 1, func(out io.Writer) error {
					return convert.SVGToPNG(out, in, popt, g.options(steps))
				})
			})
		},
	}
	stepFlags(cmd, &steps)
	cmd.Flags().IntVar(&popt.Width, "size-x", 512, "image width in pixels")
	cmd.Flags().IntVar(&popt.Height, "size-y", 512, "image height in pixels")
	return cmd
}

func svg2pdfCmd(g *globalFlags) *cobra.Command {
	var steps flatten.Steps
	cmd := &cobra.Command{
		Use:   "svg2pdf SVG OUT",
		Short: "Draw the flattened paths of an SVG file on a PDF page",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withInput(cmd, args, 0, func(in io.Reader) error {
				return convert.SVGToPDF(args[1], in, preview.Options{}, g.options(steps))
			})
		},
	}
	stepFlags(cmd, &steps)
	return cmd
}

func obj2svgCmd() *cobra.Command {
	var opt convert.OBJOptions
	cmd := &cobra.Command{
		Use:   "obj2svg OBJ [OUT]",
		Short: "Draw the faces of a flat OBJ mesh as SVG paths",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withInput(cmd, args, 0, func(in io.Reader) error {
				return withOutput(cmd, args, 1, func(out io.Writer) error {
					return convert.OBJToSVG(out, in, opt)
				})
			})
		},
	}
	cmd.Flags().StringVar(&opt.Unit, "unit", "", "unit of the SVG document, for example mm")
	cmd.Flags().BoolVar(&opt.Outline, "outline", false, "draw only the outline of the mesh")
	return cmd
}

func kicad2svgCmd() *cobra.Command {
	var f kicad.Filter
	cmd := &cobra.Command{
		Use:   "kicad2svg PCB [OUT]",
		Short: "Draw the traces of a KiCad PCB file as SVG paths",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withInput(cmd, args, 0, func(in io.Reader) error {
				return withOutput(cmd, args, 1, func(out io.Writer) error {
					return convert.KicadToSVG(out, in, f)
				})
			})
		},
	}
	cmd.Flags().StringSliceVarP(&f.Layers, "layer", "l", nil, "only use traces on these layers")
	cmd.Flags().IntSliceVarP(&f.Nets, "net", "n", nil, "only use traces in these nets")
	return cmd
}

func dxf2kicadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dxf2kicad DXF [OUT]",
		Short: "Convert the lines of a DXF drawing into KiCad board outline records",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withInput(cmd, args, 0, func(in io.Reader) error {
				return withOutput(cmd, args, 1, func(out io.Writer) error {
					return convert.DXFToKicad(out, in)
				})
			})
		},
	}
}
