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

// Command geotk converts 2D geometry between SVG, G-code, OBJ, KiCad,
// DXF and OpenSCAD files.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"seehuhn.de/go/geotk"
	"seehuhn.de/go/geotk/convert"
	"seehuhn.de/go/geotk/flatten"
)

type globalFlags struct {
	verbose int
	quiet   int
	strict  bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}
	root := &cobra.Command{
		Use:          "geotk",
		Short:        "Conversion tools for 2D geometry",
		Version:      geotk.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			h := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: g.level()})
			geotk.SetLogger(slog.New(h))
		},
	}
	root.Flags().BoolP("version", "V", false, "print the version and exit")
	root.PersistentFlags().CountVarP(&g.verbose, "verbose", "v", "print more information; repeat for debug output")
	root.PersistentFlags().CountVarP(&g.quiet, "quiet", "q", "suppress warnings")
	root.PersistentFlags().BoolVar(&g.strict, "strict", false, "fail on the first invalid shape")

	root.AddCommand(
		svg2gcodeCmd(g),
		svg2objCmd(g),
		svg2scadCmd(g),
		svg2kicadCmd(g),
		svg2pngCmd(g),
		svg2pdfCmd(g),
		obj2svgCmd(),
		kicad2svgCmd(),
		dxf2kicadCmd(),
	)
	return root
}

// level maps the -v and -q counts to a log level.
func (g *globalFlags) level() slog.Level {
	l := slog.LevelWarn + slog.Level(4*(g.quiet-g.verbose))
	return max(slog.LevelDebug, min(slog.LevelError, l))
}

// stepFlags registers the flattening flags of SVG input commands.
func stepFlags(cmd *cobra.Command, s *flatten.Steps) {
	f := cmd.Flags()
	f.Float64VarP(&s.Min, "minimum-step", "M", 0, "minimum segment length for curves")
	f.Float64VarP(&s.Angle, "angle-step", "A", 0, "target segment angle for curves, in degrees")
	f.Float64VarP(&s.Dist, "distance-step", "D", 0, "target segment length for curves")
}

func (g *globalFlags) options(s flatten.Steps) convert.Options {
	return convert.Options{Steps: s, Strict: g.strict}
}

// openInput opens a named file, or standard input for "-".
func openInput(cmd *cobra.Command, name string) (io.ReadCloser, error) {
	if name == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	return os.Open(name)
}

// withOutput runs write with the output file given by args[i], or with
// standard output if there are not enough arguments.
func withOutput(cmd *cobra.Command, args []string, i int, write func(io.Writer) error) error {
	if i >= len(args) || args[i] == "-" {
		return write(cmd.OutOrStdout())
	}
	fd, err := os.Create(args[i])
	if err != nil {
		return err
	}
	if err := write(fd); err != nil {
		fd.Close()
		return err
	}
	return fd.Close()
}

// withInput opens the input file given by args[i] for the duration of
// run.
func withInput(cmd *cobra.Command, args []string, i int, run func(io.Reader) error) error {
	in, err := openInput(cmd, args[i])
	if err != nil {
		return err
	}
	defer in.Close()
	if err := run(in); err != nil {
		return fmt.Errorf("%s: %w", args[i], err)
	}
	return nil
}
