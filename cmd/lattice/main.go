package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/kr/pretty"
	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/lattice"
	"github.com/osuushi/lattice/advanced"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
	"gopkg.in/yaml.v3"
)

// Command line companion to the gluing animation. It prints the decomposition
// of the outer triangle, individual animation steps, and validity checks for
// polygons read from stdin. Polygons on stdin are newline separated points in
// the form "x y", with each polygon separated by an extra newline.

const logFlags = log.Ltime | log.Lshortfile

var verboseLogger *log.Logger = log.New(io.Discard, "", 0)

var (
	app        = kingpin.New("lattice", "Explore the unit triangle decomposition behind the lattice area theorem.")
	configPath = app.Flag("config", "YAML configuration file.").Short('c').ExistingFile()
	legFlag    = app.Flag("leg", "Leg length of the outer triangle, overriding the configuration.").Int()
	verbose    = app.Flag("verbose", "Log what is being computed.").Short('v').Bool()
	debug      = app.Flag("debug", "Dump internal structures.").Bool()
	noColor    = app.Flag("no-color", "Disable colored output.").Bool()

	sequenceCmd  = app.Command("sequence", "Print the triangles in gluing order.")
	sequenceYAML = sequenceCmd.Flag("yaml", "Emit YAML.").Bool()

	stepCmd   = app.Command("step", "Show one step of the gluing animation.")
	stepIndex = stepCmd.Arg("index", "Step index, starting at 0.").Required().Int()
	stepYAML  = stepCmd.Flag("yaml", "Emit YAML.").Bool()

	validateCmd = app.Command("validate", "Validate polygons read from stdin.")

	additiveCmd = app.Command("additive", "Check the configured additive quadrilateral.")

	drawCmd    = app.Command("draw", "Render a step to a PNG for debugging.")
	drawIndex  = drawCmd.Arg("index", "Step index, starting at 0.").Required().Int()
	drawOut    = drawCmd.Flag("out", "Output file.").Default("/tmp/lattice_step.png").String()
	drawScale  = drawCmd.Flag("scale", "Pixels per lattice unit.").Default("60").Float64()
	drawImgcat = drawCmd.Flag("imgcat", "Print the image in the terminal (iTerm only).").Bool()
)

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	log.SetFlags(logFlags)
	if *verbose {
		verboseLogger = log.New(os.Stderr, "[lattice] ", log.Ltime|log.Lmsgprefix)
	}

	config, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *legFlag != 0 {
		config.Outer.Leg = *legFlag
	}
	au := aurora.NewAurora(!*noColor)

	switch command {
	case sequenceCmd.FullCommand():
		err = runSequence(os.Stdout, config, *sequenceYAML)
	case stepCmd.FullCommand():
		err = runStep(os.Stdout, config, *stepIndex, *stepYAML)
	case validateCmd.FullCommand():
		err = runValidate(os.Stdout, os.Stdin, au)
	case additiveCmd.FullCommand():
		err = runAdditive(os.Stdout, config, au)
	case drawCmd.FullCommand():
		err = runDraw(config, *drawIndex, *drawOut, *drawScale)
		if err == nil && *drawImgcat {
			imgcat.CatFile(*drawOut, os.Stdout)
		}
	}
	if err != nil {
		log.Fatalf("%s: %v", command, err)
	}
}

func newSession(config Config) (*lattice.Session, error) {
	verboseLogger.Printf("decomposing outer triangle at %v with leg %d", config.Outer.Origin, config.Outer.Leg)
	session, err := lattice.NewSession(config.Outer)
	if err != nil {
		return nil, errors.Wrap(err, "building session")
	}
	verboseLogger.Printf("sequenced %d triangles, %d fallbacks", session.Len(), session.Fallbacks())
	return session, nil
}

func runSequence(w io.Writer, config Config, asYAML bool) error {
	session, err := newSession(config)
	if err != nil {
		return err
	}
	sequence := session.Sequence()
	if *debug {
		pretty.Fprintf(w, "%# v\n", sequence)
	}
	if asYAML {
		return encodeYAML(w, sequence)
	}
	for i, tri := range sequence {
		fmt.Fprintf(w, "%3d  %v\n", i, tri)
	}
	return nil
}

func runStep(w io.Writer, config Config, index int, asYAML bool) error {
	session, err := newSession(config)
	if err != nil {
		return err
	}
	step, err := session.Step(index)
	if err != nil {
		return err
	}
	if *debug {
		pretty.Fprintf(w, "%# v\n", step)
	}
	if asYAML {
		return encodeYAML(w, step)
	}

	fmt.Fprintf(w, "step %d of %d: %v\n", step.Index, session.Len(), step.Triangle)
	fmt.Fprintf(w, "  hull before: %v\n", step.Before.Points)
	fmt.Fprintf(w, "  hull after:  %v\n", step.After.Points)
	if step.SharedEdge != nil {
		fmt.Fprintf(w, "  shared edge: %v - %v\n", step.SharedEdge.Start, step.SharedEdge.End)
	} else {
		fmt.Fprintf(w, "  shared edge: none\n")
	}
	return nil
}

func runValidate(w io.Writer, in io.Reader, au aurora.Aurora) error {
	polygons, err := readPolygons(in)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Read %d polygons\n", len(polygons))
	for i, points := range polygons {
		fmt.Fprintf(w, "polygon %d: %d vertices\n", i+1, len(points))
		fmt.Fprintf(w, "  simple: %s\n", verdict(au, lattice.IsSimplePolygon(points)))
		if len(points) == 4 {
			fmt.Fprintf(w, "  split by diagonal: %s\n", verdict(au, lattice.TrianglesOnOppositeSides(points)))
		}
		boundary := lattice.CollectBoundaryPoints(points)
		fmt.Fprintf(w, "  boundary points (%d): %v\n", len(boundary), boundary)
	}
	return nil
}

func runAdditive(w io.Writer, config Config, au aurora.Aurora) error {
	editor, err := lattice.NewEditor(config.Additive, true)
	if err != nil {
		fmt.Fprintf(w, "additive configuration %v: %s\n", config.Additive, verdict(au, false))
		return nil
	}
	fmt.Fprintf(w, "additive configuration %v: %s\n", editor.Vertices(), verdict(au, true))

	var vertices [4]lattice.Point
	copy(vertices[:], editor.Vertices())
	guard := lattice.OracleGuard{Logger: verboseLogger}
	if !guard.Available() {
		verboseLogger.Printf("no counting oracle, only the shared edge is reported")
	}
	snapshot := guard.AdditiveSnapshot(vertices)
	edge := snapshot.SharedEdge
	fmt.Fprintf(w, "shared edge %v - %v: %d interior lattice points %v\n",
		edge.Endpoints[0], edge.Endpoints[1], edge.InteriorCount, edge.Points)
	if *debug {
		pretty.Fprintf(w, "%# v\n", snapshot)
	}
	return nil
}

func runDraw(config Config, index int, out string, scale float64) error {
	session, err := newSession(config)
	if err != nil {
		return err
	}
	if err := advanced.DrawStep(out, session.Sequence(), session.Outer(), index, scale); err != nil {
		return err
	}
	verboseLogger.Printf("wrote step %d to %s", index, out)
	return nil
}

func verdict(au aurora.Aurora, ok bool) aurora.Value {
	if ok {
		return au.Green("valid")
	}
	return au.Red("invalid")
}

func encodeYAML(w io.Writer, v interface{}) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(v); err != nil {
		return errors.Wrap(err, "encoding yaml")
	}
	return encoder.Close()
}

func readPolygons(in io.Reader) ([][]lattice.Point, error) {
	polygons := [][]lattice.Point{}
	// Scan lines
	scanner := bufio.NewScanner(in)
	points := []lattice.Point{}
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())

		// If it's empty, and we collected any points, this is the end of the polygon
		if line == "" {
			if len(points) > 0 {
				polygons = append(polygons, points)
				points = []lattice.Point{}
			}
			continue
		}

		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading polygons")
	}

	// Handle trailing polygon if any
	if len(points) > 0 {
		polygons = append(polygons, points)
	}
	return polygons, nil
}

func parsePoint(line string) (lattice.Point, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return lattice.Point{}, errors.Errorf("expected \"x y\", got %q", line)
	}
	x, err := strconv.Atoi(parts[0])
	if err != nil {
		return lattice.Point{}, errors.Wrap(err, "x")
	}
	y, err := strconv.Atoi(parts[1])
	if err != nil {
		return lattice.Point{}, errors.Wrap(err, "y")
	}
	return lattice.Point{X: x, Y: y}, nil
}
