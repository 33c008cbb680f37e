package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/benjaminschreck/go-caliper/pkg/caliper"
	"github.com/benjaminschreck/go-caliper/pkg/caliper/units"
)

const version = "0.1.0"

var (
	errColor = color.New(color.FgRed)
	okColor  = color.New(color.FgGreen)
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "inspect":
		err = runInspect(os.Args[2:])
	case "resize":
		err = runResize(os.Args[2:])
	case "check":
		err = runCheck(os.Args[2:])
	case "version":
		fmt.Printf("caliper version %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		errColor.Fprintf(os.Stderr, "Unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		errColor.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("caliper - Inspect and adjust shapes in DOCX files")
	fmt.Println()
	fmt.Println("Usage: caliper <command> [arguments]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  inspect <file>    List inline shapes and textboxes")
	fmt.Println("  resize <file>     Resize an inline shape and save a copy")
	fmt.Println("  check <file>      Report size inconsistencies")
	fmt.Println("  version           Show version information")
	fmt.Println()
	fmt.Println("Run 'caliper <command> -h' for command flags.")
}

func runInspect(args []string) error {
	fs := flag.NewFlagSet("inspect", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: caliper inspect <file.docx>")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("inspect takes exactly one file argument")
	}

	doc, err := caliper.Open(fs.Arg(0))
	if err != nil {
		return err
	}

	targets, err := imageTargets(doc)
	if err != nil {
		return err
	}

	shapes := doc.InlineShapes()
	fmt.Printf("Inline shapes: %d\n", shapes.Len())
	if shapes.Len() > 0 {
		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"#", "Kind", "Width", "Height", "Image"})
		i := 0
		for shape := range shapes.All() {
			t.AppendRow(table.Row{i, shape.Kind(), formatExtent(shape.Width), formatExtent(shape.Height), imageCell(shape, targets)})
			i++
		}
		t.Render()
	}

	boxes := doc.Textboxes()
	fmt.Printf("Textboxes: %d\n", boxes.Len())
	if boxes.Len() > 0 {
		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"#", "Left", "Top", "Width", "Height"})
		i := 0
		for box := range boxes.All() {
			t.AppendRow(table.Row{i, formatPoints(box.Left()), formatPoints(box.Top()), formatPoints(box.Width()), formatPoints(box.Height())})
			i++
		}
		t.Render()
	}

	settings, err := doc.Settings()
	if err != nil {
		return err
	}
	state := "off"
	if settings.OddAndEvenPagesHeaderFooter() {
		state = "on"
	}
	fmt.Printf("Odd and even page headers: %s\n", state)
	return nil
}

func runResize(args []string) error {
	fs := flag.NewFlagSet("resize", flag.ExitOnError)
	index := fs.Int("index", 0, "inline shape index")
	widthArg := fs.String("width", "", "new width with unit, e.g. 2in, 5.08cm, 144pt")
	heightArg := fs.String("height", "", "new height with unit")
	out := fs.String("out", "", "output file (required)")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: caliper resize <file.docx> -index N -width 2in -out resized.docx")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("resize takes exactly one file argument")
	}
	if *out == "" {
		return fmt.Errorf("resize requires -out; in-place writes are not supported")
	}
	if *widthArg == "" && *heightArg == "" {
		return fmt.Errorf("resize requires -width, -height or both")
	}

	doc, err := caliper.Open(fs.Arg(0))
	if err != nil {
		return err
	}
	shape, err := doc.InlineShapes().At(*index)
	if err != nil {
		return err
	}

	if *widthArg != "" {
		v, err := units.Parse(*widthArg)
		if err != nil {
			return fmt.Errorf("invalid -width: %w", err)
		}
		if err := shape.SetWidth(v); err != nil {
			return err
		}
	}
	if *heightArg != "" {
		v, err := units.Parse(*heightArg)
		if err != nil {
			return fmt.Errorf("invalid -height: %w", err)
		}
		if err := shape.SetHeight(v); err != nil {
			return err
		}
	}

	if err := doc.SaveFile(*out); err != nil {
		return err
	}
	okColor.Printf("Saved %s\n", *out)
	return nil
}

func runCheck(args []string) error {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: caliper check <file.docx>")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("check takes exactly one file argument")
	}

	doc, err := caliper.Open(fs.Arg(0))
	if err != nil {
		return err
	}

	issues := caliper.CheckShapes(doc)
	if len(issues) == 0 {
		okColor.Println("No issues found.")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Shape", "Problem"})
	for _, issue := range issues {
		t.AppendRow(table.Row{issue.Field, issue.Message})
	}
	t.Render()
	return fmt.Errorf("%d issue(s) found", len(issues))
}

// imageTargets maps relationship IDs of the main document part to their
// targets, so the inspect table can show where an image lives.
func imageTargets(doc *caliper.Document) (map[string]string, error) {
	rels, err := doc.Package().GetRelationships("word/document.xml")
	if err != nil {
		return nil, err
	}
	targets := make(map[string]string, len(rels))
	for _, rel := range rels {
		targets[rel.ID] = rel.Target
	}
	return targets, nil
}

func imageCell(shape *caliper.InlineShape, targets map[string]string) string {
	id, ok := shape.ImageRef()
	if !ok {
		return "-"
	}
	if target, ok := targets[id]; ok {
		return fmt.Sprintf("%s (%s)", id, target)
	}
	return id
}

func formatExtent(read func() (units.Emu, error)) string {
	v, err := read()
	if err != nil {
		return "?"
	}
	return fmt.Sprintf("%d EMU (%.2f in)", v, v.Inches())
}

func formatPoints(v float64) string {
	return fmt.Sprintf("%.2f pt", v)
}
