package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/hesusruiz/domtree/domtree"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

// loadTree builds the tree from the input file, either in the line grammar or as plain HTML.
func loadTree(inputFileName string, asHTML bool) (*domtree.Tree, error) {
	if !asHTML {
		return domtree.BuildFromFile(inputFileName)
	}

	file, err := os.Open(inputFileName)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return domtree.Build(domtree.NewHTMLSource(inputFileName, file))
}

// loadScript collects the operations of the script file (if any) followed by the ones in the command line
func loadScript(c *cli.Context) (*domtree.Script, error) {
	script := domtree.NewScript()

	if scriptFileName := c.String("script"); len(scriptFileName) > 0 {
		var err error
		script, err = domtree.LoadScript(scriptFileName)
		if err != nil {
			return nil, err
		}
	}

	for _, line := range c.StringSlice("op") {
		op, err := domtree.ParseOperation(line)
		if err != nil {
			return nil, err
		}
		script.Operations = append(script.Operations, op)
	}

	return script, nil
}

// process is the main entry point of the program
func process(c *cli.Context) error {

	// Default input file name
	var inputFileName = "index.html"

	// Output file name command line parameter
	outputFileName := c.String("output")

	// Dry run
	dryrun := c.Bool("dryrun")

	debug := c.Bool("debug")

	var z *zap.Logger
	var err error

	// Setup the logging system
	if debug {
		z, err = zap.NewDevelopment()
		if err != nil {
			panic(err)
		}
	} else {
		z, err = zap.NewProduction()
		if err != nil {
			panic(err)
		}
	}

	sugar := z.Sugar()
	defer sugar.Sync()

	// Get the input file name
	if c.Args().Present() {
		inputFileName = c.Args().First()
	} else {
		sugar.Infow("no input file provided, using default", "input", inputFileName)
	}

	script, err := loadScript(c)
	if err != nil {
		sugar.Errorw("invalid operations", "error", err)
		return err
	}

	tree, err := loadTree(inputFileName, c.Bool("html"))
	if err != nil {
		sugar.Errorw("building the document tree", "input", inputFileName, "error", err)
		return err
	}
	tree.SetLogger(sugar)

	if err := script.Run(tree); err != nil {
		sugar.Errorw("applying operations", "error", err)
		return err
	}

	// Prepare the output: the serialized document or the tree dump
	var out bytes.Buffer
	if c.Bool("print") {
		if err := tree.Print(&out); err != nil {
			return err
		}
	} else {
		out.WriteString(tree.Serialize())
	}

	if diagramFileName := c.String("diagram"); len(diagramFileName) > 0 && !dryrun {
		svg, err := tree.RenderDiagram(context.Background())
		if err != nil {
			sugar.Errorw("rendering diagram", "error", err)
			return err
		}
		// Permissions for user:rw group:rw others:r
		if err := os.WriteFile(diagramFileName, svg, 0664); err != nil {
			return err
		}
		sugar.Debugw("diagram written", "file", diagramFileName)
	}

	// Do nothing if flag dryrun was specified
	if dryrun {
		sugar.Infow("dry run, no output written", "input", inputFileName, "operations", len(script.Operations))
		return nil
	}

	if len(outputFileName) > 0 {
		return os.WriteFile(outputFileName, out.Bytes(), 0664)
	}

	if c.Bool("color") {
		return domtree.Highlight(os.Stdout, out.String(), script.CodeStyle())
	}

	_, err = os.Stdout.Write(out.Bytes())
	return err
}

func main() {

	app := &cli.App{
		Name:      "domtree",
		Version:   "v0.1.0",
		Compiled:  time.Now(),
		Usage:     "rewrite a one-tag-per-line HTML document",
		UsageText: "domtree [options] [INPUT_FILE] (default input file is index.html)",
		Action:    process,
		ArgsUsage: "INPUT_FILE",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "write the result to `FILE` (default is standard output)",
			},
			&cli.StringSliceFlag{
				Name:  "op",
				Usage: "apply `OPERATION`: 'replace OLD NEW', 'bold ROW', 'remove TAG' or 'wrap WORD TAG' (repeatable)",
			},
			&cli.StringFlag{
				Name:    "script",
				Aliases: []string{"s"},
				Usage:   "read settings and operations from the YAML `FILE`, applied before any --op",
			},
			&cli.BoolFlag{
				Name:  "html",
				Usage: "the input is ordinary HTML instead of one tag or text per line",
			},
			&cli.BoolFlag{
				Name:    "print",
				Aliases: []string{"p"},
				Usage:   "output an indented dump of the tree instead of the document",
			},
			&cli.BoolFlag{
				Name:    "color",
				Aliases: []string{"c"},
				Usage:   "highlight the output for the terminal",
			},
			&cli.StringFlag{
				Name:  "diagram",
				Usage: "also write an SVG diagram of the tree to `FILE`",
			},
			&cli.BoolFlag{
				Name:    "dryrun",
				Aliases: []string{"n"},
				Usage:   "do not generate output, just process the input file",
			},
			&cli.BoolFlag{
				Name:    "debug",
				Aliases: []string{"d"},
				Usage:   "run in debug mode",
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

}
