package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/dblibaum/random-function-machine/chromosome"
	"github.com/dblibaum/random-function-machine/pipeline"
)

const (
	historyFile = ".rfm_history"
	promptMain  = "rfm> "
)

func cmdClassify(args []string) int {
	fs := flag.NewFlagSet("classify", flag.ContinueOnError)
	cfgPath := fs.String("config", "experiment.yaml", "experiment YAML file")
	genesPath := fs.String("chromosome", "", "saved chromosome (default: evaluation.save_file)")
	trace := fs.Bool("trace", false, "print every pipeline stage")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	exp, err := loadExperiment(*cfgPath)
	if err != nil {
		log.Printf("load: %v", err)
		return 1
	}
	if *genesPath == "" {
		*genesPath = exp.cfg.Evaluation.SaveFile
	}
	genes, err := chromosome.Load(*genesPath)
	if err != nil {
		log.Printf("chromosome: %v", err)
		return 1
	}
	if err = exp.pipe.Decode(genes); err != nil {
		log.Printf("%s: %v", *genesPath, err)
		return 1
	}

	if fs.NArg() > 0 {
		for _, seq := range fs.Args() {
			if err = classifyOne(os.Stdout, exp.pipe, seq, *trace); err != nil {
				log.Printf("%q: %v", seq, err)
				return 1
			}
		}
		return 0
	}

	return repl(exp.pipe, *trace)
}

// repl reads one sequence per line until EOF or :quit.
// :trace toggles stage output.
func repl(pipe *pipeline.Pipeline, trace bool) int {
	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	for {
		line, err := ln.Prompt(promptMain)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			fmt.Println()
			return 0
		}
		if err != nil {
			log.Printf("prompt: %v", err)
			return 1
		}

		switch strings.TrimSpace(line) {
		case "":
			continue
		case ":quit":
			return 0
		case ":trace":
			trace = !trace
			fmt.Printf("trace %v\n", trace)
			continue
		}

		if err = classifyOne(os.Stdout, pipe, line, trace); err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		ln.AppendHistory(line)
	}
}

// classifyOne prints the class of seq, preceded by its stages when trace is set.
func classifyOne(w io.Writer, pipe *pipeline.Pipeline, seq string, trace bool) error {
	tr, err := pipe.Run([]rune(seq))
	if err != nil {
		return err
	}
	if trace {
		writeTrace(w, tr)
	}
	_, err = fmt.Fprintf(w, "class %d\n", tr.Class)

	return err
}

// writeTrace prints every intermediate stage of one forward pass.
func writeTrace(w io.Writer, tr pipeline.Trace) {
	fmt.Fprintf(w, "  objects   %v\n", tr.Mapped)
	for i := range tr.Hierarchy {
		fmt.Fprintf(w, "  level %-3d %v → %v\n", i, tr.Hierarchy[i], tr.Typed[i])
	}
	fmt.Fprintf(w, "  attended  %v\n", tr.Selected)
	fmt.Fprintf(w, "  emitted   %v\n", tr.Emitted)
	fmt.Fprintf(w, "  output    %v\n", tr.Output)
}
