package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"text/tabwriter"
)

func cmdLayout(args []string, w io.Writer) int {
	fs := flag.NewFlagSet("layout", flag.ContinueOnError)
	cfgPath := fs.String("config", "experiment.yaml", "experiment YAML file")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	exp, err := loadExperiment(*cfgPath)
	if err != nil {
		log.Printf("load: %v", err)
		return 1
	}

	s := exp.pipe.Sizes()
	fmt.Fprintf(w, "alphabet %d  objects %d  types %d  attention %d×%d  functions %d  depth %d  outputs %d\n",
		s.Alphabet, s.Objects, s.Types, s.AttentionDepth, s.AttentionWidth, s.Functions, s.ComputerDepth, s.Outputs)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SEGMENT\tOFFSET\tGENES\tRANGE")
	for _, seg := range exp.pipe.Layout().Segments() {
		fmt.Fprintf(tw, "%s\t%d\t%d\t[%d,%d]\n", seg.Name, seg.Offset, seg.Len, seg.Min, seg.Max)
	}
	fmt.Fprintf(tw, "total\t\t%d\t\n", exp.pipe.Layout().Len())
	if err = tw.Flush(); err != nil {
		log.Printf("layout: %v", err)
		return 1
	}

	return 0
}
