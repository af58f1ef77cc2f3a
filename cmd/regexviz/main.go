package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"

	"dfaregex/regexlib"
)

func main() {
	pattern := flag.String("re", "", "pattern (required)")
	stageName := flag.String("stage", "min", "automaton to export: nfa, dfa or min")
	outFile := flag.String("o", "graph.dot", "output file, - for stdout")
	pngFlag := flag.Bool("png", false, "render PNG via dot -Tpng")
	flag.Parse()

	if *pattern == "" {
		fmt.Fprintln(os.Stderr, "usage: regexviz -re <pattern> [-stage nfa|dfa|min] [-o file] [-png]")
		flag.PrintDefaults()
		os.Exit(2)
	}
	stage, err := regexlib.ParseStage(*stageName)
	if err != nil {
		log.Fatal(err)
	}

	var buf bytes.Buffer
	if err := export(&buf, *pattern, stage); err != nil {
		log.Fatalf("compile %q: %v", *pattern, err)
	}

	if *pngFlag {
		cmd := exec.Command("dot", "-Tpng", "-o", *outFile)
		cmd.Stdin = &buf
		cmd.Stderr = os.Stderr
		if err := cmd.Run(); err != nil {
			log.Fatalf("dot failed: %v", err)
		}
		fmt.Printf("PNG written to %s\n", *outFile)
		return
	}

	if *outFile == "-" {
		if _, err := io.Copy(os.Stdout, &buf); err != nil {
			log.Fatal(err)
		}
		return
	}
	if err := os.WriteFile(*outFile, buf.Bytes(), 0o644); err != nil {
		log.Fatalf("write %s: %v", *outFile, err)
	}
	fmt.Printf("DOT written to %s\n", *outFile)
}

// export writes the automaton of pattern at stage. The minimized DFA comes
// from a compiled Regex, the intermediate stages from the pipeline.
func export(w io.Writer, pattern string, stage regexlib.Stage) error {
	if stage != regexlib.StageMinimalDFA {
		return regexlib.ExportDOT(w, pattern, stage)
	}
	re, err := regexlib.Compile(pattern)
	if err != nil {
		return err
	}
	return re.ExportDOT(w)
}
