package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"unicode/utf8"

	"dfaregex/regexlib"
)

func main() {
	pattern := flag.String("pattern", "", "pattern to compile; read from stdin when empty")
	subject := flag.String("subject", "", "string to search")
	lazy := flag.Bool("lazy", false, "stop at the first accepting state")
	stats := flag.Bool("stats", false, "print the NFA, DFA and minimized DFA tables")
	flag.Parse()

	re := regexlib.New()
	re.SetGreedy(!*lazy)

	var tables io.Writer
	if *stats {
		tables = os.Stdout
	}

	if *pattern != "" {
		if !run(re, *pattern, *subject, tables) {
			os.Exit(1)
		}
		return
	}

	// interactive: a pattern line followed by a subject line
	in := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("pattern> ")
		if !in.Scan() {
			break
		}
		pat := in.Text()
		if pat == "" {
			break
		}
		fmt.Print("subject> ")
		if !in.Scan() {
			break
		}
		run(re, pat, in.Text(), tables)
	}
	if err := in.Err(); err != nil {
		log.Fatal(err)
	}
}

// run compiles pattern and lists its matches in subject. It reports whether
// the pattern compiled.
func run(re *regexlib.Regex, pattern, subject string, tables io.Writer) bool {
	if err := re.CompileWithStats(pattern, tables); err != nil {
		var serr *regexlib.Error
		if !errors.As(err, &serr) {
			log.Fatal(err)
		}
		fmt.Printf("error: %v (code %d)\n", serr.Code, int(serr.Code))
		fmt.Println(pattern)
		fmt.Println(caret(pattern, serr.Offset, serr.Length))
		return false
	}

	matches := re.FindAll(subject)
	if len(matches) == 0 {
		fmt.Println("no match")
		return true
	}
	for i, m := range matches {
		if m.Len() == 0 {
			fmt.Printf("match %d: empty at %d\n", i+1, m.Begin)
			continue
		}
		fmt.Printf("match %d: [%d, %d] %q\n", i+1, m.Begin, m.End, m.Text)
	}
	return true
}

// caret underlines pattern[offset:offset+length]. Offset and length count
// bytes; the line is padded in runes so it lines up under the pattern.
func caret(pattern string, offset, length int) string {
	offset = min(max(offset, 0), len(pattern))
	end := min(offset+max(length, 0), len(pattern))
	pad := utf8.RuneCountInString(pattern[:offset])
	width := max(utf8.RuneCountInString(pattern[offset:end]), 1)
	return strings.Repeat(" ", pad) + strings.Repeat("^", width)
}
