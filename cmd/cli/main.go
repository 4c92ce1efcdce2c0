package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/desprit/geoparse/internal/gazetteer"
	"github.com/desprit/geoparse/internal/parser"
)

// geoparse parses location strings given as arguments, or read line by line
// from stdin when no arguments are given.
func main() {
	asJSON := flag.Bool("json", false, "print results as JSON instead of the display form")
	verbose := flag.Bool("v", false, "log resolver stages to stderr")
	flag.Parse()

	logger := zap.NewNop()
	if *verbose {
		cfg := zap.NewDevelopmentConfig()
		l, err := cfg.Build()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		logger = l
	}
	defer logger.Sync()

	gaz, err := gazetteer.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	p := parser.New(gaz, logger)

	if flag.NArg() > 0 {
		for _, arg := range flag.Args() {
			emit(p, arg, *asJSON)
		}
		return
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		emit(p, line, *asJSON)
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func emit(p *parser.Parser, input string, asJSON bool) {
	loc := p.ParseLocation(input)
	if asJSON {
		data, err := json.Marshal(loc)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}
		fmt.Println(string(data))
		return
	}
	fmt.Println(loc.String())
}
