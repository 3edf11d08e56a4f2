package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/specmark/amath/amath"
)

func convertCommand(args []string) error {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	fs.SetOutput(new(flagErrorSink))
	var common commonFlags
	common.register(fs)
	color := fs.Bool("color", false, "highlight MathML output")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, conv, err := common.resolve()
	if err != nil {
		return err
	}
	out := converter{conv: conv, color: *color || cfg.Color, style: cfg.Style}

	if inputs := fs.Args(); len(inputs) > 0 {
		for _, input := range inputs {
			if err := out.convert(os.Stdout, input); err != nil {
				return err
			}
		}
		return nil
	}
	return out.convertLines(os.Stdout, os.Stdin)
}

type converter struct {
	conv  amath.Converter
	color bool
	style string
}

func (c converter) convert(w io.Writer, src string) error {
	mathml, err := amath.Convert(c.conv, src)
	if err != nil {
		return fmt.Errorf("amath convert: %w", describeFailure(c.conv, src, err))
	}
	return writeMathML(w, mathml, c.color, c.style)
}

// convertLines converts each non-blank line of r.
func (c converter) convertLines(w io.Writer, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}
		if err := c.convert(w, text); err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}
