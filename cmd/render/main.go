package main

import (
	"flag"
	"fmt"
	"os"

	"resume-press/resume/model"
	"resume-press/resume/render"
)

func main() {
	in := flag.String("in", "data/resume_data.json", "path to the resume JSON document")
	out := flag.String("out", "resume.pdf", "path to write the generated PDF")
	flag.Parse()

	if err := run(*in, *out); err != nil {
		fmt.Fprintf(os.Stderr, "render: %v\n", err)
		os.Exit(1)
	}
}

func run(in, out string) error {
	f, err := os.Open(in)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	doc, err := model.Load(f)
	if err != nil {
		return fmt.Errorf("parse resume: %w", err)
	}
	doc.ApplyDefaults()

	pdf, pages, err := render.Render(doc)
	if err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}

	if err := os.WriteFile(out, pdf, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	fmt.Printf("wrote %s (%d page(s), %d bytes)\n", out, pages, len(pdf))
	return nil
}
