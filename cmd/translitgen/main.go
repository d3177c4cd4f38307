// Command translitgen precomputes ASCII transliterations of string
// literals at build time. Each NAME=VALUE argument becomes a string
// constant NAME in the generated file holding the transliteration of
// VALUE, so the running program pays nothing for the conversion.
//
// Typical use:
//
//	//go:generate go run github.com/42atomys/go-translit/cmd/translitgen -pkg ui -o banners_gen.go "Title=Ünïcödé"
//
// Malformed input or an internal length mismatch exits non-zero,
// failing the go:generate step.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	translit "github.com/42atomys/go-translit"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("translitgen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	pkg := fs.String("pkg", "main", "package name for the generated file")
	out := fs.String("o", "", "output file (default stdout)")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		fmt.Fprintln(stderr, "translitgen: no NAME=VALUE definitions given")
		fs.Usage()
		return 2
	}

	var buf bytes.Buffer
	if err := generate(&buf, *pkg, fs.Args()); err != nil {
		fmt.Fprintf(stderr, "translitgen: %v\n", err)
		return 1
	}

	if *out == "" {
		if _, err := stdout.Write(buf.Bytes()); err != nil {
			fmt.Fprintf(stderr, "translitgen: %v\n", err)
			return 1
		}
		return 0
	}
	if err := os.WriteFile(*out, buf.Bytes(), 0o644); err != nil {
		fmt.Fprintf(stderr, "translitgen: %v\n", err)
		return 1
	}
	return 0
}

// generate emits one const per NAME=VALUE definition. Each value runs
// through the length pass first, then fills an exactly-sized buffer;
// the two must agree or the tool refuses to emit anything.
func generate(w io.Writer, pkg string, defs []string) error {
	fmt.Fprintf(w, "// Code generated by translitgen. DO NOT EDIT.\n\npackage %s\n\nconst (\n", pkg)
	for _, def := range defs {
		name, value, ok := strings.Cut(def, "=")
		if !ok || name == "" {
			return fmt.Errorf("definition %q is not NAME=VALUE", def)
		}
		want, err := translit.TransliterateLen(value)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		dst := make([]byte, want)
		got, err := translit.TransliterateInto(dst, value)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		if got != want {
			return fmt.Errorf("%s: wrote %d bytes, length pass predicted %d", name, got, want)
		}
		fmt.Fprintf(w, "\t%s = %q\n", name, dst)
	}
	fmt.Fprint(w, ")\n")
	return nil
}
