// thconv converts Thai text between TIS-620 and UTF-8.
//
// Usage:
//
//	thconv decode [flags] [file]    TIS-620 -> UTF-8
//	thconv encode [flags] [file]    UTF-8 -> TIS-620
//
// Reads stdin when no file is given; writes stdout unless -o is given.
// Strict by default: conversion stops at the first unmappable unit and
// reports its position. With --lossy, unmappable units are substituted
// instead (U+FFFD when decoding, '?' or --replacement when encoding).
package main

import (
	goflag "flag"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/golang/glog"
	"github.com/spf13/cobra"
	"golang.org/x/text/transform"

	"github.com/yoremi/tis620-go/pkg/tis620"
)

var (
	outPath     string
	lossy       bool
	replacement string
)

var rootCmd = &cobra.Command{
	Use:           "thconv",
	Short:         "Convert Thai text between TIS-620 and UTF-8",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var decodeCmd = &cobra.Command{
	Use:   "decode [file]",
	Short: "Convert TIS-620 input to UTF-8",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return convert(args, runDecode)
	},
}

var encodeCmd = &cobra.Command{
	Use:   "encode [file]",
	Short: "Convert UTF-8 input to TIS-620",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return convert(args, runEncode)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&outPath, "output", "o", "", "output file (default stdout)")
	rootCmd.PersistentFlags().BoolVar(&lossy, "lossy", false, "substitute unmappable units instead of failing")
	encodeCmd.Flags().StringVar(&replacement, "replacement", "?", "lossy replacement character, must be TIS-620 encodable")
	rootCmd.AddCommand(decodeCmd, encodeCmd)

	// glog registers its flags (-v, -logtostderr, ...) on the standard set.
	rootCmd.PersistentFlags().AddGoFlagSet(goflag.CommandLine)
}

func main() {
	// Keep glog from complaining about an unparsed flag set; the real
	// arguments go through cobra.
	goflag.CommandLine.Parse(nil)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	glog.Flush()
}

func convert(args []string, run func(in io.Reader, out io.Writer) error) error {
	in := io.Reader(os.Stdin)
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	out := io.Writer(os.Stdout)
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	return run(in, out)
}

func runDecode(in io.Reader, out io.Writer) error {
	if lossy {
		// Stream through the x/text transformer; unassigned bytes
		// come out as U+FFFD.
		n, err := io.Copy(out, transform.NewReader(in, tis620.TIS620.NewDecoder()))
		glog.V(1).Infof("decoded %d bytes (lossy)", n)
		return err
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return err
	}
	text, err := tis620.Decode(data)
	if err != nil {
		return fmt.Errorf("decoding failed: %w", err)
	}
	glog.V(1).Infof("decoded %d bytes", len(data))
	_, err = io.WriteString(out, text)
	return err
}

func runEncode(in io.Reader, out io.Writer) error {
	data, err := io.ReadAll(in)
	if err != nil {
		return err
	}
	text := string(data)

	var enc []byte
	if lossy {
		repl, err := replacementByte(replacement)
		if err != nil {
			return err
		}
		replaced := 0
		for _, r := range text {
			if !tis620.CanEncode(r) {
				replaced++
			}
		}
		if replaced > 0 {
			glog.Warningf("replaced %d unmappable character(s)", replaced)
		}
		enc = tis620.EncodeLossy(text, repl)
	} else {
		enc, err = tis620.Encode(text)
		if err != nil {
			return fmt.Errorf("encoding failed: %w", err)
		}
	}

	glog.V(1).Infof("encoded %d characters to %d bytes", utf8.RuneCountInString(text), len(enc))
	_, err = out.Write(enc)
	return err
}

func replacementByte(s string) (byte, error) {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || size != len(s) {
		return 0, fmt.Errorf("--replacement must be a single character, got %q", s)
	}
	b, ok := tis620.ReplacementByte(r)
	if !ok {
		return 0, fmt.Errorf("--replacement %q is not TIS-620 encodable", s)
	}
	return b, nil
}
