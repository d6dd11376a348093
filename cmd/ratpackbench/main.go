// Command ratpackbench is a small end-to-end exercise of the ratpack
// library: it parses an expression of the form "<number> <op> <number>" in
// a chosen radix, computes the result, and prints it back out at a chosen
// precision. It is a worked example, not the calculator frontend itself
// (spec.md's scope explicitly excludes that).
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/calcpack/ratpack"
)

func main() {
	radix := flag.Uint("radix", 10, "radix (2-62) for both input and output")
	precision := flag.Int("precision", 34, "working precision, in radix digits")
	flag.Parse()

	args := flag.Args()
	if len(args) != 3 {
		fmt.Fprintln(os.Stderr, "usage: ratpackbench [flags] <lhs> <op> <rhs>")
		fmt.Fprintln(os.Stderr, "  op is one of: + - * / % pow")
		os.Exit(2)
	}

	c := ratpack.NewContext(uint32(*radix), int32(*precision))

	lhs, cond, err := ratpack.ParseRational(c, args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "parse %q: %s\n", args[0], cond)
		os.Exit(1)
	}
	rhs, cond, err := ratpack.ParseRational(c, args[2])
	if err != nil {
		fmt.Fprintf(os.Stderr, "parse %q: %s\n", args[2], cond)
		os.Exit(1)
	}

	z := new(ratpack.Rational)
	switch args[1] {
	case "+":
		cond, err = c.Add(z, lhs, rhs)
	case "-":
		cond, err = c.Sub(z, lhs, rhs)
	case "*":
		cond, err = c.Mul(z, lhs, rhs)
	case "/":
		cond, err = c.Div(z, lhs, rhs)
	case "%":
		cond, err = c.Mod(z, lhs, rhs)
	case "pow":
		cond, err = c.Pow(z, lhs, rhs)
	default:
		fmt.Fprintf(os.Stderr, "unknown operator %q\n", args[1])
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "compute: %s\n", cond)
		os.Exit(1)
	}

	out, cond, err := ratpack.FormatRational(c, z, ratpack.FormatFloat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "format: %s\n", cond)
		os.Exit(1)
	}
	fmt.Println(out)
}
