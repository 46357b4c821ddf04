// +build ignore

// gen_vm_expects generates curried forms of test case builder methods, so
// that they may be passed to vmTestCase.apply, e.g. expectVMStack(1, 2) for
// vmt.expectStack(1, 2).
package main

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"regexp"
	"strings"
	"time"

	"golang.org/x/net/context"
	"golang.org/x/sync/errgroup"
)

type namedReader interface {
	io.ReadCloser
	Name() string
}

var (
	in  namedReader    = os.Stdin
	out io.WriteCloser = os.Stdout

	caseType = flag.String("type", "vmTestCase", "test case builder `type` name")
	infix    = flag.String("infix", "VM", "`string` inserted between verb and method name")
	timeout  = flag.Duration("timeout", 5*time.Second, "time limit for generation and formatting")
)

func parseFlags() {
	flag.Parse()

	args := flag.Args()

	if len(args) > 0 {
		name := args[0]
		f, err := os.Open(name)
		if err != nil {
			log.Fatalf("failed to open %v: %v", name, err)
		}
		args = args[1:]
		in = f
	}

	if len(args) > 0 {
		name := args[0]
		f, err := os.Create(name)
		if err != nil {
			log.Fatalf("failed to create %v: %v", name, err)
		}
		out = f
	}
}

func main() {
	parseFlags()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	eg, ctx := errgroup.WithContext(ctx)

	ready := make(chan struct{})

	eg.Go(func() error {
		gofmt := exec.CommandContext(ctx, "gofmt")
		fmtPipe, err := gofmt.StdinPipe()
		if err != nil {
			return err
		}

		defer out.Close()
		gofmt.Stdout = out
		gofmt.Stderr = os.Stderr

		out = fmtPipe

		close(ready)
		if err := gofmt.Run(); err != nil {
			return fmt.Errorf("gofmt run failed: %w", err)
		}
		return nil
	})

	eg.Go(func() (rerr error) {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ready:
		}

		defer func() {
			if cerr := in.Close(); rerr == nil {
				rerr = cerr
			}
			if cerr := out.Close(); rerr == nil {
				rerr = cerr
			}
		}()

		return generate(ctx)
	})

	if err := eg.Wait(); err != nil {
		log.Fatalln(err)
	}
}

func generate(ctx context.Context) error {
	method := regexp.MustCompile(`^func \(\w+ ` + regexp.QuoteMeta(*caseType) + `\) (expect|with)(\w+)\((.+?)\) ` + regexp.QuoteMeta(*caseType))

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "package main\n\n// @generated from %v\n\n", in.Name())
	if args := flag.Args(); len(args) >= 2 {
		fmt.Fprintf(&buf, "//go:generate go run scripts/gen_vm_expects.go -- %v\n\n", strings.Join(args, " "))
	}

	sc := bufio.NewScanner(in)
	for sc.Scan() {
		if match := method.FindStringSubmatch(sc.Text()); len(match) > 0 {
			verb, what, params := match[1], match[2], match[3]

			var args []string
			for _, param := range strings.Split(params, ",") {
				fields := strings.Fields(param)
				arg := fields[0]
				if len(fields) > 1 && strings.HasPrefix(fields[1], "...") {
					arg += "..."
				}
				args = append(args, arg)
			}

			fmt.Fprintf(&buf, "func %v%v%v(%v) func(%v) %v {\n", verb, *infix, what, params, *caseType, *caseType)
			fmt.Fprintf(&buf, "\treturn func(vmt %v) %v {\n", *caseType, *caseType)
			fmt.Fprintf(&buf, "\t\treturn vmt.%v%v(%v)\n", verb, what, strings.Join(args, ", "))
			fmt.Fprintf(&buf, "\t}\n}\n\n")
		}

		if buf.Len() > 0 {
			if _, err := buf.WriteTo(out); err != nil {
				return err
			}
		}
		if err := ctx.Err(); err != nil {
			return err
		}
	}
	return sc.Err()
}
