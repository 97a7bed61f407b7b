package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/chrismichaelps/solis/internal/config"
	"github.com/chrismichaelps/solis/internal/evaluator"
	"github.com/chrismichaelps/solis/internal/lexer"
	"github.com/chrismichaelps/solis/internal/modules"
	"github.com/chrismichaelps/solis/internal/parser"
	"github.com/chrismichaelps/solis/internal/pipeline"
)

// colorEnabled reports whether diagnostic output should carry ANSI
// color, mirroring the teacher's isatty-gated terminal detection but
// collapsed to the single on/off decision this CLI needs.
func colorEnabled(noColor bool) bool {
	if noColor {
		return false
	}
	return isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
}

func paint(color bool, code, s string) string {
	if !color {
		return s
	}
	return "\x1b[" + code + "m" + s + "\x1b[0m"
}

func main() {
	args := os.Args[1:]

	var exprFlag string
	var filePath string
	hasExpr := false
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-e", "--eval":
			if i+1 >= len(args) {
				fmt.Fprintln(os.Stderr, "Error: -e requires an expression argument")
				os.Exit(1)
			}
			exprFlag = args[i+1]
			hasExpr = true
			i++
		default:
			if filePath == "" && !strings.HasPrefix(args[i], "-") {
				filePath = args[i]
			}
		}
	}

	dir, err := os.Getwd()
	if err != nil {
		dir = "."
	}
	sess, err := config.LoadSessionConfig(dir)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	interp := evaluator.New()
	resolver := modules.NewResolver(dir)
	interp.SetModuleResolver(resolver)
	interp.SetNamespaceManager(modules.NewNamespace())
	interp.SetCurrentDirectory(dir)

	color := colorEnabled(sess.NoColor)

	if sess.Prelude != "" {
		src, err := os.ReadFile(sess.Prelude)
		if err != nil {
			fmt.Fprintln(os.Stderr, paint(color, "31", fmt.Sprintf("Error reading %s: %s", sess.Prelude, err)))
			os.Exit(1)
		}
		if !runSource(interp, string(src), sess.Prelude, color) {
			os.Exit(1)
		}
	}

	if hasExpr {
		evalLine(interp, exprFlag, color)
		return
	}

	if filePath == "" {
		filePath = sess.Entry
	}

	if filePath != "" {
		src, err := os.ReadFile(filePath)
		if err != nil {
			fmt.Fprintln(os.Stderr, paint(color, "31", fmt.Sprintf("Error reading %s: %s", filePath, err)))
			os.Exit(1)
		}
		interp.SetCurrentDirectory(filepath.Dir(filePath))
		ok := runSource(interp, string(src), filePath, color)
		if !ok {
			os.Exit(1)
		}
		if sess.PrintBinding != "" {
			printBinding(interp, sess.PrintBinding, color)
		}
		if sess.Repl {
			repl(interp, color)
		}
		return
	}

	repl(interp, color)
}

// runSource drives source through the lex/parse pipeline and then
// evaluates the resulting module's declarations against interp's
// global environment, in source order.
func runSource(interp *evaluator.Interpreter, source, label string, color bool) bool {
	ctx := &pipeline.Context{FilePath: label, SourceCode: source}
	ctx = (&lexer.Processor{}).Process(ctx)
	ctx = (&parser.Processor{}).Process(ctx)

	if len(ctx.Errors) > 0 {
		for _, e := range ctx.Errors {
			fmt.Fprintln(os.Stderr, paint(color, "31", e.Error()))
		}
		return false
	}

	for _, decl := range ctx.Module.Decls {
		if err := interp.EvalAndStore(decl); err != nil {
			fmt.Fprintln(os.Stderr, paint(color, "31", err.Error()))
			return false
		}
	}
	return true
}

func printBinding(interp *evaluator.Interpreter, name string, color bool) {
	v, ok := interp.GetBinding(name)
	if !ok {
		fmt.Fprintln(os.Stderr, paint(color, "33", fmt.Sprintf("warning: no binding named %q", name)))
		return
	}
	s, err := interp.ValueToString(v)
	if err != nil {
		fmt.Fprintln(os.Stderr, paint(color, "31", err.Error()))
		return
	}
	fmt.Println(s)
}

// repl runs an interactive read-eval-print loop over stdin, evaluating
// one expression per line against interp's shared global environment.
func repl(interp *evaluator.Interpreter, color bool) {
	scanner := bufio.NewScanner(os.Stdin)
	prompt := paint(color, "36", "solis> ")
	for {
		fmt.Print(prompt)
		if !scanner.Scan() {
			fmt.Println()
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == ":quit" || line == ":q" {
			return
		}
		evalLine(interp, line, color)
	}
}

func evalLine(interp *evaluator.Interpreter, line string, color bool) {
	expr, err := parser.ParseExpressionFromSource(line)
	if err != nil {
		fmt.Fprintln(os.Stderr, paint(color, "31", err.Error()))
		return
	}
	v, err := interp.EvalExpr(expr)
	if err != nil {
		fmt.Fprintln(os.Stderr, paint(color, "31", err.Error()))
		return
	}
	s, err := interp.ValueToString(v)
	if err != nil {
		fmt.Fprintln(os.Stderr, paint(color, "31", err.Error()))
		return
	}
	fmt.Println(s)
}
