/*
Command glrnlp is an interactive REPL for experimenting with a compiled
GLR grammar: enter a token sequence, get back its ranked translations.

Directly modeled on gorgo's terex/terexlang/trepl REPL shape (flag-based
trace level, pterm-colored output, chzyer/readline loop, an init file of
canned commands loaded before the interactive loop starts) with T.REPL's
s-expression evaluator replaced by this module's Compile/Parse/MakeForest/
UnifyUp/Translate/Enumerate pipeline.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright (c) 2026, the glrnlp contributors
*/
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/tracing"

	glrnlp "github.com/tomitaglr/glrnlp"
	"github.com/tomitaglr/glrnlp/enumerate"
	"github.com/tomitaglr/glrnlp/morph"
	"github.com/tomitaglr/glrnlp/rule"
)

func tracer() tracing.Trace { return tracing.Select("glrnlp.cmd") }

// demoGrammar builds a small English noun-phrase-drops-determiner
// grammar for REPL experiments, grounded on the translate package's own
// test fixture of the same shape.
func demoGrammar() *rule.Builder {
	b := rule.NewBuilder("S")
	b.AddRule("S", []string{"NP", "VP"}, []rule.RightSymbol{
		rule.BackRefTo(0, rule.NoParam),
		rule.Terminal(" "),
		rule.BackRefTo(1, rule.NoParam),
	})
	b.AddRule("NP", []string{"Det", "N"}, []rule.RightSymbol{rule.BackRefTo(1, rule.NoParam)})
	b.AddRule("VP", []string{"V"}, []rule.RightSymbol{rule.BackRefTo(0, rule.NoParam)})
	b.AddRule("VP", []string{"V", "NP"}, []rule.RightSymbol{
		rule.BackRefTo(0, rule.NoParam),
		rule.Terminal(" "),
		rule.BackRefTo(1, rule.NoParam),
	})
	b.AddRule("Det", []string{"the"}, []rule.RightSymbol{rule.Terminal("the")})
	b.AddRule("N", []string{"dog"}, []rule.RightSymbol{rule.Terminal("dog")})
	b.AddRule("N", []string{"cat"}, []rule.RightSymbol{rule.Terminal("cat")})
	b.AddRule("V", []string{"barks"}, []rule.RightSymbol{rule.Terminal("barks")})
	b.AddRule("V", []string{"saw"}, []rule.RightSymbol{rule.Terminal("saw")})
	return b
}

func main() {
	initDisplay()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	initf := flag.String("init", "", "Initial load: a file of newline-separated token lines to run before the REPL starts")
	flag.Parse()
	tracer().SetTraceLevel(tracing.TraceLevelFromString(*tlevel))
	pterm.Info.Println("Welcome to glrnlp")

	store, err := demoGrammar().Build()
	if err != nil {
		tracer().Errorf("building demo grammar: %v", err)
		os.Exit(2)
	}
	c, err := glrnlp.Compile(store.Rules, store.Trie)
	if err != nil {
		tracer().Errorf("compiling demo grammar: %v", err)
		os.Exit(2)
	}
	stats := c.Stats()
	tracer().Infof("compiled %d rules into %d states", stats.RuleCount, stats.StateCount)

	repl, err := readline.New("glrnlp> ")
	if err != nil {
		tracer().Errorf("%v", err)
		os.Exit(3)
	}
	defer repl.Close()

	intp := &interp{c: c, repl: repl}
	intp.loadInitFile(*initf)
	tracer().Infof("Quit with <ctrl>D")
	intp.REPL()
}

func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// interp holds the REPL's working state: a compiled grammar and the
// readline instance driving input.
type interp struct {
	c    *glrnlp.Compiled
	repl *readline.Instance
}

func (intp *interp) loadInitFile(filename string) {
	if filename == "" {
		return
	}
	f, err := os.Open(filename)
	if err != nil {
		tracer().Errorf("unable to open init file: %s", filename)
		return
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineno := 1
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := intp.EvalLine(line); err != nil {
			tracer().Errorf("line %d: %v", lineno, err)
		}
		lineno++
	}
	if err := scanner.Err(); err != nil {
		tracer().Errorf("reading init file: %v", err)
	}
}

// REPL reads one line of whitespace-separated tokens at a time and
// prints its ranked translations, until the user sends EOF.
func (intp *interp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF on <ctrl>D
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if err := intp.EvalLine(line); err != nil {
			pterm.Error.Println(err.Error())
		}
	}
	pterm.Info.Println("Good bye!")
}

// EvalLine tokenizes line on whitespace, runs the full pipeline, and
// prints the ranked candidates.
func (intp *interp) EvalLine(line string) error {
	tokens := strings.Fields(line)
	results, err := intp.translate(tokens)
	if err != nil {
		return err
	}
	intp.printResults(results)
	return nil
}

func (intp *interp) translate(tokens []string) ([]enumerate.Result, error) {
	chart, err := intp.c.Parse(context.Background(), tokens)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	raw, err := glrnlp.MakeForest(chart)
	if err != nil {
		return nil, fmt.Errorf("forest: %w", err)
	}
	filtered, err := glrnlp.UnifyUp(raw)
	if err != nil {
		return nil, fmt.Errorf("unify: %w", err)
	}
	if len(filtered.Alts) == 0 || len(filtered.Alts[0].Children) == 0 {
		return nil, fmt.Errorf("empty parse forest")
	}
	top := filtered.Alts[0].Children[0].Node
	tt, err := intp.c.Translate(top)
	if err != nil {
		return nil, fmt.Errorf("translate: %w", err)
	}
	it := glrnlp.Enumerate(tt, enumerate.WithPostProcessor(morph.Default))
	var out []enumerate.Result
	for it.HasNext() {
		r, _ := it.Next()
		out = append(out, r)
	}
	return out, nil
}

func (intp *interp) printResults(results []enumerate.Result) {
	if len(results) == 0 {
		pterm.Info.Println("(no translations)")
		return
	}
	for i, r := range results {
		pterm.Info.Println(fmt.Sprintf("%d. %s  [cost %d]", i+1, r.Text, r.Cost))
	}
}
