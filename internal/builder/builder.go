// Package builder turns parsed STIR text into blocks and assembles them into
// a recipe.
package builder

import (
	"context"
	"sort"

	"github.com/agext/levenshtein"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/tliron/commonlog"

	"stir/grammar"
	"stir/internal/blocks"
	"stir/internal/errors"
	"stir/internal/recipe"
)

var log = commonlog.GetLogger("stir.builder")

// Options tune how blocks are built.
type Options struct {
	// Context is attached to every loop as its cancellation signal.
	Context context.Context
}

// Source parses text and builds it. Syntax errors come back as E0100
// diagnostics and a nil recipe.
func Source(filename, text string, opts Options) (*recipe.Recipe, []errors.CompilerError) {
	program, err := grammar.ParseString(filename, text)
	if err != nil {
		pos, msg := grammar.ErrorPosition(err)
		if pos.Filename == "" {
			pos.Filename = filename
		}
		return nil, []errors.CompilerError{errors.SyntaxError(msg, position(pos))}
	}
	return Build(program, opts)
}

// Build converts every top-level item of program into a block and adds it to
// a new recipe; the item marked ENTRY becomes the entry point. CALLs resolve
// against every FUNCTION in the program, wherever it is defined.
//
// When diagnostics are returned the recipe is incomplete: blocks that could
// not be built are replaced by a false Boolean.
func Build(program *grammar.Program, opts Options) (*recipe.Recipe, []errors.CompilerError) {
	b := &builder{
		opts:       opts,
		byName:     make(map[string]*grammar.Function),
		built:      make(map[*grammar.Function]*blocks.Function),
		inProgress: make(map[*grammar.Function]bool),
	}
	b.collect(program)

	r := recipe.New()
	var entryPos errors.Position
	for _, item := range program.Items {
		block := b.block(item.Block)
		if !item.Entry {
			r.Add(block)
			continue
		}

		if r.AddEntry(block) {
			entryPos = position(item.Pos)
			continue
		}
		b.errs = append(b.errs, errors.DuplicateEntry(position(item.Pos), entryPos))
		r.Add(block)
	}

	log.Debug("recipe built", "blocks", r.Len(), "functions", len(b.built), "errors", len(b.errs))
	return r, b.errs
}

// FunctionNames returns the sorted names of every FUNCTION in program.
func FunctionNames(program *grammar.Program) []string {
	var names []string
	seen := make(map[string]bool)
	for _, item := range program.Items {
		walk(item.Block, func(fn *grammar.Function) {
			if !seen[fn.Name.Value] {
				seen[fn.Name.Value] = true
				names = append(names, fn.Name.Value)
			}
		})
	}
	sort.Strings(names)
	return names
}

type builder struct {
	opts Options
	errs []errors.CompilerError

	// byName maps a function name to its first definition.
	byName map[string]*grammar.Function
	names  []string

	built      map[*grammar.Function]*blocks.Function
	inProgress map[*grammar.Function]bool
	chain      []string
}

func (b *builder) collect(program *grammar.Program) {
	for _, item := range program.Items {
		walk(item.Block, func(fn *grammar.Function) {
			name := fn.Name.Value
			if first, ok := b.byName[name]; ok {
				b.errs = append(b.errs, errors.DuplicateFunction(name, position(fn.Name.Pos), position(first.Name.Pos)))
				return
			}
			b.byName[name] = fn
			b.names = append(b.names, name)
		})
	}
	sort.Strings(b.names)
}

func (b *builder) block(node *grammar.Block) blocks.Block {
	switch {
	case node == nil:
		return nil
	case node.IfElse != nil:
		return blocks.NewIfElse(b.block(node.IfElse.Cond), b.block(node.IfElse.Then), b.block(node.IfElse.Else))
	case node.Loop != nil:
		return b.loop(node.Loop)
	case node.Function != nil:
		return b.function(node.Function)
	case node.Call != nil:
		return b.call(node.Call)
	case node.True:
		return blocks.NewBoolean(true)
	case node.False:
		return blocks.NewBoolean(false)
	case node.Number != nil:
		return blocks.NewNumber(*node.Number)
	case node.Word != nil:
		return blocks.NewStr(*node.Word)
	}
	return placeholder()
}

func (b *builder) loop(node *grammar.Loop) blocks.Block {
	var lo, hi blocks.Block
	if node.Range != nil {
		lo = b.block(node.Range.Lo)
		hi = b.block(node.Range.Hi)
	}

	loop := blocks.NewLoop(lo, hi, b.block(node.Body))
	if b.opts.Context != nil {
		loop.WithContext(b.opts.Context)
	}
	return loop
}

func (b *builder) function(node *grammar.Function) blocks.Block {
	if fn, ok := b.built[node]; ok {
		return fn
	}

	b.inProgress[node] = true
	b.chain = append(b.chain, node.Name.Value)
	defer func() {
		delete(b.inProgress, node)
		b.chain = b.chain[:len(b.chain)-1]
	}()

	var args []blocks.Block
	for _, a := range node.Args {
		args = append(args, b.block(a))
	}

	stmts := make([]blocks.Block, 0, len(node.Body))
	for _, s := range node.Body {
		stmts = append(stmts, b.block(s))
	}

	fn := blocks.NewFunction(args, stmts)
	if node.Return != nil {
		fn.WithReturn(b.block(node.Return))
	}

	b.built[node] = fn
	return fn
}

func (b *builder) call(node *grammar.Call) blocks.Block {
	name := node.Name.Value
	target, ok := b.byName[name]
	if !ok {
		b.errs = append(b.errs, errors.UndefinedFunction(name, position(node.Name.Pos), b.similar(name)))
		return placeholder()
	}

	if b.inProgress[target] {
		chain := append(append([]string{}, b.chain...), name)
		b.errs = append(b.errs, errors.RecursiveCall(name, position(node.Name.Pos), chain))
		return placeholder()
	}

	fn, ok := b.function(target).(*blocks.Function)
	if !ok {
		return placeholder()
	}
	return blocks.NewCall(fn, nil)
}

// similar returns defined function names within edit distance 2 of name.
func (b *builder) similar(name string) []string {
	var out []string
	for _, candidate := range b.names {
		if levenshtein.Distance(name, candidate, nil) <= 2 {
			out = append(out, candidate)
		}
	}
	return out
}

// walk calls fn for every FUNCTION at or below node, outermost first.
func walk(node *grammar.Block, fn func(*grammar.Function)) {
	if node == nil {
		return
	}

	switch {
	case node.IfElse != nil:
		walk(node.IfElse.Cond, fn)
		walk(node.IfElse.Then, fn)
		walk(node.IfElse.Else, fn)
	case node.Loop != nil:
		if node.Loop.Range != nil {
			walk(node.Loop.Range.Lo, fn)
			walk(node.Loop.Range.Hi, fn)
		}
		walk(node.Loop.Body, fn)
	case node.Function != nil:
		fn(node.Function)
		for _, a := range node.Function.Args {
			walk(a, fn)
		}
		for _, s := range node.Function.Body {
			walk(s, fn)
		}
		walk(node.Function.Return, fn)
	}
}

func placeholder() blocks.Block {
	return blocks.NewBoolean(false)
}

func position(p lexer.Position) errors.Position {
	return errors.Position{Filename: p.Filename, Line: p.Line, Column: p.Column}
}
