package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/authcorp/optics/codec"
	opterrors "github.com/authcorp/optics/errors"
	"github.com/authcorp/optics/optics"
	"github.com/authcorp/optics/tree"
)

type operation string

const (
	opGet     operation = "get"
	opPreview operation = "preview"
	opAll     operation = "all"
	opCount   operation = "count"
	opSet     operation = "set"
	opRemove  operation = "remove"
)

func parseValue(raw string) (tree.Value, error) {
	v, err := codec.NewJSONCodec().Decode([]byte(raw))
	if err != nil {
		return nil, fmt.Errorf("--value: %w", err)
	}
	return v, nil
}

func (a *app) run(ctx context.Context, op operation, args []string, value tree.Value) error {
	expr := args[0]
	file := ""
	if len(args) > 1 {
		file = args[1]
	}
	log := a.logger.With(slog.String("op", string(op)), slog.String("path", expr))

	err := a.apply(ctx, log, op, expr, file, value)
	if err != nil {
		log.LogAttrs(ctx, slog.LevelError, "operation failed",
			slog.String("code", string(opterrors.GetCode(err))),
			slog.String("error", err.Error()))
	}
	return err
}

func (a *app) apply(ctx context.Context, log *slog.Logger, op operation, expr, file string, value tree.Value) error {
	in, err := a.readInput(file)
	if err != nil {
		return err
	}
	format := a.settings.Format
	if format == "" {
		format = codec.FormatOf(file)
	}
	inCodec, err := codec.ForFormat(format)
	if err != nil {
		return err
	}
	doc, err := inCodec.Decode(in)
	if err != nil {
		return err
	}

	o, err := optics.ParsePath(expr, optics.WithOutOfRange(a.settings.IndexOutOfRange))
	if err != nil {
		return err
	}
	log.LogAttrs(ctx, slog.LevelDebug, "compiled path",
		slog.String("kind", o.Kind().String()),
		slog.String("optic", o.String()),
		slog.String("format", inCodec.Name()))

	result, err := execute(op, o, doc, value)
	if err != nil {
		return err
	}
	return a.write(format, result)
}

// execute runs one operation. Kinds are checked here so that get refuses a
// prism or traversal and remove refuses a lens.
func execute(op operation, o optics.Optic, doc, value tree.Value) (tree.Value, error) {
	switch op {
	case opGet:
		l, ok := optics.AsLens(o)
		if !ok {
			return nil, opterrors.Newf(opterrors.ErrCodeInvalidPath,
				"%s is a %s; get needs a lens, use preview or all", o, o.Kind())
		}
		return l.Get(doc)
	case opPreview:
		found, err := optics.Preview(o, doc)
		if err != nil {
			return nil, err
		}
		v, ok := found.Get()
		if !ok {
			return nil, opterrors.NoFocus(o.String())
		}
		return v, nil
	case opAll:
		all, err := optics.GetAll(o, doc)
		if err != nil {
			return nil, err
		}
		return tree.NewArray(all...), nil
	case opCount:
		n, err := optics.AsTraversal(o).Count(doc)
		if err != nil {
			return nil, err
		}
		return int64(n), nil
	case opSet:
		return optics.Set(o, doc, value)
	case opRemove:
		return optics.RemoveAny(o, doc)
	}
	return nil, fmt.Errorf("unknown operation %q", op)
}

func (a *app) readInput(file string) ([]byte, error) {
	if file == "" || file == "-" {
		return io.ReadAll(a.stdin)
	}
	return os.ReadFile(file)
}

func (a *app) write(inputFormat string, v tree.Value) error {
	format := a.settings.Output
	if format == "" {
		format = inputFormat
	}
	c, err := codec.ForFormat(format)
	if err != nil {
		return err
	}
	if j, ok := c.(*codec.JSONCodec); ok && a.settings.Pretty {
		j.WithPretty()
	}
	out, err := c.Encode(v)
	if err != nil {
		return err
	}
	if _, err := a.stdout.Write(out); err != nil {
		return err
	}
	if len(out) > 0 && out[len(out)-1] != '\n' {
		_, err = io.WriteString(a.stdout, "\n")
	}
	return err
}
