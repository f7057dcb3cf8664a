// Package render implements render subcommand: compiles selector recipe and
// writes results.
package render

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"cssb/config"
	"cssb/recipe"
	"cssb/state"
)

// Run is the action of render subcommand.
func Run(ctx context.Context, cmd *cli.Command) (err error) {
	env := state.EnvFromContext(ctx)

	if cmd.Args().Len() == 0 {
		return errors.New("no recipe has been specified")
	}
	if cmd.Args().Len() > 2 {
		env.Log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}
	src, dst := cmd.Args().Get(0), cmd.Args().Get(1)

	format, keepGoing := config.OutputFmtSelectors, false
	if env.Cfg != nil {
		format, keepGoing = env.Cfg.Render.Output, env.Cfg.Render.KeepGoing
	}
	if cmd.IsSet("to") {
		var ok bool
		if format, ok = config.ParseOutputFmt(cmd.String("to")); !ok {
			return fmt.Errorf("unknown output format '%s'", cmd.String("to"))
		}
	}
	if cmd.Bool("keep-going") {
		keepGoing = true
	}

	r, err := recipe.Load(src)
	if err != nil {
		return fmt.Errorf("unable to load recipe '%s': %w", src, err)
	}

	compiled, cerr := recipe.NewCompiler(env.Log).Compile(r)
	if cerr != nil {
		for _, e := range multierr.Errors(cerr) {
			env.Log.Warn("Selector rejected", zap.Error(e))
		}
		if !keepGoing {
			return fmt.Errorf("unable to compile recipe '%s': %w", src, cerr)
		}
	}

	var out io.Writer = os.Stdout
	if len(dst) > 0 {
		f, ferr := os.Create(dst)
		if ferr != nil {
			return fmt.Errorf("unable to create destination file '%s': %w", dst, ferr)
		}
		defer multierr.AppendInvoke(&err, multierr.Close(f))
		out = f
	} else {
		dst = "STDOUT"
	}

	env.Log.Info("Rendering selectors",
		zap.String("recipe", src),
		zap.String("destination", dst),
		zap.Stringer("format", format),
		zap.Int("selectors", len(compiled)),
		zap.Int("rejected", len(r.Selectors)-len(compiled)))

	if err = Write(out, format, compiled); err != nil {
		return fmt.Errorf("unable to write selectors: %w", err)
	}
	return nil
}

// Write outputs compiled selectors in requested format.
func Write(w io.Writer, format config.OutputFmt, compiled []recipe.Compiled) error {
	switch format {
	case config.OutputFmtStylesheet:
		_, err := recipe.Stylesheet(compiled).WriteTo(w)
		return err
	case config.OutputFmtSelectors:
		for _, c := range compiled {
			if _, err := fmt.Fprintf(w, "%s\t%s\n", c.Name, c.Selector()); err != nil {
				return err
			}
		}
		return nil
	case config.OutputFmtTree:
		return writeTree(w, compiled)
	default:
		return fmt.Errorf("unsupported output format '%s'", format)
	}
}
