package main

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/tomlcore/tomlcore/encode"
	"github.com/tomlcore/tomlcore/ir"
)

// MainConfig holds the options every subcommand inherits, the way the
// teacher's MainConfig carried shared i/o and format flags into each of
// its subcommands.
type MainConfig struct {
	JSON  bool `cli:"name=j aliases=json desc='output as JSON'"`
	YAML  bool `cli:"name=y aliases=yaml desc='output as YAML'"`
	Color bool `cli:"name=color desc='force colored output'"`

	Main *cli.Command
}

// colors picks a palette for w: explicit -color wins, otherwise fall
// back to isatty auto-detection the way the teacher's encOpts does.
func (cfg *MainConfig) colors(w *os.File) *encode.Colors {
	if cfg.Color {
		return encode.NewColors()
	}
	if isatty.IsTerminal(w.Fd()) {
		return encode.NewColors()
	}
	return nil
}

func (cfg *MainConfig) writeTable(w *os.File, t *ir.Table) error {
	switch {
	case cfg.JSON:
		b, err := encode.ToJSON(t, true)
		if err != nil {
			return err
		}
		_, err = w.Write(append(b, '\n'))
		return err
	case cfg.YAML:
		b, err := encode.ToYAML(t)
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err
	default:
		c := cfg.colors(w)
		if c == nil {
			c = encode.NewColors()
			c.Key = noColor
			c.String = noColor
			c.Number = noColor
			c.Bool = noColor
			c.DateTime = noColor
			c.Punct = noColor
		}
		return encode.WriteColor(w, t, c)
	}
}

func noColor(a ...any) string {
	s := ""
	for _, v := range a {
		if sv, ok := v.(string); ok {
			s += sv
		}
	}
	return s
}

type DumpConfig struct {
	*MainConfig
	Dump *cli.Command
}

type QueryConfig struct {
	*MainConfig
	Query *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Text bool `cli:"name=text desc='diff as text rather than a JSON merge patch'"`
	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Merge bool `cli:"name=merge desc='apply patch as an RFC 7386 merge patch instead of RFC 6902'"`
	Patch *cli.Command
}
