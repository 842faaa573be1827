package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/tomlcore/tomlcore/diff"
	"github.com/tomlcore/tomlcore/encode"
	"github.com/tomlcore/tomlcore/ir"
	"github.com/tomlcore/tomlcore/parse"
	"github.com/tomlcore/tomlcore/patch"
	"github.com/tomlcore/tomlcore/query"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "tomlcore").
		WithSynopsis("tomlcore [opts] command [opts] [file]").
		WithDescription("tomlcore inspects, queries, diffs and patches TOML documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return cli.ErrUsage
		}).
		WithSubs(
			DumpCommand(cfg),
			QueryCommand(cfg),
			DiffCommand(cfg),
			PatchCommand(cfg))
}

func DumpCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DumpConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("dump").
		WithAliases("d", "view").
		WithSynopsis("dump [file]").
		WithDescription("Parse a TOML document and print it back out.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			t, err := parseArg(args)
			if err != nil {
				return err
			}
			return cfg.writeTable(os.Stdout, t)
		})
	cfg.Dump = cmd
	return cmd
}

func QueryCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &QueryConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("query").
		WithAliases("q", "eval").
		WithSynopsis("query <expr> [file]").
		WithDescription("Evaluate an expr-lang expression against a TOML document.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			if len(args) == 0 {
				return fmt.Errorf("%w: query requires an expression", cli.ErrUsage)
			}
			t, err := parseArg(args[1:])
			if err != nil {
				return err
			}
			result, err := query.Eval(t, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(os.Stdout, "%v\n", result)
			return nil
		})
	cfg.Query = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("diff").
		WithSynopsis("diff <from> <to>").
		WithDescription("Diff two TOML documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			if len(args) != 2 {
				return fmt.Errorf("%w: diff requires exactly two files", cli.ErrUsage)
			}
			from, err := parseFile(args[0])
			if err != nil {
				return err
			}
			to, err := parseFile(args[1])
			if err != nil {
				return err
			}
			if cfg.Text {
				fromTxt, err := renderPlain(from)
				if err != nil {
					return err
				}
				toTxt, err := renderPlain(to)
				if err != nil {
					return err
				}
				fmt.Fprint(os.Stdout, diff.Strings(fromTxt, toTxt))
				return nil
			}
			mergePatch, err := diff.Tables(from, to)
			if err != nil {
				return err
			}
			_, err = os.Stdout.Write(append(mergePatch, '\n'))
			return err
		})
	cfg.Diff = cmd
	return cmd
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("patch").
		WithSynopsis("patch <doc> <patch>").
		WithDescription("Apply a JSON Patch or JSON Merge Patch to a TOML document.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			if len(args) != 2 {
				return fmt.Errorf("%w: patch requires a document and a patch file", cli.ErrUsage)
			}
			t, err := parseFile(args[0])
			if err != nil {
				return err
			}
			patchBytes, err := os.ReadFile(args[1])
			if err != nil {
				return err
			}
			var out map[string]any
			if cfg.Merge {
				out, err = patch.ApplyMergePatch(t, patchBytes)
			} else {
				out, err = patch.ApplyJSONPatch(t, patchBytes)
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(os.Stdout, "%v\n", out)
			return nil
		})
	cfg.Patch = cmd
	return cmd
}

func parseArg(args []string) (*ir.Table, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, err
		}
		return parse.Parse(data)
	}
	return parseFile(args[0])
}

func parseFile(path string) (*ir.Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parse.Parse(data)
}

func renderPlain(t *ir.Table) (string, error) {
	var sb strings.Builder
	c := encode.NewColors()
	c.Key, c.String, c.Number, c.Bool, c.DateTime, c.Punct = noColor, noColor, noColor, noColor, noColor, noColor
	if err := encode.WriteColor(&sb, t, c); err != nil {
		return "", err
	}
	return sb.String(), nil
}
