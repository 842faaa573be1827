// Command tomlcore is a CLI for inspecting, querying, diffing and
// patching TOML documents, in the shape of the teacher's cmd/o: a root
// command built from struct-tag options with one subcommand per
// operation.
package main

import (
	"context"

	"github.com/scott-cotton/cli"
)

func main() {
	cli.MainContext(context.Background(), MainCommand())
}
