package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/brimdata/zfront/cmd/zfront/root"
	_ "github.com/brimdata/zfront/cmd/zfront/parse"
	_ "github.com/brimdata/zfront/cmd/zfront/repl"
	_ "github.com/brimdata/zfront/cmd/zfront/tokens"
	_ "github.com/brimdata/zfront/cmd/zfront/watch"
)

func main() {
	if err := root.Zfront.Exec(os.Args[1:]); err != nil {
		if !errors.Is(err, root.ErrReported) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
