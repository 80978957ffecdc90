package main

import (
	"fmt"
	"os"

	"github.com/DarlanCavalcante/tech10/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Erro:", err)
		os.Exit(1)
	}
}
