package main

import "github.com/research4me/paper-analyzer/internal/cli"

func main() {
	cli.Execute()
}
