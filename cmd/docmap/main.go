package main

import "github.com/dgallion1/docmap/internal/cli"

func main() {
	cli.Execute()
}
