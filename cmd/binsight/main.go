package main

import "github.com/mlehnert/binsight/internal/cli"

func main() {
	cli.Execute()
}
