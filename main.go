package main

import (
	_ "go.uber.org/automaxprocs"
	"tickto/cmd"
)

func main() {
	cmd.Start()
}
