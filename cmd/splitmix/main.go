package main

import (
	"log"

	"gosuda.org/splitmix/internal/cli"
)

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)
	cli.Execute()
}
