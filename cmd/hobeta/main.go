package main

import (
	"github.com/zxtools/hobeta/cmd/hobeta/cmd"
)

func main() {
	cmd.Execute()
}
