package main

import (
	"db-compare/cmd"
)

func main() {
	cmd.Execute()
}
