package main

import "github.com/nixinlabs/nixin/internal/commands"

func main() {
	commands.Execute()
}
