package main

import cmd "github.com/rohmanhakim/park-finder/internal/cli"

func main() {
	cmd.Execute()
}
