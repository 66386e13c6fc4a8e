package main

import "github.com/metravel/bookgen/cmd"

func main() {
	cmd.Execute()
}
