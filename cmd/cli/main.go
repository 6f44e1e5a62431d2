package main

import "bitbucket.org/Amartha/go-emi-collection/cmd/cli/cmd"

func main() {
	cmd.Execute()
}
