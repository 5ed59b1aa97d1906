package main

import "github.com/CARMI-Logistics/sarv-cli/cmd"

func main() {
	cmd.Execute()
}
