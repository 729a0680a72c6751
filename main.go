package main

import "stucash/cmd"

func main() {
	cmd.Execute()
}
