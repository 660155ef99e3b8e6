package main

import "github.com/planbox/dimlines/cmd"

func main() {
	cmd.Execute()
}
