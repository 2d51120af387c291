package main

import "github.com/convexgen/convexgen/cmd"

func main() {
	cmd.Execute()
}
