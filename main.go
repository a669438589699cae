package main

import "github.com/they4kman/spoilersweep/cmd"

func main() {
	cmd.Execute()
}
