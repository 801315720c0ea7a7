package main

import "github.com/tasklight/tasklight/cmd"

func main() {
	cmd.Execute()
}
