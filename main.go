package main

import "github.com/sjzsdu/docbundle/cmd"

func main() {
	cmd.Execute()
}
