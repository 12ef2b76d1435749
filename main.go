package main

import "github.com/audiolibrelab/mediatools/cmd"

func main() {
	cmd.Execute()
}
