package main

import "github.com/corsika-radio/corsikasub/cli"

func main() {
	cli.Launch()
}
