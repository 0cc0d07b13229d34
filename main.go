package main

import "github.com/kongnyuysido/portfolio/cmd"

func main() {
	cmd.Execute()
}
