package main

import "github.com/RyuKangIn/GPT-Killer-Killer/internal/cli"

func main() {
	cli.Execute()
}
