package main

import "adminsearch/internal/cli"

func main() {
	cli.Execute()
}
