// Command adminsearch runs the catalog search bar
package main

import "adminsearch/internal/cli"

func main() {
	cli.Execute()
}
