// Package main provides the kpalwiki CLI.
package main

import "github.com/mesh-intelligence/kpalwiki/internal/cli"

func main() {
	cli.Execute()
}
