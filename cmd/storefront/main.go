// Package main is the entry point for the storefront CLI.
package main

import "storefront/cmd/storefront/cmd"

func main() {
	cmd.Execute()
}
