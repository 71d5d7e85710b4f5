package main

import "github.com/shogo82148/posit/internal/cli"

func main() {
	cli.Execute()
}
