package main

import "github.com/surpluslink/surpluslink/cmd/surpluslink-cli/cmd"

func main() {
	cmd.Execute()
}
