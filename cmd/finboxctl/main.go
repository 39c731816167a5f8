package main

import "finbox/cmd/finboxctl/cmd"

func main() {
	cmd.Execute()
}
