package main

import "github.com/kouper/carechat/cmd"

func main() {
	cmd.Execute()
}
