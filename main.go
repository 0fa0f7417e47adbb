package main

import "github.com/hauran/git-ai/cmd"

func main() {
	cmd.Execute()
}
