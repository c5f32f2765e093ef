package main

import "github.com/KaramelBytes/docarchive-cli/cmd"

func main() {
	cmd.Execute()
}
