package main

import "github.com/benzenergy/benzconfig/cmd"

func main() {
	cmd.Execute()
}
