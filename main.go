package main

import "github.com/they4kman/gosnake/cmd"

func main() {
	cmd.Execute()
}
