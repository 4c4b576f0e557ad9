package main

import "tm-client/cmd"

func main() {
	cmd.Execute()
}
