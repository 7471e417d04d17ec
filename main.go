package main

import "wedding-planner/cmd"

func main() {
	cmd.Execute()
}
