package main

import "taskforce.app/taskforce/cmd"

func main() {
	cmd.Execute()
}
