package main

import "github.com/rayriffy/azx-service-solver/cmd"

func main() {
	cmd.Execute()
}
