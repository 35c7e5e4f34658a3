package main

import "stopwatch/host/cmd/stopwatch-sim/cmd"

func main() {
	cmd.Execute()
}
