package main

import "github.com/lintang-b-s/modalroute/cmd/routeplanner/cmd"

func main() {
	cmd.Execute()
}
