package main

import (
	"github.com/llehouerou/rotor/cmd"
)

func main() {
	cmd.Execute()
}
