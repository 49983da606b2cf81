package main

import "github.com/inovacc/libris/cmd"

func main() {
	cmd.Execute()
}
