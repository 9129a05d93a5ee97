package main

import "workday-audit/cmd"

func main() {
	cmd.Execute()
}
