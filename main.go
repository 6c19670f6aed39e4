package main

import "github.com/drksci/resumepdf/cmd"

func main() {
	cmd.Execute()
}
