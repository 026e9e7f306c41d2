package main

import "github.com/M-MorreddygariTharun/Github-Data-Extraction/cmd"

func main() {
	cmd.Execute()
}
