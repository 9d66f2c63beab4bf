package main

import "github.com/studyflow/md2notion/cmd"

func main() {
	cmd.Execute()
}
