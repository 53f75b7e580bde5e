package main

import "github.com/studyos/studyos/cmd/studyos"

func main() {
	studyos.Execute()
}
