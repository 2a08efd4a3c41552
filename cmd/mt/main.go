package main

import "medtrack/cmd/mt/root"

func main() {
	root.Execute()
}
