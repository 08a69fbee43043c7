package main

import "kidquest/cmd/kq/root"

func main() {
	root.Execute()
}
