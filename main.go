package main

import "capstone-showcase/cmd/server"

func main() {
	server.Init()
	server.Run()
}
