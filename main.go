package main

import "github.com/mentora/mentora_backend/cmd"

func main() {
	cmd.Execute()
}
