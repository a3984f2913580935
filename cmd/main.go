package main

import "pullSecretPublisher/internal/cli"

func main() {
	cli.Execute()
}
