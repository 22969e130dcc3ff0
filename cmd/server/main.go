package main

import "imagehost/cli"

func main() {
	cli.Execute()
}
