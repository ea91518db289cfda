package main

import "github.com/aalvaropc/numutil/internal/cli"

func main() {
	cli.Execute()
}
