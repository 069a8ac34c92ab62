package main

import (
	"github.com/thanhnguyen2187/souls-savior/cli"
)

func main() {
	cli.Start()
}
