package main

import "github.com/hxuan190/hylo-quote-engine/internal/cli"

func main() {
	cli.Execute()
}
