package main

import "github.com/kasuboski/watchlist/cmd"

func main() {
	cmd.Execute()
}
