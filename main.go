package main

import "github.com/peekknuf/txnqa/cmd"

func main() {
	cmd.Execute()
}
