package main

import "github.com/nfrund/avatarkit/cmd/avatarkit/cmd"

func main() {
	cmd.Execute()
}
