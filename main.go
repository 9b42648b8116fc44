package main

import "github.com/UsmanZaka51/emotion-api/cmd"

func main() {
	cmd.Execute()
}
