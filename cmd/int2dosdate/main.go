package main

import "github.com/aligator/dosdate/internal/cli"

// main decodes the date of one DOS timestamp envelope read from stdin.
func main() {
	cli.Execute(cli.NewIntCmd(cli.OSDeps()))
}
