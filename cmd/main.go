// cmd/main.go
package main

import cmd "github.com/mwiater/gostats/cmd/gostats"

// main starts the gostats CLI by delegating to the cobra root command
// defined in the gostats package.
func main() {
	cmd.Execute()
}
