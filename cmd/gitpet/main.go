// gitpet is a virtual pet that feeds on your git commits.
package main

import (
	"os"

	"github.com/gitpet/gitpet/internal/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
