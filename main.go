// Command rusty-sweeper finds and reclaims disk space, and can watch a
// host's filesystems for space running low.
package main

import (
	"os"

	"rusty-sweeper/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
