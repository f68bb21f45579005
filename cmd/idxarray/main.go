// Command idxarray inspects array snapshots held in a table store.
package main

import "github.com/hupe1980/idxarray/cmd/idxarray/cmd"

func main() {
	cmd.Execute()
}
