// Command pathfind plans routes on a weighted grid and draws the result.
//
//	pathfind dijkstra                      # the demo board, (1,4) → (8,3)
//	pathfind astar --scenario board.yaml   # A* on a custom board
//	pathfind bfs --color=never
//	pathfind dot | dot -Tsvg > tree.svg
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"
)

func main() {
	os.Exit(execute(newRootCmd(os.Stdout)))
}

// execute runs cmd, reports any error on its error stream and returns the
// process exit status.
func execute(cmd *cobra.Command) int {
	err := cmd.Execute()
	klog.Flush()
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return 1
	}

	return 0
}
