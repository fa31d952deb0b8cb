// Command treedemo builds an OrderedTree from a sequence of values and prints
// its traversals, the result of some searches, and the tree after deletions.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/g-m-twostay/ordered-tree/Trees"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var values, searches, deletes []int
	var level string
	cmd := &cobra.Command{
		Use:   "treedemo",
		Short: "Build an OrderedTree and print its traversals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := zerolog.ParseLevel(level)
			if err != nil {
				return fmt.Errorf("invalid log level %q: %w", level, err)
			}
			logger := zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).
				Level(lvl).With().Timestamp().Logger()
			return run(cmd.OutOrStdout(), logger, values, searches, deletes)
		},
	}
	cmd.Flags().IntSliceVar(&values, "values", []int{40, 20, 60, 10, 30, 50, 70}, "values to insert, in order")
	cmd.Flags().IntSliceVar(&searches, "search", []int{30, 100}, "values to search for")
	cmd.Flags().IntSliceVar(&deletes, "delete", []int{20}, "values to delete, in order")
	cmd.Flags().StringVar(&level, "log-level", "info", "log level (trace|debug|info|warn|error|disabled)")
	return cmd
}

func join(s []int) string {
	strs := make([]string, len(s))
	for i, v := range s {
		strs[i] = strconv.Itoa(v)
	}
	return strings.Join(strs, " ")
}

func run(out io.Writer, logger zerolog.Logger, values, searches, deletes []int) error {
	w := bufio.NewWriter(out)
	tree := Trees.New[int]()
	for _, v := range values {
		tree.Insert(v)
		logger.Debug().Int("value", v).Uint("size", tree.Size()).Msg("inserted")
	}
	logger.Info().Uint("size", tree.Size()).Int("height", tree.Height()).Msg("tree built")

	fmt.Fprintf(w, "In-order Traversal: %s\n", join(tree.InOrder()))
	fmt.Fprintf(w, "Level-order Traversal: %s\n", join(tree.LevelOrder()))
	for _, v := range searches {
		found := tree.Search(v)
		logger.Debug().Int("value", v).Bool("found", found).Msg("searched")
		res := "Not Found"
		if found {
			res = "Found"
		}
		fmt.Fprintf(w, "Searching for %d: %s\n", v, res)
	}
	for _, v := range deletes {
		fmt.Fprintf(w, "Deleting %d from the tree...\n", v)
		removed := tree.Delete(v)
		logger.Debug().Int("value", v).Bool("removed", removed).Uint("size", tree.Size()).Msg("deleted")
	}
	if len(deletes) > 0 {
		fmt.Fprintf(w, "In-order Traversal after deletion: %s\n", join(tree.InOrder()))
	}
	fmt.Fprintf(w, "Height of the tree: %d\n", tree.Height())
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
