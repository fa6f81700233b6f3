package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sliceworks/batchkit/store"
)

// newStoreCmd creates the store command group for working with write-once
// dump files.
func newStoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "store",
		Short: "Work with write-once key/value dumps",
	}
	cmd.AddCommand(newStoreQueryCmd(), newStoreDumpCmd())
	return cmd
}

// newStoreQueryCmd creates the store query command: loads a dump (sealing
// the store) and looks up one key.
func newStoreQueryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "query <dump-path> <key>",
		Short: "Load a dump and query one key",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := store.LoadDump(args[0], logger)
			if err != nil {
				return err
			}

			value, ok := s.Query(args[1])
			if !ok {
				return fmt.Errorf("key %q not found in %s", args[1], args[0])
			}
			cmd.Println(string(value))
			return nil
		},
	}
}

// newStoreDumpCmd creates the store dump command: builds a dump file from
// literal key=value entries.
func newStoreDumpCmd() *cobra.Command {
	var entries []string

	cmd := &cobra.Command{
		Use:   "dump <out-path>",
		Short: "Build a dump file from literal entries",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			keys := make([]string, 0, len(entries))
			values := make([][]byte, 0, len(entries))
			for _, e := range entries {
				key, value, found := strings.Cut(e, "=")
				if !found {
					return fmt.Errorf("entry %q is not key=value", e)
				}
				keys = append(keys, key)
				values = append(values, []byte(value))
			}

			s := store.NewWriteOnce(logger)
			if err := s.Add(keys, values); err != nil {
				return err
			}
			if err := s.WriteDump(args[0]); err != nil {
				return err
			}
			cmd.Printf("Wrote %d entries to %s\n", len(keys), args[0])
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&entries, "entry", nil, "key=value entry (repeatable)")
	return cmd
}
