package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/sliceworks/batchkit/dispatch"
)

// Output formats accepted by --output.
const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

// newPlanCmd creates the plan command: it prints the boundary plan a
// dispatcher would derive for a payload of the given length.
func newPlanCmd() *cobra.Command {
	var (
		length      int
		chunkSize   int
		elementwise bool
		output      string
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Print the boundary plan for a payload length",
		Long: `Computes the contiguous [start, end) boundaries a dispatcher would use
for a payload of the given length, either chunked or elementwise.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if length < 0 {
				return fmt.Errorf("length must be >= 0, got %d", length)
			}

			var bounds []dispatch.Boundary
			if elementwise {
				bounds = dispatch.PlanElements(length)
			} else {
				size := chunkSize
				if size == 0 {
					size = configFromCmd(cmd).Dispatch.ChunkSize
				}
				var err error
				bounds, err = dispatch.PlanChunks(length, size)
				if err != nil {
					return err
				}
			}

			logger.Debug().Int("length", length).Int("boundaries", len(bounds)).Msg("plan computed")
			return renderBoundaries(cmd.OutOrStdout(), bounds, output)
		},
	}

	cmd.Flags().IntVar(&length, "length", 0, "payload length")
	cmd.Flags().IntVar(&chunkSize, "chunk-size", 0, "chunk size (0 = config default)")
	cmd.Flags().BoolVar(&elementwise, "elementwise", false, "plan one boundary per element")
	cmd.Flags().StringVar(&output, "output", outputText, "output format: text, json, or yaml")

	return cmd
}

// renderBoundaries writes the plan in the requested format.
func renderBoundaries(w io.Writer, bounds []dispatch.Boundary, format string) error {
	switch format {
	case outputText:
		for i, b := range bounds {
			if _, err := fmt.Fprintf(w, "chunk %d: [%d, %d) width %d\n", i, b.Start, b.End, b.Width()); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "total: %d boundaries\n", len(bounds)); err != nil {
			return err
		}
		return nil
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(bounds)
	case outputYAML:
		data, err := yaml.Marshal(bounds)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	default:
		return fmt.Errorf("unknown output format %q (want text, json, or yaml)", format)
	}
}
