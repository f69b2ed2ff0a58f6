package main

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/born-ml/tensor4d/tensor"
)

// NewCLI builds the root command.
func NewCLI() *cobra.Command {
	cobra.EnableCommandSorting = false

	var verbose bool

	rootCmd := &cobra.Command{
		Use:           "tensor4d",
		Short:         "Rank-4 tensors with broadcasting addition",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
		},
	}
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging")

	rootCmd.AddCommand(
		newVersionCmd(),
		newStridesCmd(),
		newAddCmd(),
	)
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("tensor4d %s\n", version)
		},
	}
}

func newStridesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "strides D0,D1,D2,D3",
		Short: "Print row-major strides for a shape",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			shape, err := parseShape(args[0])
			if err != nil {
				return err
			}
			strides := shape.ComputeStrides()

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"AXIS", "LENGTH", "STRIDE"})
			for k := range shape {
				table.Append([]string{strconv.Itoa(k), strconv.Itoa(shape[k]), strconv.Itoa(strides[k])})
			}
			table.Render()
			return nil
		},
	}
}

func newAddCmd() *cobra.Command {
	var (
		shapeArg, valuesArg   string
		otherArg, otherValues string
		workers               int
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a broadcast operand into a tensor and print the result",
		Example: `  tensor4d add --shape 1,2,3,4 --values 1..24 --other-shape 1,1,1,1 --other-values 1
  tensor4d add --shape 1,1,2,2 --values 1,2,3,4 --other-shape 1,1,1,2 --other-values 10,20`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			shape, err := parseShape(shapeArg)
			if err != nil {
				return fmt.Errorf("--shape: %w", err)
			}
			otherShape, err := parseShape(otherArg)
			if err != nil {
				return fmt.Errorf("--other-shape: %w", err)
			}
			values, err := parseValues(valuesArg, shape.NumElements())
			if err != nil {
				return fmt.Errorf("--values: %w", err)
			}
			operand, err := parseValues(otherValues, otherShape.NumElements())
			if err != nil {
				return fmt.Errorf("--other-values: %w", err)
			}

			x, err := tensor.New(shape, values)
			if err != nil {
				return err
			}
			defer x.Release()
			y, err := tensor.New(otherShape, operand)
			if err != nil {
				return err
			}
			defer y.Release()

			cfg := workerConfig(workers)
			slog.Debug("adding", "target", shape, "operand", otherShape, "workers", workers)

			if err := addWith(x, y, cfg); err != nil {
				return err
			}
			return printTensor(cmd.OutOrStdout(), x)
		},
	}

	cmd.Flags().StringVar(&shapeArg, "shape", "", "Target shape, e.g. 1,2,3,4")
	cmd.Flags().StringVar(&valuesArg, "values", "", "Target values in row-major order; a..b expands to a range")
	cmd.Flags().StringVar(&otherArg, "other-shape", "1,1,1,1", "Operand shape")
	cmd.Flags().StringVar(&otherValues, "other-values", "", "Operand values in row-major order")
	cmd.Flags().IntVar(&workers, "workers", 1, "Goroutines used for the addition")
	_ = cmd.MarkFlagRequired("shape")
	_ = cmd.MarkFlagRequired("values")
	_ = cmd.MarkFlagRequired("other-values")
	return cmd
}

// workerConfig spreads rows over workers goroutines, down to one row each.
func workerConfig(workers int) tensor.ParallelConfig {
	cfg := tensor.SequentialConfig().WithWorkers(workers)
	cfg.MinChunkSize = 1
	return cfg
}

// addWith reports shape errors instead of panicking.
func addWith(x, y *tensor.Tensor[float64], cfg tensor.ParallelConfig) error {
	if !cfg.Enabled {
		return x.TryAddInPlace(y)
	}
	if err := y.Shape().CanBroadcastTo(x.Shape()); err != nil {
		return err
	}
	x.AddInPlaceWith(y, cfg)
	return nil
}

// printTensor writes one line per (i0, i1, i2) row.
func printTensor(w io.Writer, t *tensor.Tensor[float64]) error {
	shape := t.Shape()
	data := t.Data()
	if _, err := fmt.Fprintf(w, "%s\n", t); err != nil {
		return err
	}
	d3 := shape[3]
	if d3 == 0 {
		return nil
	}
	for off := 0; off < len(data); off += d3 {
		cells := make([]string, d3)
		for i, v := range data[off : off+d3] {
			cells[i] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if _, err := fmt.Fprintln(w, strings.Join(cells, " ")); err != nil {
			return err
		}
	}
	return nil
}

// parseShape parses "d0,d1,d2,d3".
func parseShape(s string) (tensor.Shape, error) {
	var shape tensor.Shape
	parts := strings.Split(s, ",")
	if len(parts) != tensor.Rank {
		return shape, fmt.Errorf("shape %q must have %d comma-separated dimensions", s, tensor.Rank)
	}
	for k, p := range parts {
		d, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return shape, fmt.Errorf("shape %q: dimension %d: %w", s, k, err)
		}
		shape[k] = d
	}
	return shape, shape.Validate()
}

// parseValues parses comma-separated numbers; an item "a..b" expands to a, a+1, ..., b.
// More than limit values is an error, checked before any range is expanded.
func parseValues(s string, limit int) ([]float64, error) {
	var out []float64
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		if lo, hi, ok := strings.Cut(item, ".."); ok {
			from, err := strconv.Atoi(lo)
			if err != nil {
				return nil, fmt.Errorf("range %q: %w", item, err)
			}
			to, err := strconv.Atoi(hi)
			if err != nil {
				return nil, fmt.Errorf("range %q: %w", item, err)
			}
			if to >= from && uint(to-from) >= uint(limit-len(out)) {
				return nil, fmt.Errorf("range %q: more than %d values", item, limit)
			}
			for v := from; v <= to; v++ {
				out = append(out, float64(v))
			}
			continue
		}
		if len(out) >= limit {
			return nil, fmt.Errorf("more than %d values", limit)
		}
		v, err := strconv.ParseFloat(item, 64)
		if err != nil {
			return nil, fmt.Errorf("value %q: %w", item, err)
		}
		out = append(out, v)
	}
	return out, nil
}
