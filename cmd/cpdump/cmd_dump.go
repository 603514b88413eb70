package main

import (
	"fmt"
	"os"

	"github.com/dhamidi/classpool/format"
	"github.com/spf13/cobra"
)

func newDumpCmd() *cobra.Command {
	var (
		dumpFormat string
		resolve    bool
		jobs       int
	)

	cmd := &cobra.Command{
		Use:   "dump <file.class>...",
		Short: "Dump the header and constant pool of class files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := format.NewEncoder(dumpFormat, cmd.OutOrStdout()); err != nil {
				return err
			}

			sources := make([]source, len(args))
			for i, path := range args {
				sources[i] = source{
					name: path,
					load: func() ([]byte, error) { return os.ReadFile(path) },
				}
			}

			failed := 0
			for _, res := range decodeAll(sources, jobs) {
				if res.err != nil {
					failed++
					cmd.PrintErrln(res.err)
					continue
				}
				enc, _ := format.NewEncoder(dumpFormat, cmd.OutOrStdout(),
					format.WithFile(res.name), format.WithResolve(resolve))
				if err := enc.Encode(res.cf); err != nil {
					return fmt.Errorf("encode %s: %w", res.name, err)
				}
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d files failed to decode", failed, len(args))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&dumpFormat, "format", "f", "line", "output format (line, json)")
	cmd.Flags().BoolVarP(&resolve, "resolve", "r", false, "show what each reference resolves to")
	cmd.Flags().IntVarP(&jobs, "jobs", "j", 0, "files to decode in parallel (0 = one per CPU)")

	return cmd
}
