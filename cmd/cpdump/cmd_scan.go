package main

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/dhamidi/classpool/classfile"
	"github.com/spf13/cobra"
)

func newScanCmd() *cobra.Command {
	var jobs int

	cmd := &cobra.Command{
		Use:   "scan <path>",
		Short: "Decode every class file in a directory, jar or zip file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			info, err := os.Stat(path)
			if err != nil {
				return fmt.Errorf("stat %s: %w", path, err)
			}

			var sources []source
			switch {
			case info.IsDir():
				sources, err = scanDirectory(path)
			case isArchive(path):
				var closeArchive func() error
				sources, closeArchive, err = scanArchive(path)
				if closeArchive != nil {
					defer closeArchive()
				}
			case filepath.Ext(path) == ".class":
				sources = []source{fileSource(path)}
			default:
				return fmt.Errorf("unsupported file type: %s", filepath.Ext(path))
			}
			if err != nil {
				return err
			}

			return report(cmd, decodeAll(sources, jobs))
		},
	}

	cmd.Flags().IntVarP(&jobs, "jobs", "j", 0, "files to decode in parallel (0 = one per CPU)")

	return cmd
}

func isArchive(path string) bool {
	ext := filepath.Ext(path)
	return ext == ".jar" || ext == ".zip"
}

func fileSource(path string) source {
	return source{
		name: path,
		load: func() ([]byte, error) { return os.ReadFile(path) },
	}
}

func scanDirectory(root string) ([]source, error) {
	var sources []source
	err := filepath.WalkDir(root, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && filepath.Ext(p) == ".class" {
			sources = append(sources, fileSource(p))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}
	return sources, nil
}

// scanArchive lists the class files in a jar or zip. The returned close
// function must be called once the sources have been decoded.
func scanArchive(path string) ([]source, func() error, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open zip: %w", err)
	}

	var sources []source
	for _, f := range r.File {
		if f.FileInfo().IsDir() || filepath.Ext(f.Name) != ".class" {
			continue
		}
		sources = append(sources, source{
			name: path + "!/" + f.Name,
			load: func() ([]byte, error) {
				rc, err := f.Open()
				if err != nil {
					return nil, fmt.Errorf("open %s: %w", f.Name, err)
				}
				defer rc.Close()
				return io.ReadAll(rc)
			},
		})
	}
	return sources, r.Close, nil
}

func releaseLabel(h classfile.Header) string {
	if release := h.JavaRelease(); release != "" {
		return "Java " + release
	}
	return fmt.Sprintf("major version %d", h.MajorVersion)
}

func report(cmd *cobra.Command, results []result) error {
	out := cmd.OutOrStdout()
	versions := map[string]int{}
	var failures []string

	for _, res := range results {
		if res.err != nil {
			failures = append(failures, res.err.Error())
			continue
		}
		label := releaseLabel(res.cf.Header)
		versions[label]++
		fmt.Fprintf(out, "[OK] %s (%s, %d constants)\n", res.name, label, res.cf.ConstantPool.Len())
	}

	fmt.Fprintf(out, "\n=== SCAN COMPLETE ===\n")
	fmt.Fprintf(out, "Class files: %d\n", len(results))
	labels := make([]string, 0, len(versions))
	for label := range versions {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	for _, label := range labels {
		fmt.Fprintf(out, "  %s: %d\n", label, versions[label])
	}
	fmt.Fprintf(out, "Errors: %d\n", len(failures))
	for _, f := range failures {
		fmt.Fprintf(out, "  - %s\n", f)
	}

	if len(failures) > 0 {
		return fmt.Errorf("%d of %d class files failed to decode", len(failures), len(results))
	}
	return nil
}
