package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/nvr-ai/go-sampledata/data"
	"github.com/nvr-ai/go-sampledata/images"
	"github.com/nvr-ai/go-sampledata/profiler"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

func runList(e *env, args []string) error {
	fs := newFlagSet(e, "list")
	if err := parse(fs, args, 0); err != nil {
		return err
	}

	w := tabwriter.NewWriter(e.stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tFILENAME\tLOADS AS\tLICENSE")
	for _, entry := range data.Catalog() {
		filename, loads := entry.Filename, "as stored"
		switch {
		case entry.Removed:
			filename, loads = "-", "removed"
		case entry.Boolean:
			loads = "bool mask"
		case entry.Grayscale:
			loads = "grayscale"
		}
		license := entry.License
		if license == "" {
			license = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", entry.Name, filename, loads, license)
	}
	return w.Flush()
}

func runInfo(e *env, args []string) error {
	fs := newFlagSet(e, "info")
	if err := parse(fs, args, 1); err != nil {
		return err
	}
	loader, err := e.loader()
	if err != nil {
		return err
	}

	info, err := loader.Info(fs.Arg(0))
	if err != nil {
		return err
	}

	enc := yaml.NewEncoder(e.stdout)
	enc.SetIndent(2)
	if err := enc.Encode(info); err != nil {
		return errors.Wrap(err, "failed to encode info")
	}
	return enc.Close()
}

// loadTarget loads a catalog name or, failing that, a file under the data
// directory.
func loadTarget(loader *data.Loader, target string, gray, boolean bool) (*images.Image, error) {
	if entry, ok := data.Lookup(target); ok {
		if entry.Removed || (!gray && !boolean) {
			return loader.ByName(entry.Name)
		}
		target = entry.Filename
	}

	var opts []data.LoadOption
	if gray {
		opts = append(opts, data.Grayscale())
	}
	if boolean {
		return loader.LoadBool(target, opts...)
	}
	return loader.Load(target, opts...)
}

func runLoad(e *env, args []string) error {
	fs := newFlagSet(e, "load")
	gray := fs.Bool("gray", false, "Collapse color channels")
	boolean := fs.Bool("bool", false, "Threshold into a bool mask")
	if err := parse(fs, args, 1); err != nil {
		return err
	}
	loader, err := e.loader()
	if err != nil {
		return err
	}

	img, err := loadTarget(loader, fs.Arg(0), *gray, *boolean)
	if err != nil {
		return err
	}

	fmt.Fprintf(e.stdout, "%s: %s checksum=%s distinct=%d\n",
		fs.Arg(0), img, img.Checksum(), len(img.Unique()))
	return nil
}

func runVerify(e *env, args []string) error {
	fs := newFlagSet(e, "verify")
	if err := parse(fs, args, 0); err != nil {
		return err
	}
	loader, err := e.loader()
	if err != nil {
		return err
	}

	failed := 0
	w := tabwriter.NewWriter(e.stdout, 0, 0, 2, ' ', 0)
	for _, r := range loader.Verify() {
		if r.OK() {
			fmt.Fprintf(w, "ok\t%s\t%s\t%d bytes\n", r.Entry.Filename, r.Format, r.Size)
			continue
		}
		failed++
		fmt.Fprintf(w, "FAIL\t%s\t%v\n", r.Entry.Filename, r.Err)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if failed > 0 {
		return errors.Errorf("%d catalog file(s) failed verification", failed)
	}
	return nil
}

func runBench(e *env, args []string) error {
	fs := newFlagSet(e, "bench")
	n := fs.Int("n", 10, "Loads per image")
	if err := parse(fs, args, 0); err != nil {
		return err
	}
	if *n <= 0 {
		return usageErrorf("bench: -n must be positive")
	}
	loader, err := e.loader()
	if err != nil {
		return err
	}

	prof := profiler.New(*n)
	for _, entry := range data.Catalog() {
		if entry.Removed {
			continue
		}
		for i := 0; i < *n; i++ {
			done := prof.StartOperation(entry.Name)
			img, err := loader.ByName(entry.Name)
			done()
			if err != nil {
				return err
			}
			prof.RecordMetric("megapixels", float64(img.Height()*img.Width())/1e6)
		}
	}

	fmt.Fprintf(e.stdout, "backend: %s\n", loader.Backend())
	prof.Report(e.stdout)
	return nil
}
