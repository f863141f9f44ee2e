// ritotex converts between TEX/DDS texture containers and PNG.
//
// Usage:
//
//	ritotex info input.tex
//	ritotex decode input.tex [output.png]
//	ritotex encode input.png output.tex [--format bc3] [--mipmaps]
//	ritotex batch indir/ outdir/ [--jobs 4]
package main

import (
	"bytes"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"github.com/tealmage/ritotex"
)

var (
	formatName = pflag.String("format", "bc3", "target pixel format: bc1, bc3 or bgra8")
	mipmaps    = pflag.Bool("mipmaps", false, "write a full mip chain (TEX output only)")
	jobs       = pflag.Int("jobs", 4, "number of concurrent batch workers")
)

func main() {
	pflag.Parse()
	args := pflag.Args()
	if len(args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch args[0] {
	case "info":
		err = info(args[1])
	case "decode":
		out := replaceExt(args[1], ".png")
		if len(args) > 2 {
			out = args[2]
		}
		err = decodeFile(args[1], out)
	case "encode":
		if len(args) < 3 {
			usage()
			os.Exit(2)
		}
		err = encodeFile(args[1], args[2])
	case "batch":
		if len(args) < 3 {
			usage()
			os.Exit(2)
		}
		err = batch(args[1], args[2])
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "ritotex: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: ritotex <info|decode|encode|batch> <input> [output]")
	pflag.PrintDefaults()
}

func parseFormat(name string) (ritotex.Format, error) {
	switch strings.ToLower(name) {
	case "bc1", "dxt1":
		return ritotex.FormatBC1, nil
	case "bc3", "dxt5":
		return ritotex.FormatBC3, nil
	case "bgra8", "raw":
		return ritotex.FormatBGRA8, nil
	default:
		return ritotex.FormatUnknown, fmt.Errorf("unknown format %q", name)
	}
}

func replaceExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}

func info(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	c, err := ritotex.DecodeContainer(data)
	if err != nil {
		return fmt.Errorf("parse %q: %w", path, err)
	}

	fmt.Printf("%s: %dx%d %s, %d level(s)", path, c.Width, c.Height, c.Format, len(c.Levels))
	if c.HasMipChain {
		fmt.Printf(", mip chain")
	}
	if len(c.Trailing) > 0 {
		fmt.Printf(", %d trailing bytes", len(c.Trailing))
	}
	fmt.Println()

	return nil
}

func decodeFile(inPath, outPath string) error {
	data, err := os.ReadFile(inPath)
	if err != nil {
		return err
	}

	img, err := ritotex.Decode(data)
	if err != nil {
		return fmt.Errorf("decode %q: %w", inPath, err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img.NRGBA()); err != nil {
		return fmt.Errorf("encode PNG for %q: %w", inPath, err)
	}

	return os.WriteFile(outPath, buf.Bytes(), 0o644)
}

func encodeFile(inPath, outPath string) error {
	format, err := parseFormat(*formatName)
	if err != nil {
		return err
	}

	f, err := os.Open(inPath)
	if err != nil {
		return err
	}
	src, err := png.Decode(f)
	_ = f.Close()
	if err != nil {
		return fmt.Errorf("decode PNG %q: %w", inPath, err)
	}

	img := ritotex.ImageFrom(src)

	var data []byte
	switch strings.ToLower(filepath.Ext(outPath)) {
	case ".tex":
		if *mipmaps {
			data, err = ritotex.EncodeTexWithMipChain(img, format)
		} else {
			data, err = ritotex.Encode(img, ritotex.ContainerTEX, format)
		}
	case ".dds":
		data, err = ritotex.Encode(img, ritotex.ContainerDDS, format)
	default:
		return fmt.Errorf("output %q: want a .tex or .dds extension", outPath)
	}
	if err != nil {
		return fmt.Errorf("encode %q: %w", outPath, err)
	}

	return os.WriteFile(outPath, data, 0o644)
}

// batch converts every .tex and .dds file in a directory to PNG.
func batch(inDir, outDir string) error {
	converted, err := convertDir(inDir, outDir, *jobs)
	if err != nil {
		return err
	}

	fmt.Printf("Converted %d file(s) into %s\n", converted, outDir)
	return nil
}

// convertDir converts a directory of textures and returns how many
// files actually converted. Files are independent, so workers run
// without coordination; a bad file is reported and skipped, never
// aborting the rest.
func convertDir(inDir, outDir string, jobs int) (int, error) {
	entries, err := os.ReadDir(inDir)
	if err != nil {
		return 0, err
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return 0, err
	}
	if jobs < 1 {
		jobs = 1
	}

	var g errgroup.Group
	g.SetLimit(jobs)

	var converted atomic.Int64
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".tex" && ext != ".dds" {
			continue
		}

		in := filepath.Join(inDir, entry.Name())
		out := filepath.Join(outDir, replaceExt(entry.Name(), ".png"))
		g.Go(func() error {
			if err := decodeFile(in, out); err != nil {
				fmt.Fprintf(os.Stderr, "skip %s: %v\n", in, err)
				return nil
			}
			converted.Add(1)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}

	return int(converted.Load()), nil
}
