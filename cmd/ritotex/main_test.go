package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tealmage/ritotex"
)

func TestConvertDirCountsOnlySuccesses(t *testing.T) {
	inDir := t.TempDir()
	outDir := t.TempDir()

	img := &ritotex.Image{Width: 8, Height: 8, Pixels: make([]byte, 8*8*4)}
	good, err := ritotex.Encode(img, ritotex.ContainerDDS, ritotex.FormatBC1)
	if err != nil {
		t.Fatalf("encode fixture: %v", err)
	}

	if err := os.WriteFile(filepath.Join(inDir, "good.dds"), good, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if err := os.WriteFile(filepath.Join(inDir, "bad.tex"), []byte("not a texture"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if err := os.WriteFile(filepath.Join(inDir, "notes.txt"), []byte("ignored"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	converted, err := convertDir(inDir, outDir, 2)
	if err != nil {
		t.Fatalf("convertDir: %v", err)
	}
	if converted != 1 {
		t.Fatalf("converted %d file(s), want 1", converted)
	}

	if _, err := os.Stat(filepath.Join(outDir, "good.png")); err != nil {
		t.Fatalf("missing converted output: %v", err)
	}
	if _, err := os.Stat(filepath.Join(outDir, "bad.png")); !os.IsNotExist(err) {
		t.Fatalf("skipped file produced output: %v", err)
	}
}
