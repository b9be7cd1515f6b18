// Command wbwtbench walks a corpus of text files and reports, per file,
// the size of the wbwt container (Compress+Serialize) against a static
// Huffman coding of the same bytes -- a baseline with no BWT/MTF/adaptive
// model stage, to show what those stages actually buy over the corpus.
// The -profile flag wraps the run in a CPU or memory profile (see
// DESIGN.md for the library grounding).
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/icza/bitio"
	"github.com/pkg/profile"

	"wbwt"
	"wbwt/huffman"
)

var (
	flagCorpus  = flag.String("corpus", "", "directory of text files to benchmark (required)")
	flagProfile = flag.String("profile", "", "enable profiling: cpu, mem, or empty to disable")
)

func startProfile() interface{ Stop() } {
	switch *flagProfile {
	case "cpu":
		return profile.Start(profile.CPUProfile, profile.ProfilePath("."))
	case "mem":
		return profile.Start(profile.MemProfile, profile.ProfilePath("."))
	case "":
		return nil
	default:
		fmt.Fprintf(os.Stderr, "wbwtbench: unknown -profile value %q (want cpu, mem, or empty)\n", *flagProfile)
		os.Exit(2)
		return nil
	}
}

func main() {
	flag.Parse()
	if *flagCorpus == "" {
		fmt.Fprintln(os.Stderr, "wbwtbench: -corpus is required")
		os.Exit(2)
	}

	if stopper := startProfile(); stopper != nil {
		defer stopper.Stop()
	}

	entries, err := os.ReadDir(*flagCorpus)
	if err != nil {
		fmt.Fprintf(os.Stderr, "wbwtbench: %v\n", err)
		os.Exit(1)
	}

	var totalRaw, totalWBWT, totalHuffman int
	fmt.Printf("%-32s %10s %10s %10s %8s %8s\n", "file", "raw", "wbwt", "huffman", "wbwt%", "huff%")
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(*flagCorpus, entry.Name())
		raw, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "wbwtbench: skipping %s: %v\n", path, err)
			continue
		}
		if len(raw) == 0 {
			continue
		}

		frame := wbwt.Serialize(wbwt.Compress(string(raw)))
		hsize := huffmanSize(raw)

		totalRaw += len(raw)
		totalWBWT += len(frame)
		totalHuffman += hsize

		fmt.Printf("%-32s %10d %10d %10d %7.1f%% %7.1f%%\n",
			entry.Name(), len(raw), len(frame), hsize,
			100*float64(len(frame))/float64(len(raw)),
			100*float64(hsize)/float64(len(raw)))
	}

	if totalRaw > 0 {
		fmt.Printf("%-32s %10d %10d %10d %7.1f%% %7.1f%%\n",
			"TOTAL", totalRaw, totalWBWT, totalHuffman,
			100*float64(totalWBWT)/float64(totalRaw),
			100*float64(totalHuffman)/float64(totalRaw))
	}
}

// huffmanSize returns the size, in bytes, of a static byte-wise Huffman
// coding of raw: one code table built from raw's own symbol frequencies
// (no adaptive model, no BWT/MTF preprocessing), used purely as a
// from-scratch entropy-coding baseline for the wbwt pipeline above it.
func huffmanSize(raw []byte) int {
	freq := make([]int, 256)
	for _, b := range raw {
		freq[b]++
	}
	code := huffman.NewCodeFromSymbolFrequencies(freq)

	buf := &bytes.Buffer{}
	w := bitio.NewWriter(buf)
	enc := huffman.NewEncoder(code, w)

	symbols := make([]int, len(raw))
	for i, b := range raw {
		symbols[i] = int(b)
	}
	if _, err := enc.Write(symbols); err != nil {
		panic("wbwtbench: huffman encode failed: " + err.Error())
	}
	if err := w.Close(); err != nil {
		panic("wbwtbench: huffman flush failed: " + err.Error())
	}
	return buf.Len()
}
