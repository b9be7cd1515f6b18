// Command wbwtc is a thin command-line wrapper around the wbwt codec: it
// reads a text file, runs compress+serialize (or deserialize+decompress),
// and writes the result, optionally reporting the compression ratio.
// Logging is a zerolog console writer with TTY-aware coloring via
// go-colorable/go-isatty; the -version flag validates the build version
// as a semver string (see DESIGN.md for the library grounding).
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/blang/semver/v4"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"

	"wbwt"
	"wbwt/internal/config"
)

var (
	flagDecompress = flag.Bool("d", false, "decompress")
	flagIn         = flag.String("i", "", "input file (required)")
	flagOut        = flag.String("o", "", "output file")
	flagNoOut      = flag.Bool("no_out", false, "no output")
	flagReport     = flag.Bool("r", false, "report compression ratio")
	flagConfig     = flag.String("config", "", "optional YAML config file")
	flagVersion    = flag.Bool("version", false, "report executable version")
)

const (
	extension  = ".wbwt"
	textPrefix = "wbwt1:"
	version    = "0.1.0"
)

var log zerolog.Logger

func quitF(format string, args ...interface{}) {
	log.Error().Msgf(strings.TrimSuffix(format, "\n"), args...)
	os.Exit(1)
}

func assertNoError(err error) {
	if err != nil {
		quitF("%v", err)
	}
}

func setupLogging(level string) {
	out := colorable.NewColorableStderr()
	if !isatty.IsTerminal(os.Stderr.Fd()) {
		out = os.Stderr
	}
	console := zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05"}
	log = zerolog.New(console).With().Timestamp().Logger()

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
}

func main() {
	flag.Parse()

	if _, err := semver.Parse(version); err != nil {
		panic("wbwtc: malformed build version: " + err.Error())
	}
	if *flagVersion {
		fmt.Println("wbwtc v" + version)
		os.Exit(0)
	}

	cfg, err := config.Load(*flagConfig)
	setupLogging(cfg.LogLevel)
	assertNoError(err)

	if *flagIn == "" {
		quitF("no input file specified")
	}

	in, err := os.ReadFile(*flagIn)
	assertNoError(err)

	if *flagOut != "" && *flagNoOut {
		quitF("options -no_out and -o are mutually exclusive")
	}
	if *flagOut == "" {
		if *flagDecompress {
			if strings.HasSuffix(*flagIn, extension) {
				*flagOut = (*flagIn)[:len(*flagIn)-len(extension)]
			} else {
				*flagOut = *flagIn + ".decompressed"
			}
		} else {
			*flagOut = *flagIn + extension
		}
	}

	var out []byte
	var lenC, lenD int

	if *flagDecompress {
		text := strings.TrimPrefix(strings.TrimSpace(string(in)), textPrefix)
		frame, err := decodeBase64URL(text)
		assertNoError(err)

		p, err := wbwt.Deserialize(frame)
		assertNoError(err)
		decoded, err := wbwt.Decompress(p)
		assertNoError(err)

		out = []byte(decoded)
		lenC, lenD = len(in), len(out)
	} else {
		if len(in) > cfg.MaxInputChars {
			quitF("input exceeds configured max of %d characters", cfg.MaxInputChars)
		}
		p := wbwt.Compress(string(in))
		frame := wbwt.Serialize(p)
		out = []byte(textPrefix + encodeBase64URL(frame))
		lenC, lenD = len(out), len(in)
	}

	if *flagNoOut {
		*flagOut = ""
	} else {
		assertNoError(os.WriteFile(*flagOut, out, 0o600))
	}

	if *flagReport && lenD > 0 {
		ratioPct := lenC * 100 / lenD
		log.Info().Msgf("%dB -> %dB compression ratio %d.%02d", lenD, lenC, ratioPct/100, ratioPct%100)
	}
}
