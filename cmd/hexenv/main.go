// Command hexenv encodes stdin to hex, decodes hex from stdin, or inspects
// a Result Envelope read from stdin.
//
//	hexenv [-v] encode|decode|inspect
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/oy3o/hexcodec"
	hexzap "github.com/oy3o/hexcodec/log/zap"
	"go.uber.org/zap"
)

var errUsage = errors.New("usage: hexenv [-v] encode|decode|inspect")

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("hexenv", flag.ContinueOnError)
	fs.SetOutput(stderr)
	verbose := fs.Bool("v", false, "log decode failures to stderr")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, errUsage)
		return 2
	}

	logger := zap.NewNop()
	if *verbose {
		cfg := zap.NewDevelopmentConfig()
		cfg.OutputPaths = []string{"stderr"}
		if l, err := cfg.Build(); err == nil {
			logger = l
		}
	}
	defer logger.Sync()
	coder := hexcodec.NewCoder(hexcodec.WithLogger(hexzap.ZapLogger{L: logger}))

	if err := dispatch(coder, fs.Arg(0), stdin, stdout); err != nil {
		fmt.Fprintln(stderr, err)
		if errors.Is(err, errUsage) {
			return 2
		}
		return 1
	}
	return 0
}

func dispatch(coder *hexcodec.Coder, cmd string, stdin io.Reader, stdout io.Writer) error {
	switch cmd {
	case "encode":
		in, err := io.ReadAll(stdin)
		if err != nil {
			return err
		}
		_, err = stdout.Write(coder.Encode(in))
		return err

	case "decode":
		in, err := io.ReadAll(stdin)
		if err != nil {
			return err
		}
		out, err := coder.DecodeString(string(trimLineEnding(in)))
		if err != nil {
			return err
		}
		_, err = stdout.Write(out)
		return err

	case "inspect":
		var r hexcodec.Result
		if _, err := r.ReadFrom(stdin); err != nil {
			return err
		}
		if r.IsError() {
			return fmt.Errorf("error code=%d (%s)", int32(r.Code()), r.Code())
		}
		_, err := fmt.Fprintf(stdout, "ok %d bytes\n", len(r.Payload()))
		return err
	}
	return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
}

// trimLineEnding drops one trailing "\n" or "\r\n".
func trimLineEnding(b []byte) []byte {
	if b, ok := bytes.CutSuffix(b, []byte("\r\n")); ok {
		return b
	}
	return bytes.TrimSuffix(b, []byte("\n"))
}
