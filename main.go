// Command aes128 encrypts text read from stdin or files with AES-128 in ECB mode
// and prints it base64 encoded. With -d it reverses the process.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	aesgo "github.com/mario-areias/aes128/aes-go"
	"github.com/mario-areias/aes128/key"
	"golang.org/x/sys/cpu"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("aes128", flag.ContinueOnError)
	fs.SetOutput(stderr)
	keyHex := fs.String("key", "", "hex encoded 128 bit key")
	keyEnv := fs.String("key-env", "AES128_KEY", "environment variable holding the key if -key is not set")
	decrypt := fs.Bool("d", false, "decrypt base64 input")
	genkey := fs.Bool("genkey", false, "print a random key and exit")
	workers := fs.Int("j", 0, "max goroutines per message (0 means GOMAXPROCS)")
	verbose := fs.Bool("v", false, "print diagnostics to stderr")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *genkey {
		if _, err := fmt.Fprintln(stdout, key.Bit128()); err != nil {
			fmt.Fprintf(stderr, "writing key: %s\n", err)
			return 1
		}
		return 0
	}

	if *keyHex == "" {
		*keyHex = os.Getenv(*keyEnv)
	}
	if *keyHex == "" {
		fmt.Fprintf(stderr, "no key: use -key or set %s\n", *keyEnv)
		return 2
	}
	k, err := key.Parse(*keyHex)
	if err != nil {
		fmt.Fprintf(stderr, "bad key: %s\n", err)
		return 2
	}

	aes := aesgo.NewAES(k)
	aes.MaxParallel = *workers
	if *verbose {
		n := aes.MaxParallel
		if n <= 0 {
			n = runtime.GOMAXPROCS(0)
		}
		fmt.Fprintf(stderr, "workers: %d, cpu has aes instructions: %t (unused)\n", n, cpu.X86.HasAES || cpu.ARM64.HasAES)
	}

	input, err := readInput(fs.Args(), stdin)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	if !*decrypt {
		if _, err := fmt.Fprintln(stdout, aes.EncryptString(string(input))); err != nil {
			fmt.Fprintf(stderr, "writing output: %s\n", err)
			return 1
		}
		return 0
	}

	text, err := aes.DecryptString(strings.TrimSpace(string(input)))
	if err != nil {
		switch {
		case errors.Is(err, aesgo.ErrInvalidEncoding), errors.Is(err, aesgo.ErrInvalidCiphertextLength):
			fmt.Fprintf(stderr, "input is not a valid ciphertext: %s\n", err)
		case errors.Is(err, aesgo.ErrInvalidText):
			fmt.Fprintf(stderr, "wrong key or corrupted input: %s\n", err)
		default:
			fmt.Fprintln(stderr, err)
		}
		return 1
	}
	if _, err := io.WriteString(stdout, text); err != nil {
		fmt.Fprintf(stderr, "writing output: %s\n", err)
		return 1
	}
	return 0
}

// readInput concatenates the named files, or stdin when there are none.
// "-" also means stdin.
func readInput(args []string, stdin io.Reader) ([]byte, error) {
	if len(args) == 0 {
		args = []string{"-"}
	}
	var out []byte
	for _, arg := range args {
		if arg == "-" {
			b, err := io.ReadAll(stdin)
			if err != nil {
				return nil, fmt.Errorf("reading stdin: %w", err)
			}
			out = append(out, b...)
			continue
		}
		b, err := os.ReadFile(arg)
		if err != nil {
			return nil, fmt.Errorf("can't open %q: %w", arg, err)
		}
		out = append(out, b...)
	}
	return out, nil
}
