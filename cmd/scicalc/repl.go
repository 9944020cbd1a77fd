package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/term"
	"nickandperla.net/scicalc/pkg/scicalc"
)

func printBanner(w io.Writer) {
	fmt.Fprintln(w, "scicalc keypad (Ctrl+D to exit)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  0-9 . digits     + - * / ^ operators   ( ) parens    = or Enter evaluate")
	fmt.Fprintln(w, "  s c t sin/cos/tan  l ln  g log10  q sqrt  p π  e e  ! factorial")
	fmt.Fprintln(w, "  r 1/x  n ±  i inverse  d deg/rad  Backspace delete  C or Esc clear")
	fmt.Fprintln(w)
}

func runREPL(e *scicalc.Engine, sess *session) {
	// Check if stdin is a terminal
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		// Not a TTY, fall back to basic mode
		runBasicREPL(os.Stdin, os.Stdout, e, sess)
		return
	}

	printBanner(os.Stdout)
	runRawREPL(e, sess)
}

// runBasicREPL handles non-TTY input: every line is replayed as key presses
// and the resulting display line is printed.
func runBasicREPL(r io.Reader, w io.Writer, e *scicalc.Engine, sess *session) {
	reader := bufio.NewReader(r)

	for {
		line, err := reader.ReadString('\n')
		line = strings.TrimRight(line, "\r\n")

		if line != "" {
			for _, k := range line {
				switch press(e, k) {
				case actQuit:
					return
				case actEvaluated:
					sess.save(e)
				}
			}
			fmt.Fprintln(w, status(e))
		}

		if err != nil {
			return
		}
	}
}

// runRawREPL handles TTY input one key at a time.
func runRawREPL(e *scicalc.Engine, sess *session) {
	fd := int(os.Stdin.Fd())

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set raw mode: %v\n", err)
		runBasicREPL(os.Stdin, os.Stdout, e, sess)
		return
	}
	defer term.Restore(fd, oldState)

	redraw := func() {
		fmt.Print("\r\x1b[K" + status(e))
	}
	redraw()

	for {
		k, ok := readKey(os.Stdin)
		if !ok {
			fmt.Print("\r\n")
			return
		}
		switch press(e, k) {
		case actQuit:
			fmt.Print("\r\n")
			return
		case actEvaluated:
			sess.save(e)
		}
		redraw()
	}
}

// readKey reads one rune from r, assembling UTF-8 sequences for glyph keys
// such as × and π.
func readKey(r io.Reader) (rune, bool) {
	buf := make([]byte, 1)
	n, err := r.Read(buf)
	if err != nil || n == 0 {
		return 0, false
	}
	b := buf[0]
	if b < 0x80 {
		return rune(b), true
	}

	utfBuf := []byte{b}
	numBytes := 0
	if b&0xE0 == 0xC0 {
		numBytes = 1
	} else if b&0xF0 == 0xE0 {
		numBytes = 2
	} else if b&0xF8 == 0xF0 {
		numBytes = 3
	}
	for i := 0; i < numBytes; i++ {
		n, err := r.Read(buf)
		if err != nil || n == 0 {
			break
		}
		utfBuf = append(utfBuf, buf[0])
	}
	k, _ := utf8.DecodeRune(utfBuf)
	return k, true
}
