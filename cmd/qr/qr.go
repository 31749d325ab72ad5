package main

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/unixdj/qrenc"
	"github.com/unixdj/qrenc/coding"

	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt/v2"
	"golang.org/x/term"
)

var g = struct {
	border  int           // quiet zone
	fn      string        // filename
	lev     qrenc.Level   // minimum QR correction level
	ver     qrenc.Version // minimum QR version
	mask    qrenc.Mask    // mask pattern
	mode    qrenc.Mode    // encoding mode
	style   qrenc.Style   // output style
	cx      int           // randr source X coordinate index in inc
	inc     [2]int        // randr source X,Y coordinate increments
	verbose bool          // print symbol parameters
	upper   bool          // uppercase
}{
	inc:    [2]int{1, 1},
	border: qrenc.DefaultMargin,
	mode:   qrenc.Byte,
}

func printUsage(w io.Writer) {
	cl := getopt.CommandLine
	prog := cl.Program()
	ul := make([]string, 1, 4)
	ul[0] = cl.UsageLine() + " [string ...]"
	ml := max(70-len("Usage: ")-1-len(prog), 0)
	for i := 0; len(ul[i]) > ml; i++ {
		s := ul[i]
		n := ml - 1
		for n > 0 && (s[n] != ' ' || s[n+1] != '[') {
			n--
		}
		ul = append(ul, s[n+1:])
		ul[i] = s[:max(n, 0)]
		ml = 60
	}
	fmt.Fprint(w, "QR code generator\nUsage: ", prog, " ",
		strings.Join(ul, "\n          "), `
If no string is given, data is read from standard input and the final
newline is stripped.  Defaults: byte mode, level L or higher, version 1
or higher, mask 0.

`)
	var b bytes.Buffer
	cl.PrintOptions(&b)
	w.Write(b.Bytes())
}

type opt func()

func (opt) String() string                    { return "" }
func (o opt) Set(string, getopt.Option) error { o(); return nil }

func usage() {
	printUsage(os.Stderr)
	os.Exit(2)
}

func help() {
	printUsage(os.Stdout)
	os.Exit(0)
}

func version() {
	fmt.Println(`qr version 0.9.0
Copyright (c) 2011 The Go Authors
Copyright (c) 2025 Vadim Vygonets`)
	os.Exit(0)
}

func flip() {
	g.inc[0] = -g.inc[0]
}

func rotate() {
	g.cx ^= 1
	m := g.inc[0] * g.inc[1]
	g.inc[0] *= m
	g.inc[1] *= -m
}

var modeNames = []string{
	"numeric", "alphanumeric", "byte", "kanji", "latin-1",
}

func parseFlags() {
	getopt.SetUsage(usage)
	getopt.Flag(opt(help), 'h', "show this help").SetFlag()
	getopt.Flag(opt(version), 'V', "print version and copyright").SetFlag()
	getopt.Flag(opt(flip), 'f', `flip code horizontally; `+
		`to flip vertically, use "-frr"`).SetFlag()
	getopt.Flag(opt(rotate), 'r', `rotate code 90° counterclockwise; `+
		`-r and -f may be given multiple times, `+
		`order matters: "-fr" = "-rfrr" = "-rrrf"`).SetFlag()
	getopt.Flag(&g.upper, 'i', `ignore case, convert input to uppercase`)
	getopt.Flag(&g.verbose, 'd', `print version, level, mask and mode `+
		`to standard error`)
	getopt.Flag(&g.border, 'm', `quiet zone modules`, "margin")
	getopt.Flag(&g.fn, 'o', `output file, or "-" for `+
		`standard output`, "file")
	ver := getopt.Unsigned('v', 1, &getopt.UnsignedLimit{Base: 0, Bits: 8, Min: 1, Max: 40},
		"minimum QR code version", "ver")
	mask := getopt.Unsigned('k', 0, &getopt.UnsignedLimit{Base: 0, Bits: 8, Min: 0, Max: 7},
		"mask pattern", "mask")
	lev := getopt.Enum('l',
		[]string{"l", "m", "q", "h", "L", "M", "Q", "H"}, "l",
		"minimum error correction level; levels are tried "+
			"in the order L, Q, M, H", "l|m|q|h")
	mode := getopt.Enum('e', modeNames, "byte",
		"encoding mode, one of: "+strings.Join(modeNames, ", "), "mode")
	ff := getopt.Enum('t', qrenc.StyleNames(), "", `output type, one of: `+
		strings.Join(qrenc.StyleNames(), ", ")+
		`; types with "i" appended have colours inverted; `+
		`if no -o is given and standard output is a TTY, `+
		`default is utf8, or half if utf8 is wider than the terminal, `+
		`otherwise ascii`, "type")

	getopt.Parse()
	if g.border < 0 {
		fmt.Fprintln(os.Stderr, "-m must not be negative")
		usage()
	}
	g.ver = qrenc.Version(*ver)
	g.mask = qrenc.Mask(*mask)
	g.lev = qrenc.Level(strings.Index("lmqhLMQH", *lev) & 3)
	var err error
	if g.mode, err = coding.ParseMode(*mode); err != nil {
		log.Fatalln(err)
	}
	if g.fn == "-" {
		g.fn = ""
	}
	if *ff != "" {
		if g.style, err = qrenc.ParseStyle(*ff); err != nil {
			log.Fatalln(err)
		}
	} else if g.fn != "" || !isatty.IsTerminal(os.Stdout.Fd()) {
		g.style = qrenc.ASCII
	} else {
		g.style = qrenc.UTF8
	}
}

// defaultStyle returns the style for s if none is given.  UTF8 is
// replaced with HalfBlock if s does not fit the terminal.
func defaultStyle(s qrenc.Grid, style qrenc.Style) qrenc.Style {
	if style != qrenc.UTF8 || getopt.IsSet('t') {
		return style
	}
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err == nil && width < style.Width(s.Size()) {
		return qrenc.HalfBlock
	}
	return style
}

func main() {
	log.SetFlags(0)
	parseFlags()

	var s string
	if args := getopt.Args(); len(args) != 0 {
		s = strings.Join(args, " ")
	} else {
		var b strings.Builder
		if _, err := io.Copy(&b, os.Stdin); err != nil {
			log.Fatalln(err)
		}
		s, _ = strings.CutSuffix(
			strings.ReplaceAll(b.String(), "\r\n", "\n"), "\n")
	}
	if g.upper {
		s = strings.ToUpper(s)
	}

	c, err := qrenc.EncodeSegment(coding.Segment{Text: s, Mode: g.mode},
		g.ver, g.lev, g.mask, g.border)
	if err != nil {
		log.Fatalln(err)
	}
	if g.verbose {
		log.Printf("version %v, level %v, mask %v, %v mode, %d modules",
			c.Version, c.Level, c.Mask, c.Mode, c.Size())
	}
	write(c)
}

func write(c *qrenc.Symbol) {
	var w = os.Stdout
	open := g.fn != ""
	if open {
		var err error
		if w, err = os.OpenFile(g.fn, os.O_WRONLY|os.O_CREATE|os.O_TRUNC,
			0666); err != nil {
			log.Fatalln(err)
		}
	}
	v := randr(c)
	err := qrenc.WriteText(w, v, defaultStyle(v, g.style))
	if open && err == nil {
		err = w.Close()
	}
	if err != nil {
		log.Fatalln(err)
	}
}

// view is a rotated and reflected Grid.
type view struct {
	qrenc.Grid
	cx  int    // source X coordinate index in inc
	inc [2]int // source X,Y coordinate increments
}

func (v *view) Dark(x, y int) bool {
	var coord [2]int
	n := v.Size() - 1
	coord[v.cx] = n&v.inc[0] + x*v.inc[0]
	coord[v.cx^1] = n&v.inc[1] + y*v.inc[1]
	return v.Grid.Dark(coord[0], coord[1])
}

// randr rotates and reflects c.
func randr(c qrenc.Grid) qrenc.Grid {
	if g.cx == 0 && g.inc == [2]int{1, 1} {
		return c
	}
	return &view{c, g.cx, g.inc}
}
