// Command fakehost plays the host side of the board protocol against a real board on a
// serial device or against the desktop simulator started as a child process.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"sync"

	"github.com/abiosoft/ishell"
	"github.com/fatih/color"
	"github.com/golang/glog"

	"smartchess/link"
)

var (
	devPath  string
	execCmd  string
	autoPlay bool

	rxColor   = color.New(color.FgCyan)
	txColor   = color.New(color.FgGreen)
	noteColor = color.New(color.FgYellow)
	errColor  = color.New(color.FgRed, color.Bold)
)

func init() {
	flag.StringVar(&devPath, "dev", "", "Serial device of the board (configured with stty beforehand).")
	flag.StringVar(&execCmd, "exec", "", "Start this simulator command and talk over its stdin/stdout.")
	flag.BoolVar(&autoPlay, "auto", true, "Answer the board automatically.")
}

// bench ties the host logic to a transport. Lines arrive on a reader goroutine while
// shell commands run on the shell goroutine.
type bench struct {
	mu   sync.Mutex
	host *Host
	w    io.Writer
	auto bool
	out  func(string)
}

func (b *bench) send(bodies ...string) {
	for _, body := range bodies {
		line := link.HostPrefix + body
		if _, err := fmt.Fprintf(b.w, "%s\n", line); err != nil {
			b.out(errColor.Sprintf("write: %v", err))
			return
		}
		b.out(txColor.Sprint("<- " + line))
		glog.V(2).Infof("TX %q", line)
	}
}

// receive handles one device line.
func (b *bench) receive(line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}
	glog.V(2).Infof("RX %q", line)
	r, ok := link.ParseReply(line)
	if !ok {
		b.out(line)
		return
	}
	b.out(rxColor.Sprintf("-> %s", line))

	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.auto {
		return
	}
	b.send(b.host.Handle(r)...)
}

func (b *bench) readLoop(r io.Reader) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		b.receive(sc.Text())
	}
	return sc.Err()
}

type transport struct {
	r     io.Reader
	w     io.Writer
	close func() error
}

func openTransport() (*transport, error) {
	switch {
	case devPath != "" && execCmd != "":
		return nil, errors.New("fakehost: -dev and -exec are exclusive")
	case devPath != "":
		f, err := os.OpenFile(devPath, os.O_RDWR, 0)
		if err != nil {
			return nil, fmt.Errorf("fakehost: open %s: %w", devPath, err)
		}
		return &transport{r: f, w: f, close: f.Close}, nil
	case execCmd != "":
		cmd := exec.Command("sh", "-c", execCmd)
		cmd.Stderr = os.Stderr
		stdin, err := cmd.StdinPipe()
		if err != nil {
			return nil, err
		}
		stdout, err := cmd.StdoutPipe()
		if err != nil {
			return nil, err
		}
		if err := cmd.Start(); err != nil {
			return nil, fmt.Errorf("fakehost: start %q: %w", execCmd, err)
		}
		return &transport{r: stdout, w: stdin, close: func() error {
			_ = stdin.Close()
			return cmd.Wait()
		}}, nil
	}
	return nil, errors.New("fakehost: one of -dev or -exec is required")
}

func main() {
	flag.Parse()
	defer glog.Flush()

	t, err := openTransport()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer t.close()

	sh := ishell.New()
	b := &bench{
		host: NewHost(),
		w:    t.w,
		auto: autoPlay,
		out:  func(s string) { sh.Println(s) },
	}
	b.host.Note = func(kind, text string) {
		b.out(noteColor.Sprintf("   [%s] %s", kind, text))
	}

	go func() {
		if err := b.readLoop(t.r); err != nil {
			glog.Errorf("read: %v", err)
		}
		b.out(errColor.Sprint("board disconnected"))
	}()

	sh.Set(benchKey, b)
	sh.SetPrompt("fakehost > ")
	for _, cmd := range commands {
		sh.AddCmd(cmd)
	}
	if args := flag.Args(); len(args) > 0 {
		if err := sh.Process(args...); err != nil {
			glog.Exit(err)
		}
		return
	}
	sh.Run()
}
