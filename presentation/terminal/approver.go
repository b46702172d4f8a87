package terminal

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
)

type answer struct {
	line string
	err  error
}

// Approver asks yes/no questions on a terminal. One goroutine owns the
// reader, so a prompt abandoned on cancel never races the next one.
type Approver struct {
	reader *bufio.Reader
	out    io.Writer

	once    sync.Once
	answers chan answer
}

func NewApprover(in io.Reader, out io.Writer) *Approver {
	return &Approver{
		reader:  bufio.NewReader(in),
		out:     out,
		answers: make(chan answer),
	}
}

func (a *Approver) readLines() {
	for {
		line, err := a.reader.ReadString('\n')
		a.answers <- answer{line, err}
		if err != nil {
			close(a.answers)
			return
		}
	}
}

// Confirm prints prompt and waits for y/yes. Anything else, including EOF,
// is a no. A line typed after a canceled prompt answers the next one.
func (a *Approver) Confirm(ctx context.Context, prompt string) (bool, error) {
	a.once.Do(func() { go a.readLines() })

	fmt.Fprintf(a.out, "%s [y/N]: ", prompt)

	select {
	case <-ctx.Done():
		fmt.Fprintln(a.out)
		return false, ctx.Err()
	case ans, ok := <-a.answers:
		if !ok {
			return false, nil
		}
		if ans.err != nil && ans.err != io.EOF {
			return false, ans.err
		}
		switch strings.ToLower(strings.TrimSpace(ans.line)) {
		case "y", "yes":
			return true, nil
		default:
			return false, nil
		}
	}
}
