package main

import (
	"context"
	"fmt"
	"io"
	"regexp"

	"github.com/moffa90/go-ddcci/session"
)

var getSetPattern = regexp.MustCompile(`^(.+)=(.+)$`)

// runner executes command-line arguments against one session.
type runner struct {
	s   *session.Session
	out io.Writer
}

// run executes one argument: dump, list, save or control=value.
// Requests the display cannot honor are reported and skipped; only
// transport, protocol and capability parse failures are returned.
func (r *runner) run(ctx context.Context, arg string) error {
	switch arg {
	case "dump":
		fmt.Fprintln(r.out, r.s.Raw())
		return nil
	case "list":
		text, err := r.s.Format()
		if err != nil {
			return err
		}
		fmt.Fprintln(r.out, text)
		return nil
	case "save":
		if err := r.s.Save(ctx); err != nil {
			return err
		}
		fmt.Fprintln(r.out, "Saved current settings")
		return nil
	}

	m := getSetPattern.FindStringSubmatch(arg)
	if m == nil {
		fmt.Fprintf(r.out, "Ignoring unknown argument %s\n", arg)
		return nil
	}
	return r.getSet(ctx, m[1], m[2])
}

func (r *runner) getSet(ctx context.Context, control, value string) error {
	res, err := r.s.GetSet(ctx, control, value)
	if err != nil {
		return fmt.Errorf("%s=%s: %w", control, value, err)
	}
	fmt.Fprintln(r.out, res.Message)
	return nil
}
