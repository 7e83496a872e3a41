// Package session answers "get or set control X to Y" requests against an
// opened display, checked against what the display advertises.
//
// A Session reads the capability string once when opened. Each GetSet
// request resolves its tokens with the VCP registry, checks the control is
// advertised, reads the current value and maximum, and only then writes,
// if the value is advertised and within 0..maximum:
//
//	s, err := session.Open(ctx, port)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, req := range [][2]string{{"brightness", "?"}, {"select-color-preset", "6500-k"}} {
//	    res, err := s.GetSet(ctx, req[0], req[1])
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(res.Message)
//	}
//
// Requests the display cannot honor are skipped with a message, not failed,
// so one bad argument does not stop the rest of a command line.
package session
