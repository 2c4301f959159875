// Package tuist is a retained-mode terminal UI engine: an element tree with a
// measure/arrange layout protocol, routed events, keyboard focus traversal and
// a double-buffered renderer that writes minimal ANSI diffs.
//
// Widgets embed Element and call Init with themselves:
//
//	type Badge struct {
//	    tuist.Element
//	    Label string
//	}
//
//	func NewBadge(label string) *Badge {
//	    b := &Badge{Label: label}
//	    b.Init(b)
//	    return b
//	}
//
// A Host owns the terminal and runs the frame loop. Handlers and Dispatch
// funcs run on the host goroutine; background sources reach it through
// Dispatch or StartWatchers.
//
//	host, err := tuist.NewHost(term, input)
//	host.SetRoot(tuist.NewTextBlock("hello"))
//	err = host.Run()
package tuist
