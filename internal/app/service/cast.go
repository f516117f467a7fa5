package service

import (
	"sort"
	"strings"
)

type castable interface {
	CastFailure(path string) string
}

// castErrors maps a request path to the message for a value that could not
// be cast to the path's type.
type castErrors map[string]string

func (c *castErrors) check(path string, v castable) {
	c.set(path, v.CastFailure(path))
}

func (c *castErrors) set(path, msg string) {
	if msg == "" {
		return
	}
	if *c == nil {
		*c = castErrors{}
	}
	(*c)[path] = msg
}

func (c castErrors) has(path string) bool {
	_, ok := c[path]
	return ok
}

// messages returns the failures ordered by path.
func (c castErrors) messages() []string {
	paths := make([]string, 0, len(c))
	for p := range c {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		out = append(out, c[p])
	}
	return out
}

func (c castErrors) String() string {
	return strings.Join(c.messages(), ", ")
}
