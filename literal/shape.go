package literal

import (
	"strconv"
	"strings"

	"ndarray-bridge/internal/common"
)

// inferShape walks the tree level by level. Every list on a level must have
// the same length, and a level holds either lists only or leaves only. The
// leaves are returned in row-major order.
func inferShape(root *node) ([]int, []*node, error) {
	if !root.list {
		return []int{}, []*node{root}, nil
	}

	var shape []int

	level := []*node{root}

	for {
		n := len(level[0].children)

		var next []*node

		for _, l := range level {
			if len(l.children) != n {
				return nil, nil, &SyntaxError{
					Err:    ErrInconsistentShape,
					Offset: l.pos,
					Msg:    "list of length " + strconv.Itoa(len(l.children)) + " where " + strconv.Itoa(n) + " expected",
					Token:  "[",
				}
			}

			next = append(next, l.children...)
		}

		shape = append(shape, n)

		if len(next) == 0 {
			return shape, nil, nil
		}

		lists := 0
		for _, c := range next {
			if c.list {
				lists++
			}
		}

		switch lists {
		case 0:
			return shape, next, nil
		case len(next):
			level = next
		default:
			bad := firstMismatch(next)
			return nil, nil, &SyntaxError{
				Err:    ErrInconsistentShape,
				Offset: bad.pos,
				Msg:    "lists and scalars mixed at depth " + strconv.Itoa(len(shape)),
				Token:  bad.token(),
			}
		}
	}
}

// firstMismatch returns the first node whose kind differs from the first
// node's.
func firstMismatch(nodes []*node) *node {
	for _, c := range nodes[1:] {
		if c.list != nodes[0].list {
			return c
		}
	}

	return nodes[0]
}

func (n *node) token() string {
	if n.list {
		return "["
	}

	return n.text
}

type family int

const (
	familyNumeric family = iota
	familyBool
	familyString
)

var familyNames = [...]string{"numeric", "boolean", "string"}

func familyOf(n *node) family {
	switch {
	case isBool(n.text):
		return familyBool
	case strings.HasPrefix(n.text, `"`):
		return familyString
	default:
		return familyNumeric
	}
}

// checkFamily requires all leaves to belong to the family of the first leaf.
func checkFamily(leaves []*node) error {
	if common.IsEmpty(leaves) {
		return nil
	}

	want := familyOf(leaves[0])

	for _, leaf := range leaves[1:] {
		if got := familyOf(leaf); got != want {
			return &SyntaxError{
				Err:    ErrInconsistentElementType,
				Offset: leaf.pos,
				Msg:    familyNames[got] + " value among " + familyNames[want] + " values",
				Token:  leaf.text,
			}
		}
	}

	return nil
}

func isBool(s string) bool {
	return strings.EqualFold(s, "true") || strings.EqualFold(s, "false")
}
