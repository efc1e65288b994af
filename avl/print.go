// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"
	"strings"

	"github.com/emicklei/dot"
	"golang.org/x/exp/constraints"

	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/queue"
)

// marks the end of a level-order rendering
const separator = "*************************************"

// String - level-order rendering, one line per level down to the
// full height of the tree with "*" for each absent node
func (tree *Tree[K]) String() string {
	layer := tree.Height()
	if 0 == layer {
		return ""
	}

	var b strings.Builder
	q := queue.New[*Node[K]]()
	q.Push(tree.root)

	count := 0
	for !q.IsEmpty() {
		p, err := q.Pop()
		fault.PanicIfError("level-order pop", err)

		space := strings.Repeat(" ", 1<<(layer-1))
		b.WriteString(space)
		if nil == p {
			b.WriteString("*")
			q.Push(nil)
			q.Push(nil)
		} else {
			fmt.Fprint(&b, p.key)
			q.Push(p.left)
			q.Push(p.right)
		}
		b.WriteString(space)

		// a level is complete when count is one less than a power of two
		count += 1
		if 0 == (count+1)&count {
			layer -= 1
			if 0 == layer {
				break
			}
			b.WriteString("\n")
		}
	}
	b.WriteString("\n" + separator)
	return b.String()
}

// to control the print routine
type branch int

const (
	root  branch = iota
	left  branch = iota
	right branch = iota
)

// Print - display an ASCII graphic representation of the tree,
// returns the depth
func (tree *Tree[K]) Print(w io.Writer) int {
	return printTree(w, tree.root, "", root)
}

// internal print - returns the maximum depth of the tree
func printTree[K constraints.Ordered](w io.Writer, p *Node[K], prefix string, br branch) int {
	if nil == p {
		return 0
	}
	rd := 0
	ld := 0
	if nil != p.right {
		t := "       "
		if left == br {
			t = "|      "
		}
		rd = printTree(w, p.right, prefix+t, right)
	}
	switch br {
	case root:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case left:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case right:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	fmt.Fprintf(w, "%v h:%d\n", p.key, p.height)
	if nil != p.left {
		t := "       "
		if right == br {
			t = "|      "
		}
		ld = printTree(w, p.left, prefix+t, left)
	}
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}

// Dot - Graphviz rendering, absent children of an interior node are
// drawn as points so that a lone child keeps its side
func (tree *Tree[K]) Dot() string {
	g := dot.NewGraph(dot.Directed)
	if nil == tree.root {
		return g.String()
	}

	n := 0
	var add func(p *Node[K]) dot.Node
	add = func(p *Node[K]) dot.Node {
		n += 1
		id := fmt.Sprintf("n%d", n)
		if nil == p {
			return g.Node(id).Label("").Attr("shape", "point")
		}
		node := g.Node(id).Label(fmt.Sprintf("%v (h %d)", p.key, p.height))
		if nil != p.left || nil != p.right {
			g.Edge(node, add(p.left))
			g.Edge(node, add(p.right))
		}
		return node
	}
	add(tree.root)
	return g.String()
}
