package main

import (
	"context"
	"fmt"
	"strings"

	"go.lsp.dev/protocol"

	"github.com/frenchy64/quotefold/encode"
	"github.com/frenchy64/quotefold/expand"
	"github.com/frenchy64/quotefold/form"
	"github.com/frenchy64/quotefold/token"
)

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.node == nil {
		return nil, nil
	}

	pos := params.Position
	line := int(pos.Line)
	col := int(pos.Character)

	targetNode := s.findNodeAtPosition(doc.node, doc.positions, line, col)
	if targetNode == nil {
		return nil, nil
	}

	hoverText := buildHoverText(targetNode)
	if hoverText == "" {
		return nil, nil
	}

	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: hoverText,
		},
	}, nil
}

func (s *Server) findNodeAtPosition(root *form.Node, positions map[*form.Node]*token.Pos, line, col int) *form.Node {
	var bestNode *form.Node
	var bestPos *token.Pos

	var visit func(*form.Node)
	visit = func(node *form.Node) {
		if node == nil {
			return
		}

		pos := positions[node]
		if pos != nil {
			posLine, posCol := pos.LineCol()
			if posLine == line {
				if bestPos == nil || abs(posCol-col) < abs(bestPos.Col()-col) {
					bestNode = node
					bestPos = pos
				}
			}
		}

		for _, child := range node.Keys {
			visit(child)
		}
		for _, child := range node.Values {
			visit(child)
		}
	}

	visit(root)
	return bestNode
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func buildHoverText(node *form.Node) string {
	var parts []string

	parts = append(parts, fmt.Sprintf("**Type:** %s", node.Type))
	parts = append(parts, fmt.Sprintf("**Expansion:** %s", classifyInfo(node)))

	x, err := expand.Expand(node)
	if err != nil {
		parts = append(parts, fmt.Sprintf("**Error:** %v", err))
		return strings.Join(parts, "\n\n")
	}
	preview := encode.MustString(x.Form())
	if len(preview) > 200 {
		preview = preview[:200] + "..."
	}
	parts = append(parts, fmt.Sprintf("**Expands to:**\n```\n%s\n```", preview))

	return strings.Join(parts, "\n\n")
}

func classifyInfo(node *form.Node) string {
	switch {
	case expand.IsConstant(node):
		return "constant, embedded directly"
	case expand.Liftable(node):
		return "liftable, folds to one literal"
	case expand.HasTopSplice(node):
		return "spliced, built with concat at runtime"
	default:
		return "dynamic, built at runtime"
	}
}
