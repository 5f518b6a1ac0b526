package internalrepl

import (
	"fmt"
	"strings"

	"github.com/conneroisu/tcalc/internal/ast"
)

// FormatTree renders expr as an indented tree, one node per line with each
// child two spaces deeper than its parent, for the :tree REPL toggle and
// the `tcalc parse`/`tcalc eval --tree` subcommands.
func FormatTree(expr ast.Expr) string {
	return formatTree(expr, 0)
}

func formatTree(expr ast.Expr, depth int) string {
	indent := strings.Repeat("  ", depth)

	switch node := expr.(type) {
	case *ast.NumberExpr:
		return fmt.Sprintf("%sNumber(%s)", indent, node.Token.Text)
	case *ast.IdentExpr:
		return fmt.Sprintf("%sIdent(%s)", indent, node.Name)
	case *ast.UnaryExpr:
		return fmt.Sprintf("%sUnary(%s)\n%s", indent, node.Symbol, formatTree(node.Child, depth+1))
	case *ast.BinaryExpr:
		return fmt.Sprintf("%sBinary(%s)\n%s\n%s", indent, node.Symbol,
			formatTree(node.Left, depth+1), formatTree(node.Right, depth+1))
	default:
		return fmt.Sprintf("%s<unknown>", indent)
	}
}
