// internal/scene/aframe.go
package scene

import (
	"bufio"
	"fmt"
	"html"
	"io"
	"strconv"
	"strings"
)

const (
	aframeScript      = "https://aframe.io/releases/1.6.0/aframe.min.js"
	environmentScript = "https://cdn.jsdelivr.net/npm/aframe-environment-component@1.3.3/dist/aframe-environment-component.min.js"
)

// WriteAFrame writes a standalone HTML page that shows the tree in a browser
// through A-Frame and the environment component.
func WriteAFrame(w io.Writer, root Node) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "<!DOCTYPE html>")
	fmt.Fprintln(bw, "<html>")
	fmt.Fprintln(bw, "  <head>")
	fmt.Fprintln(bw, `    <meta charset="utf-8">`)
	fmt.Fprintf(bw, "    <script src=%q></script>\n", aframeScript)
	fmt.Fprintf(bw, "    <script src=%q></script>\n", environmentScript)
	fmt.Fprintln(bw, "  </head>")
	fmt.Fprintln(bw, "  <body>")
	writeElement(bw, root, 2)
	fmt.Fprintln(bw, "  </body>")
	fmt.Fprintln(bw, "</html>")
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("scene: write a-frame page: %w", err)
	}
	return nil
}

func writeElement(w io.Writer, n Node, depth int) {
	indent := strings.Repeat("  ", depth)
	fmt.Fprintf(w, "%s<%s", indent, n.Primitive())
	for _, attr := range n.Attributes() {
		fmt.Fprintf(w, " %s=\"%s\"", attr.Name, html.EscapeString(attrValue(attr)))
	}
	children := n.Children()
	if len(children) == 0 {
		fmt.Fprintf(w, "></%s>\n", n.Primitive())
		return
	}
	fmt.Fprintln(w, ">")
	for _, c := range children {
		writeElement(w, c, depth+1)
	}
	fmt.Fprintf(w, "%s</%s>\n", indent, n.Primitive())
}

func attrValue(attr Attr) string {
	// look-controls: пустой атрибут включает компонент
	if b, ok := attr.Value.(bool); ok && attr.Name == "look-controls" {
		if b {
			return ""
		}
		return "enabled: false"
	}
	return FormatValue(attr.Value)
}

// FormatValue renders a value in A-Frame attribute syntax: vectors as "x y z",
// nested records as "key: value; key: value".
func FormatValue(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case Vec3:
		return FormatValue(v.X) + " " + FormatValue(v.Y) + " " + FormatValue(v.Z)
	case Attributes:
		parts := make([]string, 0, len(v))
		for _, attr := range v {
			parts = append(parts, attr.Name+": "+FormatValue(attr.Value))
		}
		return strings.Join(parts, "; ")
	}
	return fmt.Sprint(v)
}
