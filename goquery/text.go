package goquery

import (
	"strings"

	"golang.org/x/net/html"
)

// blockElements start their text on a new line so that paragraph and
// heading boundaries survive text extraction.
var blockElements = map[string]bool{
	"address": true, "article": true, "aside": true, "blockquote": true,
	"br": true, "dd": true, "div": true, "dl": true, "dt": true,
	"fieldset": true, "figcaption": true, "figure": true, "footer": true,
	"form": true, "h1": true, "h2": true, "h3": true, "h4": true,
	"h5": true, "h6": true, "header": true, "hr": true, "li": true,
	"main": true, "nav": true, "ol": true, "p": true, "pre": true,
	"section": true, "table": true, "td": true, "th": true, "tr": true,
	"ul": true,
}

// writeNodeText walks the node tree depth-first, appending text content and
// inserting newlines at block-element boundaries.
func writeNodeText(sb *strings.Builder, node *html.Node) {
	switch node.Type {
	case html.TextNode:
		sb.WriteString(node.Data)
	case html.ElementNode:
		if blockElements[node.Data] {
			sb.WriteString("\n")
		}
	}

	for child := node.FirstChild; child != nil; child = child.NextSibling {
		writeNodeText(sb, child)
	}

	if node.Type == html.ElementNode && blockElements[node.Data] {
		sb.WriteString("\n")
	}
}
