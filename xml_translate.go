// FILE: lixenwraith/registry/xml_translate.go
package registry

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Tag name conventions of the XML format:
//
//	<U_name>   key "_name" (tags cannot start with an underscore)
//	<I_42>     key "42" (tags cannot start with a digit)
//	<A_key name="any key">  key taken from the name attribute
//
// Repeated sibling tags become name_0, name_1, ...
const (
	underscorePrefix = "U_"
	numericPrefix    = "I_"
	namedKeyTag      = "A_key"
)

// literal marks text declared type="string" so the numeric pass leaves it alone.
type literal string

// xmlElement is a minimal element tree built from the token stream.
type xmlElement struct {
	name     string
	attrs    map[string]string
	text     strings.Builder
	children []*xmlElement
}

// parseXMLDocument reads data into an element tree and returns the root.
func parseXMLDocument(data []byte) (*xmlElement, error) {
	decoder := xml.NewDecoder(bytes.NewReader(data))

	var root *xmlElement
	var stack []*xmlElement
	for {
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := token.(type) {
		case xml.StartElement:
			el := &xmlElement{name: t.Name.Local, attrs: make(map[string]string, len(t.Attr))}
			for _, attr := range t.Attr {
				el.attrs[attr.Name.Local] = attr.Value
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("multiple root elements")
				}
				root = el
			} else {
				parent := stack[len(stack)-1]
				parent.children = append(parent.children, el)
			}
			stack = append(stack, el)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].text.Write(t)
			}
		}
	}

	if root == nil {
		return nil, fmt.Errorf("document has no root element")
	}
	return root, nil
}

// translateXML converts a document into a tree. The root element is a
// container; its children are the domains.
func translateXML(data []byte, constants map[string]any) (Tree, error) {
	root, err := parseXMLDocument(data)
	if err != nil {
		return nil, err
	}
	return translateChildren(root, constants)
}

// translateChildren folds the child elements of parent into a tree.
func translateChildren(parent *xmlElement, constants map[string]any) (Tree, error) {
	out := make(Tree)
	for _, child := range parent.children {
		value, err := translateElement(child, constants)
		if err != nil {
			return nil, err
		}
		key, err := elementKey(child)
		if err != nil {
			return nil, err
		}
		insertSibling(out, key, value)
	}
	return out, nil
}

// translateElement converts one element into a nested tree or a scalar.
func translateElement(el *xmlElement, constants map[string]any) (any, error) {
	typ, typed := el.attrs["type"]
	if len(el.children) > 0 || typ == "array" {
		return translateChildren(el, constants)
	}

	text := el.text.String()
	if !typed {
		return coerceUntyped(text), nil
	}

	value, err := coerceTyped(typ, text, constants)
	if err != nil {
		return nil, fmt.Errorf("element <%s>: %w", el.name, err)
	}
	if typ == "string" {
		return literal(text), nil
	}
	return value, nil
}

// elementKey derives the tree key of an element from its tag.
func elementKey(el *xmlElement) (string, error) {
	switch {
	case el.name == namedKeyTag:
		name, ok := el.attrs["name"]
		if !ok {
			return "", ErrMissingArrayKeyName
		}
		return name, nil
	case strings.HasPrefix(el.name, underscorePrefix):
		return "_" + strings.TrimPrefix(el.name, underscorePrefix), nil
	case strings.HasPrefix(el.name, numericPrefix):
		return strings.TrimPrefix(el.name, numericPrefix), nil
	default:
		return el.name, nil
	}
}

// insertSibling stores value under key, disambiguating repeated keys.
// The second occurrence renames the first entry to key_0 and lands in key_1;
// once key_0 exists, later ones take the smallest free key_n.
func insertSibling(out Tree, key string, value any) {
	if _, taken := out[key+"_0"]; taken {
		for n := 0; ; n++ {
			indexed := key + "_" + strconv.Itoa(n)
			if _, used := out[indexed]; !used {
				out[indexed] = value
				return
			}
		}
	}

	if existing, taken := out[key]; taken {
		delete(out, key)
		out[key+"_0"] = existing
		out[key+"_1"] = value
		return
	}

	out[key] = value
}

// coerceNumericLeaves converts numeric-looking string leaves to int64 or
// float64 and unwraps literal strings.
func coerceNumericLeaves(value any) any {
	switch v := value.(type) {
	case Tree:
		for key, item := range v {
			v[key] = coerceNumericLeaves(item)
		}
		return v
	case []any:
		for i, item := range v {
			v[i] = coerceNumericLeaves(item)
		}
		return v
	case literal:
		return string(v)
	case string:
		if number, ok := parseNumeric(v); ok {
			return number
		}
		return v
	default:
		return value
	}
}
