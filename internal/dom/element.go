// Package dom is the small element tree the shell styles and renders into.
// It models only what themes and the bookmark bar touch: attributes, custom
// style properties, text, children and a click handler.
package dom

import (
	"sort"
	"strings"
)

type Element struct {
	Tag string

	attrs    map[string]string
	style    map[string]string
	text     string
	parent   *Element
	children []*Element
	onClick  func(*Element)
}

func NewElement(tag string) *Element {
	return &Element{
		Tag:   tag,
		attrs: make(map[string]string),
		style: make(map[string]string),
	}
}

func (e *Element) SetAttribute(name, value string) {
	e.attrs[name] = value
}

func (e *Element) Attribute(name string) (string, bool) {
	v, ok := e.attrs[name]
	return v, ok
}

func (e *Element) HasAttribute(name string) bool {
	_, ok := e.attrs[name]
	return ok
}

func (e *Element) RemoveAttribute(name string) {
	delete(e.attrs, name)
}

// AttributeNames returns attribute names in sorted order.
func (e *Element) AttributeNames() []string {
	names := make([]string, 0, len(e.attrs))
	for name := range e.attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RemoveAttributesWithPrefix drops every attribute whose name starts with prefix.
func (e *Element) RemoveAttributesWithPrefix(prefix string) {
	for name := range e.attrs {
		if strings.HasPrefix(name, prefix) {
			delete(e.attrs, name)
		}
	}
}

// SetProperty sets or overwrites a custom style property.
func (e *Element) SetProperty(name, value string) {
	e.style[name] = value
}

func (e *Element) Property(name string) (string, bool) {
	v, ok := e.style[name]
	return v, ok
}

func (e *Element) Properties() map[string]string {
	out := make(map[string]string, len(e.style))
	for k, v := range e.style {
		out[k] = v
	}
	return out
}

func (e *Element) Text() string {
	return e.text
}

func (e *Element) SetText(text string) {
	e.text = text
}

func (e *Element) Parent() *Element {
	return e.parent
}

func (e *Element) Children() []*Element {
	out := make([]*Element, len(e.children))
	copy(out, e.children)
	return out
}

func (e *Element) ChildCount() int {
	return len(e.children)
}

// AppendChild detaches child from any previous parent first.
func (e *Element) AppendChild(child *Element) {
	if child.parent != nil {
		child.parent.RemoveChild(child)
	}
	child.parent = e
	e.children = append(e.children, child)
}

func (e *Element) RemoveChild(child *Element) bool {
	for i, c := range e.children {
		if c == child {
			e.children = append(e.children[:i], e.children[i+1:]...)
			child.parent = nil
			return true
		}
	}
	return false
}

// Remove detaches the element from its parent.
func (e *Element) Remove() {
	if e.parent != nil {
		e.parent.RemoveChild(e)
	}
}

func (e *Element) RemoveAllChildren() {
	for _, c := range e.children {
		c.parent = nil
	}
	e.children = nil
}

func (e *Element) OnClick(handler func(*Element)) {
	e.onClick = handler
}

// Click runs the click handler, if any.
func (e *Element) Click() {
	if e.onClick != nil {
		e.onClick(e)
	}
}
