package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestElement_Attributes(t *testing.T) {
	el := NewElement("html")
	el.SetAttribute("data-aboutbrowser-a", "")
	el.SetAttribute("data-aboutbrowser-b", "")
	el.SetAttribute("lang", "en")

	assert.Equal(t, []string{"data-aboutbrowser-a", "data-aboutbrowser-b", "lang"}, el.AttributeNames())

	el.RemoveAttributesWithPrefix("data-aboutbrowser-")
	assert.Equal(t, []string{"lang"}, el.AttributeNames())

	v, ok := el.Attribute("lang")
	assert.True(t, ok)
	assert.Equal(t, "en", v)
}

func TestElement_Properties(t *testing.T) {
	el := NewElement("html")
	el.SetProperty("--x", "rgb(1, 2, 3)")
	el.SetProperty("--x", "rgb(4, 5, 6)")

	v, ok := el.Property("--x")
	assert.True(t, ok)
	assert.Equal(t, "rgb(4, 5, 6)", v)

	props := el.Properties()
	props["--y"] = "changed"
	_, ok = el.Property("--y")
	assert.False(t, ok)
}

func TestElement_Children(t *testing.T) {
	parent := NewElement("div")
	a := NewElement("button")
	b := NewElement("button")
	parent.AppendChild(a)
	parent.AppendChild(b)

	assert.Equal(t, 2, parent.ChildCount())
	assert.Same(t, parent, a.Parent())

	a.Remove()
	assert.Equal(t, []*Element{b}, parent.Children())
	assert.Nil(t, a.Parent())

	other := NewElement("div")
	other.AppendChild(b)
	assert.Equal(t, 0, parent.ChildCount())
	assert.Equal(t, 1, other.ChildCount())

	other.RemoveAllChildren()
	assert.Equal(t, 0, other.ChildCount())
	assert.Nil(t, b.Parent())
}

func TestElement_Click(t *testing.T) {
	el := NewElement("button")
	el.Click()

	var clicked *Element
	el.OnClick(func(e *Element) { clicked = e })
	el.Click()
	assert.Same(t, el, clicked)
}

func TestFrame_HasOwnDocument(t *testing.T) {
	doc := NewDocument()
	frame := NewFrame("about://newtab")

	assert.NotSame(t, doc.Root(), frame.ContentDocument().Root())
	assert.Equal(t, "html", frame.ContentDocument().Root().Tag)
}
