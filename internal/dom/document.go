package dom

// Document owns a root element, the scope that style properties and
// flag attributes are applied to.
type Document struct {
	root *Element
}

func NewDocument() *Document {
	return &Document{root: NewElement("html")}
}

func (d *Document) Root() *Element {
	return d.root
}

// Frame embeds a separate document, e.g. an internal page or the new tab page.
type Frame struct {
	URL     string
	content *Document
}

func NewFrame(url string) *Frame {
	return &Frame{URL: url, content: NewDocument()}
}

func (f *Frame) ContentDocument() *Document {
	return f.content
}
