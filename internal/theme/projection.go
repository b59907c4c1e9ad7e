package theme

import (
	"browser-shell/internal/dom"
)

// Context is where a projection is applied: the shell document itself or an
// embedded frame, which may be the new tab page.
type Context struct {
	Frame bool
	NTP   bool
}

var MainDocument = Context{}

func EmbeddedFrame(isNTP bool) Context {
	return Context{Frame: true, NTP: isNTP}
}

func (c Context) String() string {
	switch {
	case c.NTP:
		return "ntp"
	case c.Frame:
		return "frame"
	default:
		return "main"
	}
}

// Declaration is one custom property assignment.
type Declaration struct {
	Property string
	Value    string
}

// Projection maps the theme onto custom properties for ctx. Extended themes
// emit the extended table first. Non-extended themes keep their UI variables
// out of embedded frames other than the new tab page.
func (t *Theme) Projection(ctx Context) []Declaration {
	decls := make([]Declaration, 0, len(baseVariables)+len(extendedVariables))

	if t.IsExtended() {
		for _, v := range extendedVariables {
			decls = append(decls, Declaration{Property: v.property, Value: t.colors[v.role].CSS()})
		}
	}

	for _, v := range baseVariables {
		if !t.IsExtended() && ctx.Frame && !ctx.NTP && IsUIVariable(v.property) {
			continue
		}
		decls = append(decls, Declaration{Property: v.property, Value: t.colors[v.role].CSS()})
	}

	return decls
}

// Inject styles the shell document.
func (t *Theme) Inject(doc *dom.Document) {
	root := doc.Root()
	ApplyDeclarations(root, t.Projection(MainDocument))
	t.applyFlags(root)
}

// InjectIntoFrame styles an embedded frame with FrameDeclarations.
func (t *Theme) InjectIntoFrame(frame *dom.Frame, isNTP bool, fallback *Theme) {
	root := frame.ContentDocument().Root()
	ApplyDeclarations(root, t.FrameDeclarations(isNTP, fallback))
	t.applyFlags(root)
}

// FrameDeclarations is everything an embedded frame receives: the frame
// projection, then, when the theme is not extended and the frame is not the
// new tab page, the UI variables of fallback so in-app pages keep the
// default look.
func (t *Theme) FrameDeclarations(isNTP bool, fallback *Theme) []Declaration {
	ctx := EmbeddedFrame(isNTP)
	decls := t.Projection(ctx)

	if t.IsExtended() || isNTP || fallback == nil {
		return decls
	}

	for _, d := range fallback.Projection(ctx) {
		if IsUIVariable(d.Property) {
			decls = append(decls, d)
		}
	}
	return decls
}

// ApplyDeclarations sets each declaration as a custom property on root,
// overwriting earlier values.
func ApplyDeclarations(root *dom.Element, decls []Declaration) {
	for _, d := range decls {
		root.SetProperty(d.Property, d.Value)
	}
}

func (t *Theme) applyFlags(root *dom.Element) {
	root.RemoveAttributesWithPrefix(FlagAttributePrefix)
	for _, flag := range t.flags {
		root.SetAttribute(FlagAttribute(flag), "")
	}
}
