package theme

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"browser-shell/internal/dom"
	"browser-shell/internal/domain"
)

func properties(decls []Declaration) []string {
	out := make([]string, len(decls))
	for i, d := range decls {
		out[i] = d.Property
	}
	return out
}

func allBaseProperties() []string {
	out := make([]string, len(baseVariables))
	for i, v := range baseVariables {
		out[i] = v.property
	}
	return out
}

func TestProjection_NonExtendedContexts(t *testing.T) {
	th := mustParse(t, schemeDoc(t, "Plain", requiredColors(), false))

	t.Run("main document gets every base variable", func(t *testing.T) {
		got := properties(th.Projection(MainDocument))
		if diff := cmp.Diff(allBaseProperties(), got); diff != "" {
			t.Errorf("main projection mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("ntp gets every base variable", func(t *testing.T) {
		got := properties(th.Projection(EmbeddedFrame(true)))
		if diff := cmp.Diff(allBaseProperties(), got); diff != "" {
			t.Errorf("ntp projection mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("other frames get no ui variables", func(t *testing.T) {
		decls := th.Projection(EmbeddedFrame(false))
		for _, d := range decls {
			assert.False(t, IsUIVariable(d.Property), d.Property)
		}
		assert.Len(t, decls, len(baseVariables)-3)
		assert.NotContains(t, properties(decls), "--aboutbrowser-ui-bg")
	})
}

func TestProjection_ExtendedEmitsExtendedTableFirst(t *testing.T) {
	th := mustParse(t, schemeDoc(t, "Extended", extendedColors(), true))

	for _, ctx := range []Context{MainDocument, EmbeddedFrame(false), EmbeddedFrame(true)} {
		t.Run(ctx.String(), func(t *testing.T) {
			decls := th.Projection(ctx)
			require.Len(t, decls, len(extendedVariables)+len(baseVariables))

			assert.Equal(t, "--aboutbrowser-ui-accent", decls[0].Property)
			assert.Equal(t, testAccent.CSS(), decls[0].Value)
			assert.Equal(t, "--aboutbrowser-frame-bg", decls[len(extendedVariables)].Property)
		})
	}
}

func TestProjection_Values(t *testing.T) {
	th := mustParse(t, schemeDoc(t, "Plain", requiredColors(), false))

	want := map[string]string{
		"--aboutbrowser-frame-bg":        "rgb(10, 20, 30)",
		"--aboutbrowser-toolbar-bg":      "rgb(40, 50, 60)",
		"--aboutbrowser-inactive-tab-bg": "rgb(10, 20, 30)",
		"--aboutbrowser-active-tab-fg":   "rgb(200, 210, 220)",
		"--aboutbrowser-omnibox-bg":      "rgb(241, 243, 244)",
		"--aboutbrowser-ui-bg":           "rgb(40, 50, 60)",
	}

	got := make(map[string]string)
	for _, d := range th.Projection(MainDocument) {
		got[d.Property] = d.Value
	}
	for prop, value := range want {
		assert.Equal(t, value, got[prop], prop)
	}
}

func TestContext_String(t *testing.T) {
	assert.Equal(t, "main", MainDocument.String())
	assert.Equal(t, "frame", EmbeddedFrame(false).String())
	assert.Equal(t, "ntp", EmbeddedFrame(true).String())
}

func TestInject_SetsPropertiesAndFlags(t *testing.T) {
	same := requiredColors()
	same[RoleToolbar] = same[RoleFrame]
	flagged := mustParse(t, schemeDoc(t, "Flat", same, false))
	plain := mustParse(t, schemeDoc(t, "Layered", requiredColors(), false))

	doc := dom.NewDocument()
	doc.Root().SetAttribute(FlagAttribute("stale-flag"), "")

	flagged.Inject(doc)
	assert.True(t, doc.Root().HasAttribute(FlagAttribute(FlagNeedTabContrast)))
	assert.False(t, doc.Root().HasAttribute(FlagAttribute("stale-flag")))

	v, ok := doc.Root().Property("--aboutbrowser-frame-bg")
	require.True(t, ok)
	assert.Equal(t, "rgb(10, 20, 30)", v)

	plain.Inject(doc)
	assert.False(t, doc.Root().HasAttribute(FlagAttribute(FlagNeedTabContrast)))
	v, _ = doc.Root().Property("--aboutbrowser-toolbar-bg")
	assert.Equal(t, "rgb(40, 50, 60)", v)
}

func TestInjectIntoFrame_BackfillsDefaultUIVariables(t *testing.T) {
	p := GooglePalette()
	def := Default(p)
	plain := mustParse(t, schemeDoc(t, "Plain", requiredColors(), false))

	frame := dom.NewFrame("about://settings")
	plain.InjectIntoFrame(frame, false, def)
	root := frame.ContentDocument().Root()

	for _, d := range def.Projection(EmbeddedFrame(false)) {
		if !IsUIVariable(d.Property) {
			continue
		}
		got, ok := root.Property(d.Property)
		require.True(t, ok, d.Property)
		assert.Equal(t, d.Value, got, d.Property)
	}

	// chrome variables come from the frame's own theme
	got, _ := root.Property("--aboutbrowser-frame-bg")
	assert.Equal(t, testFrame.CSS(), got)
}

func TestInjectIntoFrame_NTPUsesOwnUIVariables(t *testing.T) {
	def := Default(GooglePalette())
	plain := mustParse(t, schemeDoc(t, "Plain", requiredColors(), false))

	frame := dom.NewFrame("about://newtab")
	plain.InjectIntoFrame(frame, true, def)
	root := frame.ContentDocument().Root()

	got, _ := root.Property("--aboutbrowser-ui-bg")
	assert.Equal(t, testToolbar.CSS(), got)

	_, ok := root.Property("--aboutbrowser-ui-accent")
	assert.False(t, ok)
}

func TestFrameDeclarations_MatchInjectedFrame(t *testing.T) {
	def := Default(GooglePalette())
	plain := mustParse(t, schemeDoc(t, "Plain", requiredColors(), false))

	for _, isNTP := range []bool{false, true} {
		frame := dom.NewFrame("about://page")
		plain.InjectIntoFrame(frame, isNTP, def)

		want := make(map[string]string)
		for _, d := range plain.FrameDeclarations(isNTP, def) {
			want[d.Property] = d.Value
		}
		assert.Equal(t, want, frame.ContentDocument().Root().Properties(), "ntp=%t", isNTP)
	}

	decls := plain.FrameDeclarations(false, def)
	assert.Len(t, decls, len(plain.Projection(EmbeddedFrame(false)))+len(uiProperties(def)))
	assert.Equal(t, plain.Projection(EmbeddedFrame(false)), plain.FrameDeclarations(false, nil))
}

func uiProperties(th *Theme) []string {
	var out []string
	for _, d := range th.Projection(EmbeddedFrame(false)) {
		if IsUIVariable(d.Property) {
			out = append(out, d.Property)
		}
	}
	return out
}

func TestInjectIntoFrame_ExtendedSkipsBackfill(t *testing.T) {
	def := Default(GooglePalette())
	ext := mustParse(t, schemeDoc(t, "Extended", extendedColors(), true))

	frame := dom.NewFrame("about://settings")
	ext.InjectIntoFrame(frame, false, def)

	got, _ := frame.ContentDocument().Root().Property("--aboutbrowser-ui-accent")
	assert.Equal(t, testAccent.CSS(), got)
}

func TestInjectIntoFrame_FlagsOnFrameRoot(t *testing.T) {
	same := requiredColors()
	same[RoleToolbar] = same[RoleFrame]
	flagged := mustParse(t, schemeDoc(t, "Flat", same, false))

	frame := dom.NewFrame("about://settings")
	flagged.InjectIntoFrame(frame, false, nil)

	assert.True(t, frame.ContentDocument().Root().HasAttribute(FlagAttribute(FlagNeedTabContrast)))
}

func TestProjection_ColorLiteral(t *testing.T) {
	colors := requiredColors()
	colors[RoleFrame] = domain.RGB(0, 128, 255)
	th := mustParse(t, schemeDoc(t, "Literal", colors, false))

	decls := th.Projection(MainDocument)
	assert.Equal(t, Declaration{Property: "--aboutbrowser-frame-bg", Value: "rgb(0, 128, 255)"}, decls[0])
}
