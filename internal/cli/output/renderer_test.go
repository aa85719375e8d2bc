package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRenderer(mode Mode, isTTY bool) (*Renderer, *bytes.Buffer, *bytes.Buffer) {
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	return NewRendererWithTTY(out, errOut, isTTY, mode), out, errOut
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"", ModeAuto, false},
		{"json", ModeJSON, false},
		{"yaml", ModeYAML, false},
		{"markdown", ModeMarkdown, false},
		{"xml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMode(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEffectiveMode(t *testing.T) {
	tests := []struct {
		name  string
		mode  Mode
		isTTY bool
		want  Mode
	}{
		{"auto on tty", ModeAuto, true, ModeText},
		{"auto piped", ModeAuto, false, ModeMarkdown},
		{"empty is auto", "", false, ModeMarkdown},
		{"explicit json", ModeJSON, true, ModeJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _, _ := newTestRenderer(tt.mode, tt.isTTY)
			assert.Equal(t, tt.want, r.EffectiveMode())
		})
	}
}

func TestTable(t *testing.T) {
	t.Run("markdown", func(t *testing.T) {
		r, out, _ := newTestRenderer(ModeMarkdown, false)
		r.Table([]string{"ID", "Target"}, [][]string{{"invoices", "invoices.html"}})
		assert.Contains(t, out.String(), "| invoices | invoices.html |")
	})

	t.Run("text", func(t *testing.T) {
		r, out, _ := newTestRenderer(ModeText, false)
		r.Table([]string{"ID"}, [][]string{{"chat"}})
		assert.Contains(t, out.String(), "chat")
		assert.Contains(t, out.String(), "┌")
	})
}

func TestMessages_PlainWhenPiped(t *testing.T) {
	r, out, errOut := newTestRenderer(ModeAuto, false)

	r.Header(1, "Tabs")
	r.Success("copied")
	r.Warning("careful")
	r.Error("boom")

	assert.Equal(t, "# Tabs\n\n✓ copied\n", out.String())
	assert.Equal(t, "! careful\n✗ boom\n", errOut.String())
}

func TestStructured(t *testing.T) {
	r, out, _ := newTestRenderer(ModeJSON, false)
	require.NoError(t, r.JSON(map[string]string{"a": "b"}))
	assert.Equal(t, "{\n  \"a\": \"b\"\n}\n", out.String())

	out.Reset()
	require.NoError(t, r.YAML(map[string]string{"a": "b"}))
	assert.Equal(t, "a: b\n", out.String())
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "## Footer", FormatHeader(2, "Footer"))
	assert.Equal(t, "# X", FormatHeader(0, "X"))
	assert.True(t, strings.HasPrefix(FormatKeyValue("Phone", "403"), "- **Phone**"))
}

func TestIndicator(t *testing.T) {
	r, _, errOut := newTestRenderer(ModeText, false)

	ind := r.NewIndicator("📋 INV-1001")
	assert.Equal(t, "📋 INV-1001", ind.Content())

	ind.SetContent("✓")
	ind.AddClass("bg-green-100", "text-green-700", "bg-green-100")
	assert.True(t, ind.Highlighted())

	ind.SetContent("📋 INV-1001")
	ind.RemoveClass("bg-green-100", "text-green-700")
	assert.False(t, ind.Highlighted())
	ind.Done()

	assert.Equal(t, "📋 INV-1001\n✓\n✓\n📋 INV-1001\n📋 INV-1001\n", errOut.String())
}
