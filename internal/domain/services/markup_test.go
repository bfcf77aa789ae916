package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderMarkup(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain text", input: "no markers here", want: "no markers here"},
		{name: "bold", input: "**Mira**", want: "<strong>Mira</strong>"},
		{name: "italic", input: "*Willow Hollow*", want: "<em>Willow Hollow</em>"},
		{name: "bold italic", input: "***both***", want: "<strong><em>both</em></strong>"},
		{
			name:  "bold and italic in one line",
			input: "In *Willow Hollow*, **Mira** waited.",
			want:  "In <em>Willow Hollow</em>, <strong>Mira</strong> waited.",
		},
		{name: "italic inside bold", input: "**a *b* c**", want: "<strong>a <em>b</em> c</strong>"},
		{name: "several bold runs", input: "**a** and **b**", want: "<strong>a</strong> and <strong>b</strong>"},
		{name: "unpaired single", input: "5 * 3", want: "5 * 3"},
		{name: "unpaired double", input: "**open", want: "**open"},
		{name: "empty pair", input: "****", want: "****"},
		{name: "lone asterisk", input: "*", want: "*"},
		{name: "emoji kept", input: "**Mira 🕵️**", want: "<strong>Mira 🕵️</strong>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RenderMarkup(tt.input))
		})
	}
}

func TestRenderMarkup_NeverProducesEmptyItalics(t *testing.T) {
	inputs := []string{"**Mira**", "**a** *b* **c**", "***x***", "** **"}

	for _, in := range inputs {
		assert.NotContains(t, RenderMarkup(in), "<em></em>", in)
	}
}
