package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripMarkup(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "plain text untouched", in: " Inception (2010) ", want: "Inception (2010)"},
		{name: "highlight tags", in: "<strong>Inception</strong> (2010) - IMDb", want: "Inception (2010) - IMDb"},
		{name: "entities", in: "Tom &amp; Jerry (1940)", want: "Tom & Jerry (1940)"},
		{name: "keeps newlines", in: "Leonardo DiCaprio as <strong>Cobb</strong>\nTom Hardy as Eames", want: "Leonardo DiCaprio as Cobb\nTom Hardy as Eames"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripMarkup(tt.in))
		})
	}
}
