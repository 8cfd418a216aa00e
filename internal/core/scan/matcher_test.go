package scan

import (
	"reflect"
	"testing"
)

var knownParts = []PartRef{
	{ID: "FILTER-XL", Name: "Oversize drier filter"},
	{ID: "P-1004", Name: "Compressor contactor 220V"},
	{ID: "BELT-A38", Name: "Serpentine belt A38"},
}

func TestMatchParts(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "single SKU match",
			text: "Installed FILTER-XL on the roof unit",
			want: []string{"FILTER-XL"},
		},
		{
			name: "case-insensitive SKU match",
			text: "swapped filter-xl cartridge",
			want: []string{"FILTER-XL"},
		},
		{
			name: "match by part name",
			text: "Replaced the compressor contactor 220v behind the panel",
			want: []string{"P-1004"},
		},
		{
			name: "same SKU on three lines deduplicates",
			text: "FILTER-XL removed\nFILTER-XL inspected\nFILTER-XL installed",
			want: []string{"FILTER-XL"},
		},
		{
			name: "same SKU twice on one line deduplicates",
			text: "Installed FILTER-XL and another FILTER-XL unit",
			want: []string{"FILTER-XL"},
		},
		{
			name: "multiple parts in matched order",
			text: "used BELT-A38 first\nthen P-1004\nand FILTER-XL last",
			want: []string{"BELT-A38", "P-1004", "FILTER-XL"},
		},
		{
			name: "no match",
			text: "Checked charge, no parts used",
			want: nil,
		},
		{
			name: "empty input",
			text: "",
			want: nil,
		},
		{
			name: "whitespace-only input",
			text: "  \n\t  ",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchParts(tt.text, knownParts)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("MatchParts() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMatchPartsNoKnownParts(t *testing.T) {
	if got := MatchParts("FILTER-XL installed", nil); got != nil {
		t.Errorf("MatchParts() with no known parts = %v, want nil", got)
	}
}
