package rules

import (
	"testing"

	"canvaschess/src/base"
	"canvaschess/src/logic/convert/convfen"
)

func TestInsufficientMaterial(t *testing.T) {
	tests := []struct {
		name      string
		placement string
		want      bool
	}{
		{"bare kings", "4k3/8/8/8/8/8/8/4K3", true},
		{"king and knight", "4k3/8/8/8/8/8/8/3NK3", true},
		{"king and bishop", "4k3/8/8/8/8/8/8/2B1K3", true},
		{"bishops opposite colors", "2b1k3/8/8/8/8/8/8/2B1K3", false},
		{"bishops both on dark squares", "4kb2/8/8/8/8/8/8/2B1K3", true},
		{"pawn left", "4k3/8/8/8/8/8/4P3/4K3", false},
		{"two knights", "4k3/8/8/8/8/8/8/2NNK3", false},
		{"start", base.PLACEMENT_START_GAME, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := convfen.ParsePlacement(tt.placement)
			if err != nil {
				t.Fatal(err)
			}
			if got := InsufficientMaterial(p); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNotationIsPromotion(t *testing.T) {
	if (Notation{}).IsPromotion() {
		t.Error("empty notation is not a promotion")
	}
	if !(Notation{Promotion: base.Queen}).IsPromotion() {
		t.Error("queen promotion not detected")
	}
}
