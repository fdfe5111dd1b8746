package world

import "testing"

func TestNeighborhoodCorruptCount(t *testing.T) {
	corrupt := Cell{Corrupted: true}
	tests := []struct {
		name  string
		block Neighborhood
		want  int
	}{
		{"clean", Neighborhood{}, 0},
		{"center only", Neighborhood{4: corrupt}, 1},
		{"corner only", Neighborhood{0: corrupt}, 1},
		{"center and edges", Neighborhood{1: corrupt, 4: corrupt, 7: corrupt}, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.block.CorruptCount(); got != tt.want {
				t.Errorf("CorruptCount() = %d, expected %d", got, tt.want)
			}
			if got := tt.block.Contaminated(); got != (tt.want > 0) {
				t.Errorf("Contaminated() = %v, expected %v", got, tt.want > 0)
			}
		})
	}
}
