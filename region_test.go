package xfermodes

import (
	"image"
	"testing"
)

func TestRegion(t *testing.T) {
	dst := NewPixmap(10, 10)
	src := NewPixmap(4, 4)

	tests := []struct {
		name string
		x, y int
		want image.Rectangle
	}{
		{"inside", 3, 3, image.Rect(3, 3, 7, 7)},
		{"origin", 0, 0, image.Rect(0, 0, 4, 4)},
		{"negative offset", -2, -1, image.Rect(0, 0, 2, 3)},
		{"right edge", 8, 2, image.Rect(8, 2, 10, 6)},
		{"bottom right corner", 9, 9, image.Rect(9, 9, 10, 10)},
		{"fully left", -4, 0, image.Rectangle{}},
		{"fully below", 0, 10, image.Rectangle{}},
		{"far away", 1000, -1000, image.Rectangle{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Region(dst, src, tt.x, tt.y); got != tt.want {
				t.Errorf("Region(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestRegionSourceLargerThanDestination(t *testing.T) {
	dst := NewPixmap(4, 4)
	src := NewPixmap(10, 10)
	if got, want := Region(dst, src, -3, -3), image.Rect(0, 0, 4, 4); got != want {
		t.Errorf("Region() = %v, want %v", got, want)
	}
}

func TestRegionEmptyPixmap(t *testing.T) {
	if got := Region(NewPixmap(0, 5), NewPixmap(2, 2), 0, 0); !got.Empty() {
		t.Errorf("Region() with empty destination = %v, want empty", got)
	}
	if got := Region(NewPixmap(5, 5), NewPixmap(-1, 2), 0, 0); !got.Empty() {
		t.Errorf("Region() with empty source = %v, want empty", got)
	}
}
