package layout

import "testing"

func TestContentHeight(t *testing.T) {
	tests := []struct {
		name         string
		windowHeight int
		opts         ContentOpts
		want         int
	}{
		{
			name:         "header only",
			windowHeight: 40,
			opts:         ContentOpts{HeaderHeight: 2},
			want:         38,
		},
		{
			name:         "with status bar",
			windowHeight: 40,
			opts:         ContentOpts{HeaderHeight: 2, StatusHeight: 1},
			want:         37,
		},
		{
			name:         "with error message",
			windowHeight: 40,
			opts:         ContentOpts{HeaderHeight: 2, StatusHeight: 1, MessageLines: 1},
			want:         34, // 40 - 2 - 1 - (1 + 2 border)
		},
		{
			name:         "tiny window never goes negative",
			windowHeight: 2,
			opts:         ContentOpts{HeaderHeight: 2, StatusHeight: 1},
			want:         0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ContentHeight(tt.windowHeight, tt.opts)
			if got != tt.want {
				t.Errorf("ContentHeight() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMessageHeight(t *testing.T) {
	tests := []struct {
		lines int
		want  int
	}{
		{0, 0},
		{1, 3}, // 1 + 2 border
		{2, 4},
	}

	for _, tt := range tests {
		if got := MessageHeight(tt.lines); got != tt.want {
			t.Errorf("MessageHeight(%d) = %d, want %d", tt.lines, got, tt.want)
		}
	}
}

func TestIsNarrowMode(t *testing.T) {
	tests := []struct {
		width int
		want  bool
	}{
		{80, true},
		{99, true},
		{100, false},
		{160, false},
	}

	for _, tt := range tests {
		if got := IsNarrowMode(tt.width); got != tt.want {
			t.Errorf("IsNarrowMode(%d) = %v, want %v", tt.width, got, tt.want)
		}
	}
}

func TestColumnWidths(t *testing.T) {
	tests := []struct {
		name        string
		width       int
		narrow      bool
		left, right int
	}{
		{"even split", 120, false, 60, 60},
		{"odd width gives the extra column to the right", 121, false, 60, 61},
		{"narrow stacks full width", 80, true, 80, 80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			left, right := ColumnWidths(tt.width, tt.narrow)
			if left != tt.left || right != tt.right {
				t.Errorf("ColumnWidths(%d, %v) = (%d, %d), want (%d, %d)",
					tt.width, tt.narrow, left, right, tt.left, tt.right)
			}
		})
	}
}

func TestStatusRow(t *testing.T) {
	if got := StatusRow(40, 1); got != 39 {
		t.Errorf("StatusRow(40, 1) = %d, want 39", got)
	}
	if got := StatusRow(0, 1); got != 0 {
		t.Errorf("StatusRow(0, 1) = %d, want 0", got)
	}
}
