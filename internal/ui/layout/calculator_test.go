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
			windowHeight: 24,
			opts:         ContentOpts{HeaderHeight: 2},
			want:         22,
		},
		{
			name:         "with player bar",
			windowHeight: 24,
			opts:         ContentOpts{HeaderHeight: 2, PlayerBarHeight: 4},
			want:         18,
		},
		{
			name:         "with status line",
			windowHeight: 24,
			opts:         ContentOpts{HeaderHeight: 2, StatusVisible: true},
			want:         21,
		},
		{
			name:         "all components",
			windowHeight: 24,
			opts:         ContentOpts{HeaderHeight: 2, PlayerBarHeight: 4, StatusVisible: true},
			want:         17,
		},
		{
			name:         "too small",
			windowHeight: 3,
			opts:         ContentOpts{HeaderHeight: 2, PlayerBarHeight: 4},
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

func TestStatusHeight(t *testing.T) {
	if got := StatusHeight(false); got != 0 {
		t.Errorf("StatusHeight(false) = %d, want 0", got)
	}
	if got := StatusHeight(true); got != 1 {
		t.Errorf("StatusHeight(true) = %d, want 1", got)
	}
}
