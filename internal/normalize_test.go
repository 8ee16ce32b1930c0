package internal

import "testing"

func TestNormalizeInput(t *testing.T) {
	const canonical = "https://www.youtube.com/watch?v=dQw4w9WgXcQ"

	tests := []struct {
		name string
		arg  string
		want string
	}{
		{
			name: "escaped copy-pasted input with junk",
			arg:  `  v=\dQw4w9WgXcQ\&t=5s  `,
			want: canonical,
		},
		{
			name: "bare video ID",
			arg:  "dQw4w9WgXcQ",
			want: canonical,
		},
		{
			name: "partial watch path",
			arg:  "watch?v=abc12345678",
			want: "https://www.youtube.com/watch?v=abc12345678",
		},
		{
			name: "full URL unchanged",
			arg:  canonical,
			want: canonical,
		},
		{
			name: "URL with extra query parameters",
			arg:  "https://www.youtube.com/watch?v=dQw4w9WgXcQ&feature=share",
			want: canonical,
		},
		{
			name: "control characters stripped",
			arg:  "v=\vdQw4w9\x00WgXcQ\r",
			want: canonical,
		},
		{
			name: "ID wrapped in whitespace and backslashes",
			arg:  " \\dQw4w9WgXcQ\\ ",
			want: canonical,
		},
		{
			name: "unrecognized input passes through",
			arg:  "definitely not a video",
			want: "definitely not a video",
		},
		{
			name: "too short for an ID passes through",
			arg:  "abc123",
			want: "abc123",
		},
		{
			name: "twelve characters is not an ID",
			arg:  "dQw4w9WgXcQQ",
			want: "dQw4w9WgXcQQ",
		},
		{
			name: "empty input",
			arg:  "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeInput(tt.arg)
			if got != tt.want {
				t.Errorf("NormalizeInput(%q) = %q, want %q", tt.arg, got, tt.want)
			}

			// Normalization is idempotent
			if again := NormalizeInput(got); again != got {
				t.Errorf("NormalizeInput not idempotent: %q -> %q", got, again)
			}
		})
	}
}
