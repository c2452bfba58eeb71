package ingest

import "testing"

func TestNormalizeImageURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "drive path style",
			in:   "https://drive.google.com/file/d/1AbC_dEf-123/view?usp=sharing",
			want: "https://drive.google.com/uc?export=view&id=1AbC_dEf-123",
		},
		{
			name: "drive query style",
			in:   "https://drive.google.com/open?id=XyZ_987-abc",
			want: "https://drive.google.com/uc?export=view&id=XyZ_987-abc",
		},
		{
			name: "drive url without extractable id",
			in:   "https://drive.google.com/drive/folders",
			want: "https://drive.google.com/drive/folders",
		},
		{
			name: "non-drive url passes through",
			in:   "  https://example.com/a.png  ",
			want: "https://example.com/a.png",
		},
		{
			name: "empty",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeImageURL(tt.in); got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPlaceholderImageURLIsDeterministic(t *testing.T) {
	a := placeholderImageURL("Kimchi Jjigae!")
	b := placeholderImageURL("Kimchi Jjigae!")
	if a != b {
		t.Fatalf("placeholder must be stable: %q vs %q", a, b)
	}
	if a == placeholderImageURL("Bibimbap") {
		t.Fatal("different items must get different placeholders")
	}
}
