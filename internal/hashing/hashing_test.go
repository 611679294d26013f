package hashing

import "testing"

func TestMD5Hex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: "d41d8cd98f00b204e9800998ecf8427e"},
		{in: "abc", want: "900150983cd24fb0d6963f7d28e17f72"},
		{in: "The quick brown fox jumps over the lazy dog", want: "9e107d9d372bb6826bd81d3542a419d6"},
		// leading zero bytes stay in the output
		{in: "jk8ssl", want: "0000000018e6137ac2caab16074784a6"},
	}

	for _, tc := range tests {
		got := MD5Hex(tc.in)
		if got != tc.want {
			t.Fatalf("MD5Hex(%q) = %s, want %s", tc.in, got, tc.want)
		}
		if len(got) != 32 {
			t.Fatalf("expected 32 characters, got %d", len(got))
		}
	}
}
