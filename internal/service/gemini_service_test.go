package service

import "testing"

func TestStripJSONWrapping(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "plain object",
			raw:  `{"a": 1}`,
			want: `{"a": 1}`,
		},
		{
			name: "json code fence",
			raw:  "```json\n{\"a\": 1}\n```",
			want: `{"a": 1}`,
		},
		{
			name: "bare code fence",
			raw:  "```\n[1, 2]\n```",
			want: `[1, 2]`,
		},
		{
			name: "surrounding prose",
			raw:  "Here is the result:\n{\"a\": 1}\nHope this helps!",
			want: `{"a": 1}`,
		},
		{
			name: "array with prose",
			raw:  "Sure: [1, 2, 3] done",
			want: `[1, 2, 3]`,
		},
		{
			name: "whitespace only trimming",
			raw:  "  {\"a\": {\"b\": 2}}  ",
			want: `{"a": {"b": 2}}`,
		},
		{
			name: "no json at all",
			raw:  "cannot comply",
			want: "cannot comply",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := stripJSONWrapping(tc.raw); got != tc.want {
				t.Errorf("stripJSONWrapping(%q) = %q, want %q", tc.raw, got, tc.want)
			}
		})
	}
}
