package hangul

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToEnglish(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"아이폰", "dkdlvhs"},
		{"갤럭시", "roffjrtl"},
		{"맥북", "aorqnr"},
		{"닭", "ekfr"},
		{"ㅇㅏ", "dk"},
		{"iPhone 15", "iPhone 15"},
		{"아이폰 15 Pro", "dkdlvhs 15 Pro"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			require.Equal(t, tt.want, ToEnglish(tt.in))
		})
	}
}

func TestContainsHangul(t *testing.T) {
	require.True(t, ContainsHangul("노트북"))
	require.True(t, ContainsHangul("abc ㅎ"))
	require.False(t, ContainsHangul("notebook"))
	require.False(t, ContainsHangul(""))
}

func TestNormalize(t *testing.T) {
	require.Equal(t, "airpods", Normalize("airpods"))
	require.Equal(t, "dkdlvhs", Normalize("아이폰"))
}
