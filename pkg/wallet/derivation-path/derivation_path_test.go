package path_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	path "github.com/vulpemventures/noir/pkg/wallet/derivation-path"
)

const h = path.HardenedKeyStart

func TestParseDerivationPath(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			derivationPath string
			expected       path.DerivationPath
		}{
			// Plain absolute derivation paths
			{"m/44'/118'/0'/0/0", path.DerivationPath{h + 44, h + 118, h, 0, 0}},
			{"m/84'/0'/0'/128", path.DerivationPath{h + 84, h, h, 128}},
			{"m/84'/0'/0'/128'", path.DerivationPath{h + 84, h, h, h + 128}},
			{"m/2147483732/2147483648/2147483648/0", path.DerivationPath{h + 84, h, h, 0}},
			{"m/4294967295", path.DerivationPath{4294967295}},
			{"m/2147483647'", path.DerivationPath{4294967295}},

			// Alternative hardened markers
			{"m/44h/60H/0'/0/0", path.DerivationPath{h + 44, h + 60, h, 0, 0}},

			// Hexadecimal absolute derivation paths
			{"m/0x54'/0x00'/0x00'/0x80", path.DerivationPath{h + 84, h, h, 128}},
			{"m/0x80000054/0x80000000/0x80000000/0x00", path.DerivationPath{h + 84, h, h, 0}},

			// Leading zeros are decimal, not octal
			{"m/010/00", path.DerivationPath{10, 0}},

			// Weird inputs just to ensure they work
			{"	m  /   84			'\n/\n   00	\n\n\t'   /\n0 ' /\t\t	0", path.DerivationPath{h + 84, h, h, 0}},

			// Relative derivation paths
			{"84'/0'/0/0", path.DerivationPath{h + 84, h, 0, 0}},
			{"0/0", path.DerivationPath{0, 0}},
			{"0", path.DerivationPath{0}},
		}
		for _, tt := range tests {
			tt := tt
			t.Run(tt.derivationPath, func(t *testing.T) {
				p, err := path.ParseDerivationPath(tt.derivationPath)
				require.NoError(t, err)
				require.Equal(t, tt.expected, p)
			})
		}
	})

	t.Run("invalid", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			derivationPath string
			expectedErr    error
		}{
			{"", path.ErrMissingDerivationPath},
			{"   ", path.ErrMissingDerivationPath},
			{"m", path.ErrInvalidPathSegment},
			{"m/", path.ErrInvalidPathSegment},
			{"/84'/0'/0'/0", path.ErrInvalidPathSegment},
			{"m/44'//0", path.ErrInvalidPathSegment},
			{"m/2147483648'", path.ErrInvalidPathSegment},
			{"m/4294967296", path.ErrInvalidPathSegment},
			{"m/-1'", path.ErrInvalidPathSegment},
			{"m/+1", path.ErrInvalidPathSegment},
			{"m/1_000", path.ErrInvalidPathSegment},
			{"m/abc", path.ErrInvalidPathSegment},
			{"m/0x", path.ErrInvalidPathSegment},
			{"m/44''", path.ErrInvalidPathSegment},
			{"n/44'", path.ErrInvalidPathSegment},
		}

		for _, tt := range tests {
			_, err := path.ParseDerivationPath(tt.derivationPath)
			require.Error(t, err, tt.derivationPath)
			require.ErrorIs(t, err, tt.expectedErr, tt.derivationPath)
		}
	})

	t.Run("segment position", func(t *testing.T) {
		t.Parallel()

		_, err := path.ParseDerivationPath("m/44'/x/0")
		var segErr *path.InvalidPathSegmentError
		require.ErrorAs(t, err, &segErr)
		require.Equal(t, 2, segErr.Position)
		require.Equal(t, "x", segErr.Segment)
	})
}

func TestDerivationPathString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		derivationPath string
		expected       string
	}{
		{"m/44h/118H/0'/0/0", "m/44'/118'/0'/0/0"},
		{"0x54'/1", "m/84'/1"},
	}
	for _, tt := range tests {
		p, err := path.ParseDerivationPath(tt.derivationPath)
		require.NoError(t, err)
		require.Equal(t, tt.expected, p.String())
	}
	require.Empty(t, path.DerivationPath{}.String())
}

func TestIsPublicDerivable(t *testing.T) {
	t.Parallel()

	require.True(t, path.DerivationPath{0, 1, 2}.IsPublicDerivable())
	require.False(t, path.DerivationPath{0, h + 1}.IsPublicDerivable())
	require.True(t, path.IsHardened(h))
	require.False(t, path.IsHardened(h-1))
}
