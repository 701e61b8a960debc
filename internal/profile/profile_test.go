package profile

import (
	"context"
	iofs "io/fs"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"github.com/pietro/gcc/internal/exc"
	"github.com/pietro/gcc/internal/fs"
)

func TestParse(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name      string
		input     string
		expected  Profile
		expectErr bool
	}{
		{
			name:     "empty keeps defaults",
			input:    "",
			expected: Default(),
		},
		{
			name:  "full",
			input: "[priority]\nmin = 1\nmax = 12\nnone = -1\n",
			expected: Profile{
				Priority: Priority{Min: 1, Max: 12, None: -1},
			},
		},
		{
			name:  "partial",
			input: "[priority]\nmax = 5\n",
			expected: Profile{
				Priority: Priority{Min: 1, Max: 5, None: 0},
			},
		},
		{
			name:      "empty range",
			input:     "[priority]\nmin = 9\nmax = 1\n",
			expectErr: true,
		},
		{
			name:      "sentinel inside range",
			input:     "[priority]\nnone = 3\n",
			expectErr: true,
		},
		{
			name:      "unknown key",
			input:     "[priority]\nmaximum = 3\n",
			expectErr: true,
		},
		{
			name:      "malformed",
			input:     "[priority\n",
			expectErr: true,
		},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			p, err := Parse(testCase.input)
			if testCase.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, testCase.expected, p)
		})
	}
}

func TestValid(t *testing.T) {
	t.Parallel()

	p := Default()
	require.False(t, p.Valid(0))
	require.True(t, p.Valid(1))
	require.True(t, p.Valid(9))
	require.False(t, p.Valid(10))
}

func TestLoad(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	p, err := Load(ctx, fs.NewFileString("/good.toml", "[priority]\nmax = 7\n", fs.FileKindProfile))
	require.NoError(t, err)
	require.Equal(t, 7, p.Priority.Max)
	require.Equal(t, 1, p.Priority.Min)

	testCases := []struct {
		name         string
		file         fs.File
		expectedCode string
	}{
		{
			name:         "empty range",
			file:         fs.NewFileString("/bad.toml", "[priority]\nmin = 4\nmax = 2\n", fs.FileKindProfile),
			expectedCode: exc.CodeInvalidProfile,
		},
		{
			name:         "unit stream",
			file:         fs.NewFileString("/p.yaml", "units: [comma]\n", fs.FileKindUnits),
			expectedCode: exc.CodeUnsupportedFileFormat,
		},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			_, err := Load(ctx, testCase.file)
			var e exc.Exception
			require.ErrorAs(t, err, &e)
			require.Equal(t, testCase.expectedCode, e.Code())
		})
	}
}

func TestOpen(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	files := fstest.MapFS{
		"conf/a68.toml": {Data: []byte("[priority]\nmax = 8\n")},
		"conf/b.toml":   {Data: []byte("[priority]\n")},
	}
	local, err := fs.NewFileSystemLocal("/",
		fs.WithOptionFSFactory(func(string) iofs.FS { return files }),
		fs.WithOptionFileFilter(func(ctx context.Context, fname string) bool {
			return fs.KindOf(fname) == fs.FileKindProfile
		}),
	)
	require.NoError(t, err)

	p, err := Open(ctx, local, "/conf/a68.toml")
	require.NoError(t, err)
	require.Equal(t, 8, p.Priority.Max)

	var e exc.Exception
	_, err = Open(ctx, local, "/conf/missing.toml")
	require.ErrorAs(t, err, &e)
	require.Equal(t, exc.CodeFileNotFound, e.Code())

	_, err = Open(ctx, local, "/conf")
	require.ErrorAs(t, err, &e)
	require.Equal(t, exc.CodeUnsupportedFileFormat, e.Code())
}
