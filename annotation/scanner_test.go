package annotation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/rovo/annotation"
	"go.jacobcolvin.com/rovo/stringtest"
)

func TestScan(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input string
		want  []annotation.Annotation
	}{
		"blank doc line inside block": {
			input: "/// @response 200 Json<User> Success\n///\n/// @tag users\n#[rovo]\nfn handler() {}",
			want: []annotation.Annotation{
				annotation.Response{Line: 0, Status: 200, ResponseType: "Json<User>", Description: "Success"},
				annotation.Tag{Line: 2, Name: "users"},
			},
		},
		"metadata block keeps source order": {
			input: stringtest.Input(`
				/// @tag users
				/// @security bearer
				/// @id get_user
				#[rovo]
				async fn handler() {}
			`),
			want: []annotation.Annotation{
				annotation.Tag{Line: 0, Name: "users"},
				annotation.Security{Line: 1, Scheme: "bearer"},
				annotation.ID{Line: 2, OperationID: "get_user"},
			},
		},
		"prose is skipped": {
			input: stringtest.Input(`
				/// Get a user by id.
				///
				/// Returns the user when found.
				/// @response 200 Json<User> Found
				/// @hidden
				#[rovo]
				async fn handler() {}
			`),
			want: []annotation.Annotation{
				annotation.Response{Line: 3, Status: 200, ResponseType: "Json<User>", Description: "Found"},
				annotation.Hidden{Line: 4},
			},
		},
		"empty source line inside block": {
			input: stringtest.Input(`
				/// @tag first

				/// @tag second
				#[rovo]
				fn handler() {}
			`),
			want: []annotation.Annotation{
				annotation.Tag{Line: 0, Name: "first"},
				annotation.Tag{Line: 2, Name: "second"},
			},
		},
		"non-doc line ends block": {
			input: stringtest.Input(`
				/// @tag detached
				// plain comment
				/// @tag attached
				#[rovo]
				fn handler() {}
			`),
			want: []annotation.Annotation{
				annotation.Tag{Line: 2, Name: "attached"},
			},
		},
		"blank line between marker and block": {
			input: stringtest.Input(`
				/// @id spaced

				#[rovo]
				fn handler() {}
			`),
			want: []annotation.Annotation{
				annotation.ID{Line: 0, OperationID: "spaced"},
			},
		},
		"attribute between block and marker ends block": {
			input: stringtest.Input(`
				/// @tag users
				#[derive(Debug)]
				#[rovo]
				fn handler() {}
			`),
			want: nil,
		},
		"doc block without marker is ignored": {
			input: stringtest.Input(`
				/// @tag users
				fn handler() {}
			`),
			want: nil,
		},
		"loose marker does not anchor a block": {
			input: stringtest.Input(`
				/// @tag users
				#[rovo(skip)]
				fn handler() {}
			`),
			want: nil,
		},
		"marker without doc block": {
			input: stringtest.Input(`
				fn before() {}
				#[rovo]
				fn handler() {}
			`),
			want: nil,
		},
		"marker on first line": {
			input: "#[rovo]\nfn handler() {}",
			want:  nil,
		},
		"multiple markers in source order": {
			input: stringtest.Input(`
				/// @tag users
				/// @response 200 Json<User> OK
				#[rovo]
				async fn get_user() {}

				/// @tag admin
				/// @response 201 Json<User> Created
				#[rovo]
				async fn create_user() {}
			`),
			want: []annotation.Annotation{
				annotation.Tag{Line: 0, Name: "users"},
				annotation.Response{Line: 1, Status: 200, ResponseType: "Json<User>", Description: "OK"},
				annotation.Tag{Line: 5, Name: "admin"},
				annotation.Response{Line: 6, Status: 201, ResponseType: "Json<User>", Description: "Created"},
			},
		},
		"crlf line endings": {
			input: stringtest.JoinCRLF(
				"/// @tag users",
				"/// @security bearer",
				"#[rovo]",
				"fn handler() {}",
			),
			want: []annotation.Annotation{
				annotation.Tag{Line: 0, Name: "users"},
				annotation.Security{Line: 1, Scheme: "bearer"},
			},
		},
		"empty input": {
			input: "",
			want:  nil,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := annotation.Scan(tc.input)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestScanIdempotent(t *testing.T) {
	t.Parallel()

	content := stringtest.Input(`
		/// @response 200 Json<User> Success
		///
		/// @tag users
		/// @example 200 {"id": 1}
		#[rovo]
		fn handler() {}
	`)

	first := annotation.Scan(content)
	second := annotation.Scan(content)

	require.Len(t, first, 3)
	assert.Equal(t, first, second)
}

func TestScanLinesAscending(t *testing.T) {
	t.Parallel()

	content := stringtest.Input(`
		/// @tag a
		/// @tag b
		#[rovo]
		fn one() {}
		/// @tag c
		///
		/// @tag d
		#[rovo]
		fn two() {}
	`)

	got := annotation.Scan(content)
	require.Len(t, got, 4)

	for i := 1; i < len(got); i++ {
		assert.Less(t, got[i-1].SourceLine(), got[i].SourceLine())
	}
}

func TestBlocks(t *testing.T) {
	t.Parallel()

	content := stringtest.Input(`
		/// Get a user.
		///
		/// @tag users
		#[rovo]
		async fn get_user() {}

		#[rovo]
		async fn bare() {}
	`)

	got := annotation.Blocks(content)
	require.Len(t, got, 2)

	assert.Equal(t, 3, got[0].Marker)
	assert.Equal(t, 0, got[0].Start)
	assert.Equal(t, []annotation.Annotation{annotation.Tag{Line: 2, Name: "users"}}, got[0].Annotations)

	assert.Equal(t, 6, got[1].Marker)
	assert.Equal(t, 6, got[1].Start)
	assert.Empty(t, got[1].Annotations)
}

// Two markers separated only by a doc line: the second marker's walk stops
// at the first marker line, so the doc line belongs to the second marker.
func TestBlocksAdjacentMarkers(t *testing.T) {
	t.Parallel()

	content := stringtest.Input(`
		/// @tag first
		#[rovo]
		/// @tag second
		#[rovo]
		fn handler() {}
	`)

	got := annotation.Blocks(content)
	require.Len(t, got, 2)

	assert.Equal(t, []annotation.Annotation{annotation.Tag{Line: 0, Name: "first"}}, got[0].Annotations)
	assert.Equal(t, []annotation.Annotation{annotation.Tag{Line: 2, Name: "second"}}, got[1].Annotations)
}
