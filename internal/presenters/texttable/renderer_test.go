package texttable

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brandstat-labs/brandstat-cli/internal/core/domain"
	"github.com/brandstat-labs/brandstat-cli/internal/core/ports/driven"
)

func fp(v float64) *float64 {
	return &v
}

var testHeaders = []string{"brand", "avg_rating", "items"}

func testRows() [][]any {
	return [][]any{
		{"apple", fp(4.75), 2},
		{"samsung", fp(4.6), 1},
		{"noname", (*float64)(nil), 3},
	}
}

func TestRender_TwoDecimalPrecision(t *testing.T) {
	out, err := New().Render(testHeaders, testRows(), driven.RenderOptions{Format: "github"})
	require.NoError(t, err)

	// Always exactly two decimals, so 4.6 renders as 4.60.
	assert.Contains(t, out, "4.75")
	assert.Contains(t, out, "4.60")
	assert.NotContains(t, out, "4.6 ")
}

func TestRender_PlaceholderForMissingAverage(t *testing.T) {
	out, err := New().Render(testHeaders, testRows(), driven.RenderOptions{Format: "github"})
	require.NoError(t, err)

	assert.Contains(t, out, DefaultPlaceholder)
	assert.NotContains(t, out, "0.00")
}

func TestRender_CustomPlaceholder(t *testing.T) {
	out, err := New().Render(testHeaders, testRows(), driven.RenderOptions{Format: "github", Placeholder: "—"})
	require.NoError(t, err)

	assert.Contains(t, out, "—")
	assert.NotContains(t, out, DefaultPlaceholder)
}

func TestRender_HeadersOnlyWhenNoRows(t *testing.T) {
	out, err := New().Render(testHeaders, nil, driven.RenderOptions{Format: "github"})
	require.NoError(t, err)

	assert.Contains(t, out, "brand")
	assert.Contains(t, out, "avg_rating")
	assert.Contains(t, out, "items")
}

func TestRender_GithubFormatUsesPipes(t *testing.T) {
	out, err := New().Render(testHeaders, testRows(), driven.RenderOptions{Format: "github"})
	require.NoError(t, err)

	for _, line := range strings.Split(out, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		assert.True(t, strings.HasPrefix(strings.TrimSpace(line), "|"), "line %q should start with a pipe", line)
	}
}

func TestRender_EmptyFormatDefaultsToGithub(t *testing.T) {
	withDefault, err := New().Render(testHeaders, testRows(), driven.RenderOptions{})
	require.NoError(t, err)
	github, err := New().Render(testHeaders, testRows(), driven.RenderOptions{Format: "github"})
	require.NoError(t, err)

	assert.Equal(t, github, withDefault)
}

func TestRender_AllFormats(t *testing.T) {
	for _, format := range Formats() {
		t.Run(format, func(t *testing.T) {
			out, err := New().Render(testHeaders, testRows(), driven.RenderOptions{Format: format})
			require.NoError(t, err)
			assert.Contains(t, out, "apple")
			assert.Contains(t, out, "4.75")
		})
	}
}

func TestRender_UnknownFormat(t *testing.T) {
	_, err := New().Render(testHeaders, testRows(), driven.RenderOptions{Format: "latex"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrConfig))
	assert.Contains(t, err.Error(), "latex")
}

func TestFormatCell(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"string passes through", "apple", "apple"},
		{"int", 42, "42"},
		{"float64 gets two decimals", 4.6, "4.60"},
		{"float pointer", fp(4.75), "4.75"},
		{"nil float pointer", (*float64)(nil), "N/A"},
		{"untyped nil", nil, "N/A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatCell(tt.in, "N/A"))
		})
	}
}
