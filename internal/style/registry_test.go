package style

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	spec, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "Calibri", spec.Font)
	assert.Equal(t, 1440, spec.Page.Margin)
	assert.Equal(t, AlignCenter, spec.Styles.Title.Align)
	assert.True(t, spec.Styles.Title.Bold)
	assert.Equal(t, 48, spec.Styles.Title.HalfPoints())
	assert.Equal(t, "2E74B5", spec.Styles.Heading1.Color)
	assert.Equal(t, 22, spec.Styles.Paragraph.HalfPoints())

	again, err := Default()
	require.NoError(t, err)
	assert.Same(t, spec, again)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load("does-not-exist")
	assert.Error(t, err)
}

func TestParse_Invalid(t *testing.T) {
	valid := func(color, align string, size float64) string {
		return `
font: Arial
page: {width: 12240, height: 15840, margin: 1440}
styles:
  title:     {size: ` + strconv.FormatFloat(size, 'f', -1, 64) + `, color: "` + color + `", align: ` + align + `}
  heading1:  {size: 16, color: "2E74B5"}
  heading2:  {size: 13, color: "5B9BD5"}
  bullet:    {size: 11, color: "000000"}
  paragraph: {size: 11, color: "000000"}
  footer:    {size: 9, color: "808080"}
`
	}

	tests := []struct {
		name    string
		yaml    string
		wantErr bool
	}{
		{"valid", valid("1F3864", "center", 24), false},
		{"bad colour", valid("blue", "center", 24), true},
		{"bad alignment", valid("1F3864", "middle", 24), true},
		{"zero size", valid("1F3864", "center", 0), true},
		{"not yaml", "font: [", true},
		{"missing font", "page: {width: 1, height: 1}", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
