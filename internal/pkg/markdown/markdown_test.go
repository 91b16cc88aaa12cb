package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToHTML(t *testing.T) {
	out := ToHTML("# Kickoff\n\n- [x] call client\n\n<script>alert(1)</script>")
	assert.Contains(t, out, "<h1>Kickoff</h1>")
	assert.Contains(t, out, `type="checkbox"`)
	assert.NotContains(t, out, "<script>")
}
