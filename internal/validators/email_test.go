package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmail(t *testing.T) {
	tests := map[string]string{
		"JANE@X.COM":                "jane@x.com",
		"Jane.Doe+news@Example.com": "jane.doe@example.com",
		"jane@x.com":                "jane@x.com",
		"+tag@x.com":                "+tag@x.com",
	}

	for in, want := range tests {
		assert.Equal(t, want, NormalizeEmail(in), in)
	}
}
