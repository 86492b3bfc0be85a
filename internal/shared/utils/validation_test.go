package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateID(t *testing.T) {
	tests := []struct {
		id       string
		required bool
		wantErr  bool
	}{
		{"finder", true, false},
		{"folder-window-docs-folder", true, false},
		{"app_1", true, false},
		{"", true, true},
		{"", false, false},
		{"../etc", true, true},
		{"has space", true, true},
		{strings.Repeat("a", MaxIDLength+1), true, true},
	}

	for _, tt := range tests {
		err := ValidateID(tt.id, "id", tt.required)
		if tt.wantErr {
			assert.Error(t, err, tt.id)
		} else {
			assert.NoError(t, err, tt.id)
		}
	}
}

func TestValidateTitle(t *testing.T) {
	assert.NoError(t, ValidateTitle("Quarterly Report.docx"))
	assert.Error(t, ValidateTitle(""))
	assert.Error(t, ValidateTitle("bad\x00title"))
}

func TestValidateSearch(t *testing.T) {
	assert.NoError(t, ValidateSearch(""))
	assert.NoError(t, ValidateSearch("report"))
	assert.Error(t, ValidateSearch(strings.Repeat("x", MaxSearchLength+1)))
}
