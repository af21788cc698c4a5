// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeConfig_SourcePath(t *testing.T) {
	sep := string(filepath.Separator)
	tests := []struct {
		name string
		dir  string
		i    int
		want string
	}{
		{"plain", "in", 7000000, "in" + sep + "7000000.pdf"},
		{"zero index", "in", 0, "in" + sep + "0.pdf"},
		{"dot prefix kept", "." + sep + "in", 2, "." + sep + "in" + sep + "2.pdf"},
		{"current dir", ".", 5, "." + sep + "5.pdf"},
		{"trailing separator", "in" + sep, 3, "in" + sep + "3.pdf"},
		{"empty dir", "", 4, "4.pdf"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MergeConfig{SourceDir: tt.dir}.SourcePath(tt.i))
		})
	}
}

func TestMergeConfig_End(t *testing.T) {
	assert.Equal(t, 4, MergeConfig{Start: 1, Count: 3}.End())
	assert.Equal(t, 5, MergeConfig{Start: 5}.End())
}

func TestMergeConfig_Validate(t *testing.T) {
	valid := MergeConfig{Start: DefaultStart, Count: DefaultCount, SourceDir: DefaultSourceDir, Target: DefaultTarget}

	tests := []struct {
		name    string
		mutate  func(c *MergeConfig)
		wantErr string
	}{
		{"defaults", func(*MergeConfig) {}, ""},
		{"zero count", func(c *MergeConfig) { c.Count = 0 }, ""},
		{"negative start", func(c *MergeConfig) { c.Start = -1 }, "start must not be negative"},
		{"negative count", func(c *MergeConfig) { c.Count = -3 }, "count must not be negative"},
		{"no source", func(c *MergeConfig) { c.SourceDir = "" }, "source directory is required"},
		{"no target", func(c *MergeConfig) { c.Target = "" }, "target is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.mutate(&c)
			err := c.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestRunSummary_Attempted(t *testing.T) {
	assert.Equal(t, 6, RunSummary{Imported: 3, Skipped: 2, Failed: 1}.Attempted())
}
