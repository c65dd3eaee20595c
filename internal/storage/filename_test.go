package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanFilename(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "plain", input: "photo.png", want: "photo.png"},
		{name: "spaces kept", input: "my file.txt", want: "my file.txt"},
		{name: "unix traversal", input: "../../etc/passwd", want: "passwd"},
		{name: "absolute path", input: "/tmp/report.pdf", want: "report.pdf"},
		{name: "windows path", input: `C:\Users\me\notes.txt`, want: "notes.txt"},
		{name: "empty", input: "", wantErr: true},
		{name: "dot", input: ".", wantErr: true},
		{name: "dot dot", input: "..", wantErr: true},
		{name: "root", input: "/", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CleanFilename(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidFilename)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
