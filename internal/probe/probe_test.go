package probe

import (
	"strings"
	"testing"
)

func TestParseSize(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		want    Resolution
		wantErr string
	}{
		{
			name: "Single video stream",
			doc:  `{"streams":[{"codec_type":"video","width":1920,"height":1080}]}`,
			want: Resolution{Width: 1920, Height: 1080},
		},
		{
			name: "Audio stream first",
			doc:  `{"streams":[{"codec_type":"audio"},{"codec_type":"video","width":1280,"height":720}]}`,
			want: Resolution{Width: 1280, Height: 720},
		},
		{
			name: "Missing codec type but usable size",
			doc:  `{"streams":[{"width":640,"height":480}]}`,
			want: Resolution{Width: 640, Height: 480},
		},
		{
			name: "Video stream without dimensions is skipped",
			doc:  `{"streams":[{"codec_type":"video"},{"codec_type":"video","width":720,"height":576}]}`,
			want: Resolution{Width: 720, Height: 576},
		},
		{
			name:    "No streams",
			doc:     `{"streams":[]}`,
			wantErr: "no video stream",
		},
		{
			name:    "Only audio",
			doc:     `{"streams":[{"codec_type":"audio"}]}`,
			wantErr: "no video stream",
		},
		{
			name:    "Zero dimensions",
			doc:     `{"streams":[{"codec_type":"video","width":0,"height":0}]}`,
			wantErr: "no video stream",
		},
		{
			name:    "Invalid JSON",
			doc:     `{"streams":`,
			wantErr: "failed to parse probe output",
		},
		{
			name:    "Empty document",
			doc:     ``,
			wantErr: "failed to parse probe output",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseSize(tt.doc)
			if tt.wantErr != "" {
				if err == nil {
					t.Errorf("Expected error containing %q, got nil", tt.wantErr)
					return
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("Expected error containing %q, got %q", tt.wantErr, err.Error())
				}
				return
			}
			if err != nil {
				t.Errorf("Expected no error, got %v", err)
				return
			}
			if got != tt.want {
				t.Errorf("parseSize() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
