package yamlutil_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/guidepress/guidepress/internal/yamlutil"
)

type testSettings struct {
	Addr    string `yaml:"addr"`
	Workers int    `yaml:"workers"`
	Pretty  bool   `yaml:"pretty"`
}

func TestUnmarshal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    []byte
		dest    any
		wantErr error
		check   func(t *testing.T, v any)
	}{
		{
			name: "valid YAML",
			data: []byte("addr: \":8085\"\nworkers: 4\npretty: true"),
			dest: &testSettings{},
			check: func(t *testing.T, v any) {
				s := v.(*testSettings)
				if s.Addr != ":8085" {
					t.Errorf("Addr = %q, want %q", s.Addr, ":8085")
				}
				if s.Workers != 4 {
					t.Errorf("Workers = %d, want 4", s.Workers)
				}
				if !s.Pretty {
					t.Error("Pretty = false, want true")
				}
			},
		},
		{
			name:    "nil data",
			data:    nil,
			dest:    &testSettings{},
			wantErr: yamlutil.ErrNilData,
		},
		{
			name:    "empty data",
			data:    []byte{},
			dest:    &testSettings{},
			wantErr: yamlutil.ErrNilData,
		},
		{
			name:    "nil destination",
			data:    []byte("addr: x"),
			dest:    nil,
			wantErr: yamlutil.ErrNilDestination,
		},
		{
			name:    "invalid YAML syntax",
			data:    []byte("addr: [unclosed"),
			dest:    &testSettings{},
			wantErr: errors.New("yamlutil:"), // partial match
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := yamlutil.Unmarshal(tt.data, tt.dest)
			if tt.wantErr != nil {
				if err == nil {
					t.Fatalf("expected error containing %q, got nil", tt.wantErr)
				}
				if errors.Is(err, tt.wantErr) {
					return
				}
				if !strings.Contains(err.Error(), tt.wantErr.Error()) {
					t.Fatalf("error = %q, want containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.check != nil {
				tt.check(t, tt.dest)
			}
		})
	}
}

func TestUnmarshal_InputTooLarge(t *testing.T) {
	t.Parallel()

	big := []byte("addr: " + strings.Repeat("x", yamlutil.MaxInputSize))
	err := yamlutil.Unmarshal(big, &testSettings{})
	if !errors.Is(err, yamlutil.ErrInputTooLarge) {
		t.Errorf("err = %v, want ErrInputTooLarge", err)
	}
}

func TestMarshal_RoundTrip(t *testing.T) {
	t.Parallel()

	in := testSettings{Addr: ":9000", Workers: 2, Pretty: true}
	data, err := yamlutil.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var out testSettings
	if err := yamlutil.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if out != in {
		t.Errorf("round trip = %+v, want %+v", out, in)
	}
}
