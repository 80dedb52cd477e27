package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		valued   []string
		switches []string
		want     []string
	}{
		{
			name:   "short flag with separate value",
			args:   []string{"-c", "conf.json", "-d", "worklog.db"},
			valued: []string{"-c", "-config"},
			want:   []string{"-c", "conf.json"},
		},
		{
			name:   "long flag with equals",
			args:   []string{"-config=alt.json", "-d", "worklog.db"},
			valued: []string{"-c", "-config"},
			want:   []string{"-config=alt.json"},
		},
		{
			name:   "unknown flags ignored",
			args:   []string{"-x", "1", "--y=2", "positional"},
			valued: []string{"-c", "-config"},
			want:   []string{},
		},
		{
			name:   "flag without value at end is kept as-is",
			args:   []string{"-c"},
			valued: []string{"-c"},
			want:   []string{"-c"},
		},
		{
			name:   "dash alone is a value",
			args:   []string{"-l", "-", "-v", "debug"},
			valued: []string{"-l", "-v"},
			want:   []string{"-l", "-", "-v", "debug"},
		},
		{
			name:   "dash alone as last value",
			args:   []string{"-v", "debug", "-l", "-"},
			valued: []string{"-l", "-v"},
			want:   []string{"-v", "debug", "-l", "-"},
		},
		{
			name:   "next argument is taken as value even when dash-prefixed",
			args:   []string{"-d", "-weird.db", "-v", "debug"},
			valued: []string{"-d", "-v"},
			want:   []string{"-d", "-weird.db", "-v", "debug"},
		},
		{
			name:   "value that looks like a flag in equals form",
			args:   []string{"-config=--weird.json"},
			valued: []string{"-config"},
			want:   []string{"-config=--weird.json"},
		},
		{
			name:     "switch does not swallow the next argument",
			args:     []string{"-nocolor", "stray", "-t", "pgx"},
			valued:   []string{"-t"},
			switches: []string{"-nocolor"},
			want:     []string{"-nocolor", "-t", "pgx"},
		},
		{
			name:     "switch with explicit value",
			args:     []string{"-nocolor=false"},
			switches: []string{"-nocolor"},
			want:     []string{"-nocolor=false"},
		},
		{
			name:   "repeated flag preserved in order",
			args:   []string{"-c", "one.json", "-c", "two.json"},
			valued: []string{"-c"},
			want:   []string{"-c", "one.json", "-c", "two.json"},
		},
		{
			name:   "empty args",
			args:   []string{},
			valued: []string{"-c"},
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.valued, tt.switches...))
		})
	}
}

func TestJsonConfigFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"short -c with value", []string{"-c", "/path/short.json"}, "/path/short.json"},
		{"long -config with value", []string{"-config", "/path/long.json"}, "/path/long.json"},
		{"other flags ignored", []string{"-d", "worklog.db", "-nocolor"}, ""},
		{"last wins", []string{"-c", "/path/1.json", "-config", "/path/2.json"}, "/path/2.json"},
		{"nothing", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, JsonConfigFlags(tt.args))
		})
	}
}
